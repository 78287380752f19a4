//go:build !linux && !darwin && !dragonfly && !freebsd && !netbsd && !openbsd

package terminal

import (
	"context"
	"errors"
	"io"
	"os"
	"time"
)

var errUnsupported = errors.New("terminal: platform not supported")

// DetectColorMode determines terminal color capability from environment
func DetectColorMode() ColorMode {
	if os.Getenv("COLORTERM") == "truecolor" || os.Getenv("COLORTERM") == "24bit" {
		return ColorModeTrueColor
	}
	return ColorMode256
}

func resetTerminalMode() {}

// Size is unavailable on this platform
func Size() (int, int, error) {
	return 0, 0, ErrSizeUnavailable
}

// Input is unavailable on this platform
type Input struct{}

// NewInput returns an input that always fails
func NewInput(time.Duration) *Input { return &Input{} }

// ReadInput always fails on this platform
func (in *Input) ReadInput(context.Context, int) ([]byte, error) {
	return nil, errUnsupported
}

// Session is unavailable on this platform
type Session struct{ mode ColorMode }

// NewSession returns a session whose Init fails
func NewSession(mode ColorMode) *Session { return &Session{mode: mode} }

// Init always fails on this platform
func (s *Session) Init() error { return errUnsupported }

// Fini is a no-op on this platform
func (s *Session) Fini() {}

// Output returns stdout
func (s *Session) Output() io.Writer { return os.Stdout }

// ColorMode returns the configured color mode
func (s *Session) ColorMode() ColorMode { return s.mode }
