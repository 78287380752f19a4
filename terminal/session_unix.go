//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package terminal

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sync"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// Session owns the process-wide terminal state for one game: echo off and cursor hidden
// Fini restores both exactly once regardless of how many exit paths call it
type Session struct {
	inFd  int
	out   io.Writer
	w     *bufio.Writer
	saved *term.State
	mode  ColorMode

	mu          sync.Mutex
	initialized bool
	finalized   bool
}

// NewSession creates a session bound to stdin/stdout
func NewSession(mode ColorMode) *Session {
	return &Session{
		inFd: int(os.Stdin.Fd()),
		out:  os.Stdout,
		w:    bufio.NewWriterSize(os.Stdout, 4096),
		mode: mode,
	}
}

// Init saves terminal state, disables echo and hides the cursor
func (s *Session) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}

	if !term.IsTerminal(s.inFd) {
		return ErrNotTerminal
	}

	saved, err := term.GetState(s.inFd)
	if err != nil {
		return fmt.Errorf("save terminal state: %w", err)
	}
	s.saved = saved

	if err := setEcho(s.inFd, false); err != nil {
		return fmt.Errorf("disable echo: %w", err)
	}

	WriteCursorVisible(s.w, false)
	if err := s.w.Flush(); err != nil {
		term.Restore(s.inFd, s.saved)
		return fmt.Errorf("hide cursor: %w", err)
	}

	s.initialized = true
	return nil
}

// Fini shows the cursor and restores the saved terminal state. Safe to call multiple times
func (s *Session) Fini() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized || s.finalized {
		return
	}

	WriteReset(s.w)
	WriteCursorVisible(s.w, true)
	s.w.Flush()

	term.Restore(s.inFd, s.saved)
	s.finalized = true
}

// Output returns the raw terminal writer
func (s *Session) Output() io.Writer {
	return s.out
}

// ColorMode returns the color capability chosen for the session
func (s *Session) ColorMode() ColorMode {
	return s.mode
}

// setEcho toggles local echo without touching other termios flags
func setEcho(fd int, on bool) error {
	t, err := unix.IoctlGetTermios(fd, ioctlGetTermios)
	if err != nil {
		return err
	}
	if on {
		t.Lflag |= unix.ECHO
	} else {
		t.Lflag &^= unix.ECHO
	}
	return unix.IoctlSetTermios(fd, ioctlSetTermios, t)
}
