//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package terminal

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/sys/unix"
)

// pollInterval bounds each poll so context cancellation is observed
const pollInterval = 100 * time.Millisecond

// Input reads key chunks from stdin, switching to raw non-blocking mode only for the read
type Input struct {
	fd   int
	wait time.Duration

	// scope wraps one read with the terminal mode switch
	scope func(fd int, fn func() error) error
}

// NewInput creates a stdin reader
// wait < 0 blocks until a byte arrives, wait == 0 returns an empty chunk when nothing is pending,
// wait > 0 waits at most that long
func NewInput(wait time.Duration) *Input {
	return &Input{
		fd:    int(os.Stdin.Fd()),
		wait:  wait,
		scope: withInputMode,
	}
}

// ReadInput reads one chunk of at most maxBytes
// Returns io.EOF when stdin is closed and ctx.Err() on cancellation
func (in *Input) ReadInput(ctx context.Context, maxBytes int) ([]byte, error) {
	if maxBytes <= 0 {
		maxBytes = MaxSequenceLen
	}

	var chunk []byte
	err := in.scope(in.fd, func() error {
		var err error
		chunk, err = in.readChunk(ctx, maxBytes)
		return err
	})
	return chunk, err
}

// readChunk retries would-block reads, parking in poll between attempts
func (in *Input) readChunk(ctx context.Context, maxBytes int) ([]byte, error) {
	buf := make([]byte, maxBytes)

	var deadline time.Time
	if in.wait > 0 {
		deadline = time.Now().Add(in.wait)
	}

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		n, err := unix.Read(in.fd, buf)
		switch {
		case err == nil && n > 0:
			return buf[:n], nil
		case err == nil:
			return nil, io.EOF
		case err == unix.EINTR:
			continue
		case err != unix.EAGAIN:
			return nil, fmt.Errorf("read input: %w", err)
		}

		if in.wait == 0 {
			return nil, nil
		}

		timeout := pollInterval
		if in.wait > 0 {
			remaining := time.Until(deadline)
			if remaining <= 0 {
				return nil, nil
			}
			timeout = min(timeout, remaining)
		}

		fds := []unix.PollFd{{Fd: int32(in.fd), Events: unix.POLLIN}}
		if _, err := unix.Poll(fds, int(timeout/time.Millisecond)); err != nil && err != unix.EINTR {
			return nil, fmt.Errorf("poll input: %w", err)
		}
	}
}

// withInputMode clears ICANON and ECHO and sets O_NONBLOCK for the duration of fn
// Prior termios (flushing unread input) and blocking mode are restored on every path
func withInputMode(fd int, fn func() error) (err error) {
	old, err := unix.IoctlGetTermios(fd, ioctlGetTermios)
	if err != nil {
		return fmt.Errorf("read termios: %w", err)
	}

	raw := *old
	raw.Lflag &^= unix.ICANON | unix.ECHO
	raw.Cc[unix.VMIN] = 1
	raw.Cc[unix.VTIME] = 0
	if err := unix.IoctlSetTermios(fd, ioctlSetTermios, &raw); err != nil {
		return fmt.Errorf("enter raw mode: %w", err)
	}
	defer func() {
		if rerr := unix.IoctlSetTermios(fd, ioctlSetTermiosFlush, old); rerr != nil && err == nil {
			err = fmt.Errorf("restore termios: %w", rerr)
		}
	}()

	if err := unix.SetNonblock(fd, true); err != nil {
		return fmt.Errorf("enable non-blocking read: %w", err)
	}
	defer func() {
		if rerr := unix.SetNonblock(fd, false); rerr != nil && err == nil {
			err = fmt.Errorf("restore blocking read: %w", rerr)
		}
	}()

	return fn()
}
