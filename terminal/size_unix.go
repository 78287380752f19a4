//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package terminal

import (
	"os"
	"strconv"

	"golang.org/x/term"
)

// sizeProber holds the probes consulted in order by Size
type sizeProber struct {
	fds     []int
	query   func(fd int) (width, height int, err error)
	openTTY func() (fd int, release func(), err error)
	getenv  func(key string) string
}

var defaultProber = sizeProber{
	fds:   []int{int(os.Stdin.Fd()), int(os.Stdout.Fd()), int(os.Stderr.Fd())},
	query: term.GetSize,
	openTTY: func() (int, func(), error) {
		tty, err := os.Open("/dev/tty")
		if err != nil {
			return -1, nil, err
		}
		return int(tty.Fd()), func() { tty.Close() }, nil
	},
	getenv: os.Getenv,
}

// Size returns terminal columns and rows
// Probes stdin, stdout, stderr, the controlling terminal, then LINES/COLUMNS
func Size() (width, height int, err error) {
	return defaultProber.size()
}

func (p sizeProber) size() (int, int, error) {
	for _, fd := range p.fds {
		if w, h, ok := p.probe(fd); ok {
			return w, h, nil
		}
	}

	if p.openTTY != nil {
		if fd, release, err := p.openTTY(); err == nil {
			w, h, ok := p.probe(fd)
			release()
			if ok {
				return w, h, nil
			}
		}
	}

	if p.getenv != nil {
		rows, rerr := strconv.Atoi(p.getenv("LINES"))
		cols, cerr := strconv.Atoi(p.getenv("COLUMNS"))
		if rerr == nil && cerr == nil && rows > 0 && cols > 0 {
			return cols, rows, nil
		}
	}

	return 0, 0, ErrSizeUnavailable
}

func (p sizeProber) probe(fd int) (int, int, bool) {
	w, h, err := p.query(fd)
	if err != nil || w <= 0 || h <= 0 {
		return 0, 0, false
	}
	return w, h, true
}
