package core

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"

	"github.com/lixenwraith/term-snake/terminal"
)

// PanicError carries a recovered panic value and the stack at the point of recovery
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// Guard runs fn and calls restore exactly once on every exit path
// A panic in fn is returned as a *PanicError after restore has run
func Guard(restore func(), fn func() error) (err error) {
	var once sync.Once
	cleanup := func() {
		if restore != nil {
			once.Do(restore)
		}
	}
	defer cleanup()

	defer func() {
		if r := recover(); r != nil {
			cleanup()
			err = &PanicError{Value: r, Stack: debug.Stack()}
		}
	}()

	return fn()
}

// ReportCrash prints a recovered panic and its stack to w
func ReportCrash(w io.Writer, pe *PanicError) {
	fmt.Fprintf(w, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", pe.Value)
	fmt.Fprintf(w, "Stack Trace:\r\n%s\r\n", pe.Stack)
}

// HandleCrash resets the terminal, prints the stack trace and exits
func HandleCrash(r any) {
	if r == nil {
		return
	}

	terminal.EmergencyReset(os.Stdout)
	os.Stdout.Sync()

	ReportCrash(os.Stderr, &PanicError{Value: r, Stack: debug.Stack()})
	os.Stderr.Sync()

	os.Exit(1)
}

// Go runs fn in a new goroutine with panic recovery
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
