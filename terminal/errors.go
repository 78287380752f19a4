package terminal

import "errors"

var (
	// ErrSizeUnavailable is returned when no probe could determine the terminal dimensions
	ErrSizeUnavailable = errors.New("terminal size unavailable: run inside an interactive terminal or set LINES and COLUMNS")

	// ErrNotTerminal is returned when stdin is not attached to a terminal
	ErrNotTerminal = errors.New("stdin is not a terminal")
)
