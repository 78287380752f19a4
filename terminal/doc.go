// Package terminal provides direct ANSI terminal control for the snake game.
//
// Features:
//   - Terminal size probing with fd, /dev/tty and LINES/COLUMNS fallbacks
//   - Scoped raw/non-blocking input reads that always restore termios
//   - True color (24-bit) with 256-color fallback
//   - Session echo/cursor state restored exactly once, plus EmergencyReset for crash paths
//
// This package bypasses terminfo/termcap entirely, emitting direct ANSI sequences.
// Target environments: Linux, macOS, BSDs with xterm-compatible terminals.
package terminal
