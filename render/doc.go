// Package render draws game pixels to the terminal.
//
// ANSIRenderer writes cursor-addressed escape sequences directly and clears the
// whole screen every frame. TcellScreen provides the same Canvas contract plus
// key input on top of a tcell.Screen.
package render
