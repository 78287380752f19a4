// Package game holds the snake entities and the frame loop.
//
// The loop talks to the outside world only through Input, Canvas, Clock and Sounds,
// so the terminal, the renderer and audio can be swapped or faked in tests.
package game
