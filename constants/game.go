package constants

import "time"

// Game Loop Timing Constants
const (
	// InitialTickInterval is the delay between frames at game start
	InitialTickInterval = 300 * time.Millisecond

	// TickDecrement is subtracted from the tick interval per food eaten
	TickDecrement = time.Millisecond

	// MinTickInterval is the floor for the tick interval
	MinTickInterval = 20 * time.Millisecond
)

// Entity glyphs
const (
	HeadGlyph = '@'
	BodyGlyph = '#'
	FoodGlyph = '0'
)

// Input
const (
	// InputWait is how long one frame waits for a key; 0 keeps the loop real-time
	InputWait = time.Duration(0)

	// StepInputWait blocks each frame until a key arrives
	StepInputWait = time.Duration(-1)
)
