package game

import (
	"github.com/lixenwraith/term-snake/constants"
	"github.com/lixenwraith/term-snake/terminal"
)

// HeadColor is the fixed head color
var HeadColor = terminal.Red

// Snake holds the head, the trailing body and the growth state
type Snake struct {
	Head Pixel

	// Body is ordered head to tail
	Body []Pixel

	// Colors holds one entry per food eaten, most recent first
	// Segment i is drawn with Colors[i]
	Colors []terminal.RGB

	// Length is the target body length
	Length int

	Direction Direction

	width, height int
}

// NewSnake creates a zero-length snake at head moving right
func NewSnake(head Position, width, height int) *Snake {
	return &Snake{
		Head:      NewPixel(constants.HeadGlyph, head, HeadColor),
		Direction: Right,
		width:     width,
		height:    height,
	}
}

// ChangeDirection applies an arrow key; other keys leave the direction unchanged
// Reversal is not rejected and collides on the next update
func (s *Snake) ChangeDirection(key terminal.Key) {
	switch key {
	case terminal.KeyLeft:
		s.Direction = Left
	case terminal.KeyRight:
		s.Direction = Right
	case terminal.KeyUp:
		s.Direction = Up
	case terminal.KeyDown:
		s.Direction = Down
	}
}

// EatFood grows the snake and respawns the food when the head is on it
func (s *Snake) EatFood(food *Food) bool {
	if food.Pos() != s.Head.Pos {
		return false
	}

	s.Colors = append(s.Colors, terminal.RGB{})
	copy(s.Colors[1:], s.Colors)
	s.Colors[0] = food.Color()

	food.Spawn()
	s.Length++
	return true
}

// EatSelf reports whether the head overlaps any body segment
func (s *Snake) EatSelf() bool {
	for _, part := range s.Body {
		if part.Pos == s.Head.Pos {
			return true
		}
	}
	return false
}

// Update advances one tick: wrap, lay a segment at the head, trim the tail, move the head
func (s *Snake) Update(food *Food) {
	s.Head = s.Head.At(s.wrap(s.Head.Pos))

	s.Body = append(s.Body, Pixel{})
	copy(s.Body[1:], s.Body)
	s.Body[0] = NewPixel(constants.BodyGlyph, s.Head.Pos, food.Color())

	if len(s.Body) > s.Length {
		s.Body = s.Body[:max(s.Length, 0)]
	}

	s.recolor(food.Color())

	s.Head = s.Head.At(s.Head.Pos.Move(s.Direction))
}

// wrap moves an out-of-bounds position to the opposite edge
// Only the first out-of-bounds axis is corrected per call
func (s *Snake) wrap(p Position) Position {
	switch {
	case p.X < 0:
		p.X = s.width
	case p.X > s.width:
		p.X = 0
	case p.Y < 0:
		p.Y = s.height
	case p.Y > s.height:
		p.Y = 0
	}
	return p
}

// recolor lays segment i out with Colors[i]; segments beyond the eaten history keep fallback
func (s *Snake) recolor(fallback terminal.RGB) {
	for i := range s.Body {
		c := fallback
		if i < len(s.Colors) {
			c = s.Colors[i]
		}
		if s.Body[i].Fg != c {
			s.Body[i] = s.Body[i].WithFg(c)
		}
	}
}
