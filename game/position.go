package game

import "fmt"

// Position is a terminal cell coordinate
type Position struct {
	X, Y int
}

// Add combines two positions component-wise
func (p Position) Add(o Position) Position {
	return Position{X: p.X + o.X, Y: p.Y + o.Y}
}

// Move returns the position one step in direction d
func (p Position) Move(d Direction) Position {
	return p.Add(d.Vector())
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Direction is one of the four unit moves
type Direction uint8

const (
	Right Direction = iota
	Left
	Up
	Down
)

var directionVectors = [...]Position{
	Right: {X: 1, Y: 0},
	Left:  {X: -1, Y: 0},
	Up:    {X: 0, Y: -1},
	Down:  {X: 0, Y: 1},
}

// Vector returns the unit step for the direction
func (d Direction) Vector() Position {
	return directionVectors[d]
}

func (d Direction) String() string {
	switch d {
	case Right:
		return "right"
	case Left:
		return "left"
	case Up:
		return "up"
	case Down:
		return "down"
	}
	return "invalid"
}
