package game

import (
	"math/rand"

	"github.com/lixenwraith/term-snake/constants"
	"github.com/lixenwraith/term-snake/terminal"
)

// Food is the single active food item
type Food struct {
	Pixel Pixel

	width, height int
	rng           *rand.Rand
}

// NewFood creates food inside [0,width]x[0,height] and spawns it immediately
func NewFood(width, height int, rng *rand.Rand) *Food {
	f := &Food{width: width, height: height, rng: rng}
	f.Spawn()
	return f
}

// Spawn replaces the pixel with a new random position and color
// Both bounds are inclusive
func (f *Food) Spawn() {
	pos := Position{
		X: f.rng.Intn(f.width + 1),
		Y: f.rng.Intn(f.height + 1),
	}
	fg := terminal.RGB{
		R: uint8(f.rng.Intn(256)),
		G: uint8(f.rng.Intn(256)),
		B: uint8(f.rng.Intn(256)),
	}
	f.Pixel = NewPixel(constants.FoodGlyph, pos, fg)
}

// Pos returns the food location
func (f *Food) Pos() Position {
	return f.Pixel.Pos
}

// Color returns the food foreground color
func (f *Food) Color() terminal.RGB {
	return f.Pixel.Fg
}

// Place moves the food to pos keeping its color
func (f *Food) Place(pos Position) {
	f.Pixel = f.Pixel.At(pos)
}
