package game

import "github.com/lixenwraith/term-snake/terminal"

// Attr marks which colors of a Pixel are set
type Attr uint8

const (
	AttrNone Attr = 0
	AttrFg   Attr = 1 << 0
	AttrBg   Attr = 1 << 1
)

// Pixel is one renderable glyph at a cell
// Pixels are values: moving or recoloring produces a new Pixel
type Pixel struct {
	Glyph rune
	Pos   Position
	Fg    terminal.RGB
	Bg    terminal.RGB
	Attrs Attr
}

// NewPixel creates a pixel with a foreground color
func NewPixel(glyph rune, pos Position, fg terminal.RGB) Pixel {
	return Pixel{Glyph: glyph, Pos: pos, Fg: fg, Attrs: AttrFg}
}

// At returns a copy placed at pos
func (p Pixel) At(pos Position) Pixel {
	p.Pos = pos
	return p
}

// WithFg returns a copy with the foreground color set
func (p Pixel) WithFg(c terminal.RGB) Pixel {
	p.Fg = c
	p.Attrs |= AttrFg
	return p
}

// WithBg returns a copy with the background color set
func (p Pixel) WithBg(c terminal.RGB) Pixel {
	p.Bg = c
	p.Attrs |= AttrBg
	return p
}

// HasFg reports whether the foreground color is set
func (p Pixel) HasFg() bool { return p.Attrs&AttrFg != 0 }

// HasBg reports whether the background color is set
func (p Pixel) HasBg() bool { return p.Attrs&AttrBg != 0 }
