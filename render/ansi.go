package render

import (
	"bufio"
	"io"

	"github.com/lixenwraith/term-snake/game"
	"github.com/lixenwraith/term-snake/terminal"
)

const outputBufferSize = 16384

// ANSIRenderer writes one escape-sequence run per pixel
// Output is buffered until Flush
type ANSIRenderer struct {
	w    *bufio.Writer
	mode terminal.ColorMode
}

// NewANSIRenderer creates a renderer writing to out in the given color mode
func NewANSIRenderer(out io.Writer, mode terminal.ColorMode) *ANSIRenderer {
	return &ANSIRenderer{
		w:    bufio.NewWriterSize(out, outputBufferSize),
		mode: mode,
	}
}

// Clear erases the screen and homes the cursor
func (r *ANSIRenderer) Clear() error {
	terminal.WriteClear(r.w)
	return nil
}

// DrawPixel moves to the pixel cell and writes its colored glyph
// Coordinates are emitted unchanged as row=y, col=x
func (r *ANSIRenderer) DrawPixel(p game.Pixel) error {
	terminal.WriteCursorPos(r.w, p.Pos.Y, p.Pos.X)
	writeGlyph(r.w, p, r.mode)
	return nil
}

// Flush writes the buffered frame
func (r *ANSIRenderer) Flush() error {
	return r.w.Flush()
}

// writeGlyph emits {fg}{bg}{glyph}{reset}; reset only follows a color
func writeGlyph(w *bufio.Writer, p game.Pixel, mode terminal.ColorMode) {
	if p.HasFg() {
		terminal.WriteFg(w, p.Fg, mode)
	}
	if p.HasBg() {
		terminal.WriteBg(w, p.Bg, mode)
	}
	w.WriteRune(p.Glyph)
	if p.HasFg() || p.HasBg() {
		terminal.WriteReset(w)
	}
}
