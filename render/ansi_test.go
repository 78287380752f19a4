package render

import (
	"bytes"
	"testing"

	"github.com/lixenwraith/term-snake/game"
	"github.com/lixenwraith/term-snake/terminal"
)

func TestANSIDrawPixel(t *testing.T) {
	pos := game.Position{X: 7, Y: 3}
	plain := game.Pixel{Glyph: 'x', Pos: pos}

	tests := []struct {
		name  string
		pixel game.Pixel
		mode  terminal.ColorMode
		want  string
	}{
		{
			name:  "no color",
			pixel: plain,
			mode:  terminal.ColorModeTrueColor,
			want:  "\x1b[3;7Hx",
		},
		{
			name:  "fg truecolor",
			pixel: game.NewPixel('@', pos, terminal.Red),
			mode:  terminal.ColorModeTrueColor,
			want:  "\x1b[3;7H\x1b[38;2;255;0;0m@\x1b[0m",
		},
		{
			name:  "bg only",
			pixel: plain.WithBg(terminal.RGB{R: 1, G: 2, B: 3}),
			mode:  terminal.ColorModeTrueColor,
			want:  "\x1b[3;7H\x1b[48;2;1;2;3mx\x1b[0m",
		},
		{
			name:  "fg and bg",
			pixel: game.NewPixel('#', pos, terminal.White).WithBg(terminal.Black),
			mode:  terminal.ColorModeTrueColor,
			want:  "\x1b[3;7H\x1b[38;2;255;255;255m\x1b[48;2;0;0;0m#\x1b[0m",
		},
		{
			name:  "fg 256",
			pixel: game.NewPixel('@', pos, terminal.Red),
			mode:  terminal.ColorMode256,
			want:  "\x1b[3;7H\x1b[38;5;196m@\x1b[0m",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			r := NewANSIRenderer(&buf, tt.mode)
			if err := r.DrawPixel(tt.pixel); err != nil {
				t.Fatal(err)
			}
			if buf.Len() != 0 {
				t.Error("Expected output held until Flush")
			}
			if err := r.Flush(); err != nil {
				t.Fatal(err)
			}
			if got := buf.String(); got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestANSIFrame(t *testing.T) {
	var buf bytes.Buffer
	r := NewANSIRenderer(&buf, terminal.ColorModeTrueColor)

	r.Clear()
	r.DrawPixel(game.NewPixel('0', game.Position{X: 1, Y: 2}, terminal.RGB{R: 9, G: 8, B: 7}))
	r.Flush()

	want := "\x1b[2J\x1b[H\x1b[2;1H\x1b[38;2;9;8;7m0\x1b[0m"
	if got := buf.String(); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestANSIEmptyFrameOnlyClears(t *testing.T) {
	var buf bytes.Buffer
	r := NewANSIRenderer(&buf, terminal.ColorModeTrueColor)

	r.Clear()
	r.Flush()

	if got := buf.String(); got != "\x1b[2J\x1b[H" {
		t.Errorf("Expected clear only, got %q", got)
	}
}
