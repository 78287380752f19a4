package main

import (
	"bytes"
	"flag"
	"strings"
	"testing"
	"time"

	"github.com/lixenwraith/term-snake/game"
	"github.com/lixenwraith/term-snake/render"
	"github.com/lixenwraith/term-snake/status"
	"github.com/lixenwraith/term-snake/terminal"
)

func TestWriteSummary(t *testing.T) {
	var buf bytes.Buffer
	res := game.Result{
		Reason:       game.ReasonCollision,
		FoodEaten:    4,
		Length:       4,
		Ticks:        120,
		TickInterval: 296 * time.Millisecond,
	}

	writeSummary(&buf, res, status.NewRegistry(), terminal.ColorModeTrueColor)
	out := buf.String()

	if !strings.HasPrefix(out, "\x1b[38;2;50;205;50mGame over: collision\x1b[0m\n") {
		t.Errorf("Expected colored banner, got %q", out)
	}
	if !strings.Contains(out, "Food eaten: 4  Length: 4  Ticks: 120  Tick interval: 296ms") {
		t.Errorf("Expected stats line, got %q", out)
	}
}

// The default color flag must emit 24-bit sequences even when the environment advertises only 256 colors
func TestDefaultColorModeIsTrueColor(t *testing.T) {
	t.Setenv("COLORTERM", "")
	t.Setenv("TERM", "xterm-256color")

	def := flag.Lookup("color").DefValue
	if def != "truecolor" {
		t.Fatalf("Expected -color default truecolor, got %q", def)
	}

	var buf bytes.Buffer
	r := render.NewANSIRenderer(&buf, terminal.ParseColorMode(def))
	r.DrawPixel(game.NewPixel('0', game.Position{X: 3, Y: 4}, terminal.RGB{R: 12, G: 200, B: 77}))
	r.Flush()

	want := "\x1b[4;3H\x1b[38;2;12;200;77m0\x1b[0m"
	if got := buf.String(); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestAutoColorModeFallsBackTo256(t *testing.T) {
	t.Setenv("COLORTERM", "")
	t.Setenv("TERM", "xterm-256color")
	for _, v := range []string{"KITTY_WINDOW_ID", "KONSOLE_VERSION", "ITERM_SESSION_ID", "ALACRITTY_WINDOW_ID", "WEZTERM_PANE"} {
		t.Setenv(v, "")
	}

	if got := terminal.ParseColorMode("auto"); got != terminal.ColorMode256 {
		t.Errorf("Expected 256 from auto detection, got %s", got)
	}
}
