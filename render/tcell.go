package render

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/term-snake/core"
	"github.com/lixenwraith/term-snake/game"
	"github.com/lixenwraith/term-snake/terminal"
)

// keyQueueSize bounds buffered key chunks between the event pump and the game loop
const keyQueueSize = 16

// TcellScreen is a Canvas and Input backed by a tcell.Screen
// Key events are translated to the raw sequences the ANSI input path produces
type TcellScreen struct {
	screen tcell.Screen
	wait   time.Duration

	keys chan []byte
	done chan struct{}
	quit chan struct{}

	finiOnce sync.Once
}

// NewTcellScreen wraps screen; wait follows terminal.Input semantics
func NewTcellScreen(screen tcell.Screen, wait time.Duration) *TcellScreen {
	return &TcellScreen{
		screen: screen,
		wait:   wait,
		keys:   make(chan []byte, keyQueueSize),
		done:   make(chan struct{}),
		quit:   make(chan struct{}),
	}
}

// Start initializes the screen and the event pump
func (t *TcellScreen) Start() error {
	if err := t.screen.Init(); err != nil {
		return err
	}
	t.screen.SetStyle(tcell.StyleDefault)
	t.screen.HideCursor()
	t.screen.Clear()
	core.Go(t.pump)
	return nil
}

// Fini restores the terminal; safe to call more than once
func (t *TcellScreen) Fini() {
	t.finiOnce.Do(func() {
		close(t.quit)
		t.screen.Fini()
	})
}

// Size returns the screen dimensions
func (t *TcellScreen) Size() (width, height int) {
	return t.screen.Size()
}

// pump forwards key events until the screen is finalized
func (t *TcellScreen) pump() {
	defer close(t.done)
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			seq := KeySequence(ev.Key())
			if seq == nil {
				continue
			}
			select {
			case t.keys <- seq:
			case <-t.quit:
				return
			}
		case *tcell.EventResize:
			t.screen.Sync()
		}
	}
}

// KeySequence maps a tcell key to its raw input sequence
// Ctrl-C quits like escape since tcell consumes the interrupt
func KeySequence(k tcell.Key) []byte {
	switch k {
	case tcell.KeyUp:
		return terminal.Sequence(terminal.KeyUp)
	case tcell.KeyDown:
		return terminal.Sequence(terminal.KeyDown)
	case tcell.KeyLeft:
		return terminal.Sequence(terminal.KeyLeft)
	case tcell.KeyRight:
		return terminal.Sequence(terminal.KeyRight)
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return terminal.Sequence(terminal.KeyEscape)
	}
	return nil
}

// ReadInput returns the next queued key sequence
// io.EOF is returned once the event pump has stopped and the queue is empty
func (t *TcellScreen) ReadInput(ctx context.Context, maxBytes int) ([]byte, error) {
	if maxBytes <= 0 {
		maxBytes = terminal.MaxSequenceLen
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var timeout <-chan time.Time
	switch {
	case t.wait == 0:
		select {
		case seq := <-t.keys:
			return truncate(seq, maxBytes), nil
		default:
		}
		select {
		case <-t.done:
			return nil, io.EOF
		default:
			return nil, nil
		}
	case t.wait > 0:
		timer := time.NewTimer(t.wait)
		defer timer.Stop()
		timeout = timer.C
	}

	select {
	case seq := <-t.keys:
		return truncate(seq, maxBytes), nil
	case <-t.done:
		return nil, io.EOF
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-timeout:
		return nil, nil
	}
}

func truncate(seq []byte, n int) []byte {
	if len(seq) > n {
		return seq[:n]
	}
	return seq
}

// Clear erases the back buffer
func (t *TcellScreen) Clear() error {
	t.screen.Clear()
	return nil
}

// DrawPixel places the glyph at its cell
// Positions follow ANSI cursor addressing, so column and row 0 share the first cell with 1
func (t *TcellScreen) DrawPixel(p game.Pixel) error {
	style := tcell.StyleDefault
	if p.HasFg() {
		style = style.Foreground(Color(p.Fg))
	}
	if p.HasBg() {
		style = style.Background(Color(p.Bg))
	}
	t.screen.SetContent(max(p.Pos.X-1, 0), max(p.Pos.Y-1, 0), p.Glyph, nil, style)
	return nil
}

// Flush shows the frame
func (t *TcellScreen) Flush() error {
	t.screen.Show()
	return nil
}

// Color converts an RGB value to a tcell color
func Color(c terminal.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
