package game

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/term-snake/constants"
	"github.com/lixenwraith/term-snake/status"
	"github.com/lixenwraith/term-snake/terminal"
)

// Input supplies raw key chunks
type Input interface {
	ReadInput(ctx context.Context, maxBytes int) ([]byte, error)
}

// Canvas draws one frame: Clear, DrawPixel per entity, Flush
type Canvas interface {
	Clear() error
	DrawPixel(p Pixel) error
	Flush() error
}

// Sounds plays cues for game events
type Sounds interface {
	PlayEat()
	PlayCrash()
}

// Outcome is the result of one tick
type Outcome uint8

const (
	Continue Outcome = iota
	Collision
)

// Reason tells why a session ended
type Reason uint8

const (
	ReasonQuit Reason = iota
	ReasonCollision
	ReasonCancelled
	ReasonInputClosed
	ReasonError
)

func (r Reason) String() string {
	switch r {
	case ReasonQuit:
		return "quit"
	case ReasonCollision:
		return "collision"
	case ReasonCancelled:
		return "interrupted"
	case ReasonInputClosed:
		return "input closed"
	case ReasonError:
		return "error"
	}
	return "unknown"
}

// Result summarizes a finished session
type Result struct {
	Reason       Reason
	FoodEaten    int
	Length       int
	Ticks        int64
	TickInterval time.Duration
}

// Config holds the game construction parameters
type Config struct {
	// Width and Height are the inclusive play field bounds
	Width, Height int

	// Rand drives head placement and food spawns; nil seeds from the current time
	Rand *rand.Rand

	// TickInterval defaults to constants.InitialTickInterval
	TickInterval time.Duration

	Stats  *status.Registry
	Sounds Sounds
	Clock  Clock
}

// Game owns exactly one snake and one food
type Game struct {
	Snake        *Snake
	Food         *Food
	TickInterval time.Duration

	stats  *status.Registry
	sounds Sounds
	clock  Clock

	ticks     *atomic.Int64
	foodEaten *atomic.Int64
	length    *atomic.Int64
	interval  *status.Gauge
}

// New creates a game with the snake head and the food at random positions
func New(cfg Config) *Game {
	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = constants.InitialTickInterval
	}
	if cfg.Stats == nil {
		cfg.Stats = status.NewRegistry()
	}
	if cfg.Clock == nil {
		cfg.Clock = RealClock{}
	}

	head := Position{X: rng.Intn(cfg.Width + 1), Y: rng.Intn(cfg.Height + 1)}

	g := &Game{
		Snake:        NewSnake(head, cfg.Width, cfg.Height),
		Food:         NewFood(cfg.Width, cfg.Height, rng),
		TickInterval: cfg.TickInterval,
		stats:        cfg.Stats,
		sounds:       cfg.Sounds,
		clock:        cfg.Clock,
	}

	g.ticks = g.stats.Counter(status.Ticks)
	g.foodEaten = g.stats.Counter(status.FoodEaten)
	g.length = g.stats.Counter(status.SnakeLength)
	g.interval = g.stats.Gauge(status.TickInterval)
	g.interval.Set(float64(g.TickInterval) / float64(time.Millisecond))

	return g
}

// Stats returns the session registry
func (g *Game) Stats() *status.Registry {
	return g.stats
}

// Update advances one tick and reports a self-collision
func (g *Game) Update() Outcome {
	g.Snake.Update(g.Food)
	g.ticks.Add(1)

	if g.Snake.EatFood(g.Food) {
		g.foodEaten.Add(1)
		g.length.Store(int64(g.Snake.Length))
		g.speedUp()
		log.Printf("food eaten: length=%d interval=%v next=%v", g.Snake.Length, g.TickInterval, g.Food.Pos())
		if g.sounds != nil {
			g.sounds.PlayEat()
		}
	}

	if g.Snake.EatSelf() {
		log.Printf("self collision at %v", g.Snake.Head.Pos)
		if g.sounds != nil {
			g.sounds.PlayCrash()
		}
		return Collision
	}
	return Continue
}

// speedUp shortens the tick interval, never below constants.MinTickInterval
func (g *Game) speedUp() {
	if g.TickInterval > constants.MinTickInterval {
		g.TickInterval = max(g.TickInterval-constants.TickDecrement, constants.MinTickInterval)
	}
	g.interval.Set(float64(g.TickInterval) / float64(time.Millisecond))
}

// Draw renders head, body and food in that order
func (g *Game) Draw(c Canvas) error {
	if err := c.DrawPixel(g.Snake.Head); err != nil {
		return err
	}
	for _, part := range g.Snake.Body {
		if err := c.DrawPixel(part); err != nil {
			return err
		}
	}
	return c.DrawPixel(g.Food.Pixel)
}

// Run drives the frame loop until escape, self-collision, cancellation or end of input
// Each iteration: read input, clear, steer, update, draw, flush, sleep
func (g *Game) Run(ctx context.Context, in Input, out Canvas) (Result, error) {
	for {
		chunk, err := in.ReadInput(ctx, terminal.MaxSequenceLen)
		if err != nil {
			switch {
			case errors.Is(err, io.EOF):
				return g.finish(ReasonInputClosed), nil
			case ctx.Err() != nil:
				return g.finish(ReasonCancelled), nil
			}
			return g.finish(ReasonError), fmt.Errorf("read input: %w", err)
		}
		key := terminal.ParseKey(chunk)

		if err := out.Clear(); err != nil {
			return g.finish(ReasonError), fmt.Errorf("clear screen: %w", err)
		}

		g.Snake.ChangeDirection(key)
		if g.Update() == Collision {
			return g.finish(ReasonCollision), nil
		}

		if err := g.Draw(out); err != nil {
			return g.finish(ReasonError), fmt.Errorf("draw frame: %w", err)
		}
		if err := out.Flush(); err != nil {
			return g.finish(ReasonError), fmt.Errorf("flush frame: %w", err)
		}

		if key == terminal.KeyEscape {
			return g.finish(ReasonQuit), nil
		}

		if err := g.clock.Sleep(ctx, g.TickInterval); err != nil {
			return g.finish(ReasonCancelled), nil
		}
	}
}

func (g *Game) finish(reason Reason) Result {
	res := Result{
		Reason:       reason,
		FoodEaten:    int(g.foodEaten.Load()),
		Length:       g.Snake.Length,
		Ticks:        g.ticks.Load(),
		TickInterval: g.TickInterval,
	}
	log.Printf("session ended: reason=%s ticks=%d food=%d", reason, res.Ticks, res.FoodEaten)
	return res
}
