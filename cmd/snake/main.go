package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/term-snake/audio"
	"github.com/lixenwraith/term-snake/constants"
	"github.com/lixenwraith/term-snake/core"
	"github.com/lixenwraith/term-snake/game"
	"github.com/lixenwraith/term-snake/render"
	"github.com/lixenwraith/term-snake/status"
	"github.com/lixenwraith/term-snake/terminal"
)

var (
	colorModeFlag = flag.String("color", "truecolor", "Color mode: truecolor, 256, auto (detect from COLORTERM/TERM)")
	backendFlag   = flag.String("backend", "ansi", "Output backend: ansi, tcell")
	soundFlag     = flag.Bool("sound", false, "Play sound cues")
	debugFlag     = flag.Bool("debug", false, "Write a debug log to logs/snake.log")
	seedFlag      = flag.Int64("seed", 0, "Random seed, 0 seeds from the clock")
	tickFlag      = flag.Duration("tick", constants.InitialTickInterval, "Initial tick interval")
	stepFlag      = flag.Bool("step", false, "Wait for a key before every tick")
)

func main() {
	os.Exit(run())
}

func run() int {
	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("seed=%d backend=%s color=%s step=%v", seed, *backendFlag, *colorModeFlag, *stepFlag)

	stats := status.NewRegistry()
	cfg := game.Config{
		Rand:         rand.New(rand.NewSource(seed)),
		TickInterval: *tickFlag,
		Stats:        stats,
	}

	if *soundFlag {
		sm := audio.NewSoundManager()
		if err := sm.Initialize(); err != nil {
			fmt.Fprintf(os.Stderr, "Audio initialization failed: %v (continuing without audio)\n", err)
		} else {
			defer sm.Cleanup()
			cfg.Sounds = sm
		}
	}

	wait := constants.InputWait
	if *stepFlag {
		wait = constants.StepInputWait
	}
	mode := terminal.ParseColorMode(*colorModeFlag)

	var (
		res game.Result
		err error
	)
	switch *backendFlag {
	case "tcell":
		res, err = runTcell(ctx, cfg, wait)
	case "ansi":
		res, err = runANSI(ctx, cfg, mode, wait)
	default:
		fmt.Fprintf(os.Stderr, "Unknown backend %q: use ansi or tcell\n", *backendFlag)
		return 1
	}

	if err != nil {
		var pe *core.PanicError
		if errors.As(err, &pe) {
			core.ReportCrash(os.Stderr, pe)
		} else {
			fmt.Fprintf(os.Stderr, "snake: %v\n", err)
		}
		return 1
	}

	writeSummary(os.Stdout, res, stats, mode)
	return 0
}

// runANSI plays on the raw terminal with escape-sequence output
func runANSI(ctx context.Context, cfg game.Config, mode terminal.ColorMode, wait time.Duration) (game.Result, error) {
	width, height, err := terminal.Size()
	if err != nil {
		return game.Result{}, err
	}
	cfg.Width, cfg.Height = width, height

	session := terminal.NewSession(mode)
	if err := session.Init(); err != nil {
		return game.Result{}, fmt.Errorf("initialize terminal: %w", err)
	}

	var res game.Result
	err = core.Guard(session.Fini, func() error {
		g := game.New(cfg)
		out := render.NewANSIRenderer(session.Output(), session.ColorMode())

		var runErr error
		res, runErr = g.Run(ctx, terminal.NewInput(wait), out)
		return runErr
	})
	return res, err
}

// runTcell plays through a tcell screen, which handles input and output
func runTcell(ctx context.Context, cfg game.Config, wait time.Duration) (game.Result, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return game.Result{}, fmt.Errorf("create screen: %w", err)
	}

	ts := render.NewTcellScreen(screen, wait)
	if err := ts.Start(); err != nil {
		return game.Result{}, fmt.Errorf("initialize screen: %w", err)
	}

	var res game.Result
	err = core.Guard(ts.Fini, func() error {
		cfg.Width, cfg.Height = ts.Size()
		g := game.New(cfg)

		var runErr error
		res, runErr = g.Run(ctx, ts, ts)
		return runErr
	})
	return res, err
}

// writeSummary prints the end-of-session report after the terminal is restored
func writeSummary(w io.Writer, res game.Result, stats *status.Registry, mode terminal.ColorMode) {
	bw := bufio.NewWriter(w)
	defer bw.Flush()

	terminal.WriteFg(bw, terminal.LimeGreen, mode)
	fmt.Fprintf(bw, "Game over: %s", res.Reason)
	terminal.WriteReset(bw)
	fmt.Fprintf(bw, "\nFood eaten: %d  Length: %d  Ticks: %d  Tick interval: %v\n",
		res.FoodEaten, res.Length, res.Ticks, res.TickInterval)

	for _, line := range stats.Lines() {
		log.Println(line)
	}
}
