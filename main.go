package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/lifeboard/model"
	"github.com/sheikhrachel/lifeboard/render"
	"github.com/sheikhrachel/lifeboard/render/text"
	"github.com/sheikhrachel/lifeboard/sim"
	"github.com/sheikhrachel/lifeboard/utils"
)

func main() {
	var (
		configPath  = flag.String("config", "config.json", "path to a JSON configuration file")
		headless    = flag.Bool("headless", false, "print generations to the terminal instead of opening a window")
		clearScreen = flag.Bool("clear", false, "headless: clear the terminal before each generation")
		generations = flag.Int("generations", -1, "headless: number of generations to run, 0 for no limit")
		pattern     = flag.String("pattern", "", "starting pattern: empty, glider, blinker, block, random or mixed")
		running     = flag.Bool("running", false, "start running instead of paused")
	)
	flag.Parse()

	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(*configPath)
	if err != nil {
		if !os.IsNotExist(errors.Cause(err)) {
			log.Fatalf("%+v", err)
		}
		log.Printf("Using default configuration (%s not found)", *configPath)
		config = utils.DefaultConfig()
	}

	if *generations >= 0 {
		config.Generations = *generations
	}
	if *pattern != "" {
		config.Pattern = *pattern
	}
	if *running {
		config.StartPaused = false
	}
	if err = config.Validate(); err != nil {
		log.Fatalf("%+v", errors.Wrap(err, "[main] bad command line"))
	}

	grid, pool, err := initializeGame(config)
	if err != nil {
		log.Fatalf("%+v", err)
	}
	displayGameInfo(config, grid, *headless)

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if *headless {
		err = runHeadless(ctx, config, grid, pool, text.NewTerminal(os.Stdout, *clearScreen))
	} else {
		err = runWindow(ctx, config, grid, pool)
	}
	if err != nil {
		log.Fatalf("%+v", err)
	}
}

// runWindow opens the interactive board and blocks until the window closes or a signal arrives
func runWindow(ctx context.Context, config utils.Config, grid *model.Grid, pool *model.GridPool) error {
	ticker := sim.NewTicker(config.Rate, nil)
	window := render.NewWindow(config.Title, ticker)
	ctrl := newController(config, grid, pool, window, window, config.StartPaused)
	window.Attach(ctrl)

	ctx, cancel := context.WithCancel(ctx)
	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		<-ctx.Done()
		window.Quit()
		return nil
	})

	runErr := window.Run(config.WindowSize())
	cancel()
	if err := eg.Wait(); err != nil {
		return errors.Wrap(err, "[runWindow] signal watcher failed")
	}

	log.Println("Shutting down gracefully...")
	displayFinalStats(ctrl)
	return errors.Wrap(runErr, "[runWindow] window closed with error")
}

// runHeadless steps the board on a timer, printing every generation, until a stop condition or signal
func runHeadless(
	ctx context.Context,
	config utils.Config,
	grid *model.Grid,
	pool *model.GridPool,
	renderer sim.Renderer,
) error {
	scheduler := newTickerScheduler(config.Rate)
	defer scheduler.Stop()

	ctrl := newController(config, grid, pool, renderer, scheduler, false)
	renderer.Redraw(ctrl.Frame())

	var history model.History
	for {
		select {
		case <-ctx.Done():
			log.Println("Shutting down gracefully...")
			displayFinalStats(ctrl)
			return nil
		case <-scheduler.ticker.C:
		}

		history.Push(ctrl.Grid().Hash())
		ctrl.Tick()

		current := ctrl.Grid()
		stop, reason := checkStopConditions(
			current.CountLivingCells(),
			ctrl.State().Generation,
			history.IsStagnant(current.Hash()),
			config,
		)
		if stop {
			log.Printf("Stopping: %s", reason)
			displayFinalStats(ctrl)
			return nil
		}
	}
}
