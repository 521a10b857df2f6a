package main

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/lifeboard/model"
	"github.com/sheikhrachel/lifeboard/sim"
	"github.com/sheikhrachel/lifeboard/utils"
)

// initializeGame builds the starting grid and, if enabled, the pool generations are recycled through
func initializeGame(config utils.Config) (*model.Grid, *model.GridPool, error) {
	var pool *model.GridPool
	if config.UseMemoryPool {
		pool = model.NewGridPool()
	}

	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	grid := model.NewGrid(config.Width, config.Height)
	if err := grid.SeedPattern(config.Pattern, rand.New(rand.NewSource(seed)), config.RandomDensity); err != nil {
		return nil, nil, errors.Wrap(err, "[initializeGame] failed to seed grid")
	}

	return grid, pool, nil
}

// newController wires a controller to the given collaborators using the config
func newController(
	config utils.Config,
	grid *model.Grid,
	pool *model.GridPool,
	renderer sim.Renderer,
	scheduler sim.Scheduler,
	paused bool,
) *sim.Controller {
	return sim.NewController(grid,
		sim.WithRenderer(renderer),
		sim.WithScheduler(scheduler),
		sim.WithPool(pool),
		sim.WithCellSize(config.CellSize),
		sim.WithRate(config.Rate),
		sim.WithPaused(paused),
	)
}

// displayGameInfo shows the initial game information
func displayGameInfo(config utils.Config, grid *model.Grid, headless bool) {
	log.Printf("Grid: %dx%d | Cell size: %dpx | Initial living cells: %d",
		grid.Width(), grid.Height(), config.CellSize, grid.CountLivingCells())
	log.Printf("Rate: %d gen/s | Memory pool: %v | Starts paused: %v",
		config.Rate, config.UseMemoryPool, config.StartPaused && !headless)
	if headless {
		log.Printf("Headless run for %d generations, press Ctrl+C to stop", config.Generations)
		return
	}
	log.Println("Space: pause/resume | Up/Down: speed | Click: toggle cell | C: clear | Esc: quit")
}

// displayFinalStats shows the summary printed on shutdown
func displayFinalStats(ctrl *sim.Controller) {
	var (
		stats = ctrl.Stats()
		now   = time.Now()
	)
	fmt.Printf("Final stats: %d generations in %.1f seconds\n",
		ctrl.State().Generation, stats.Runtime(now).Seconds())
	fmt.Printf("Average: %.1f gen/sec (last %.1f), %.1f avg population, %d living\n",
		stats.AverageGenerationsPerSecond(now), stats.GenerationsPerSecond,
		stats.AveragePopulation, ctrl.Grid().CountLivingCells())
}

// checkStopConditions determines if a headless run should end
func checkStopConditions(livingCells, generation int, stagnant bool, config utils.Config) (bool, string) {
	if config.Generations > 0 && generation >= config.Generations {
		return true, "generation limit reached"
	}
	if livingCells == 0 {
		return true, "extinction"
	}
	if config.StopOnStagnation && stagnant {
		return true, "stagnation detected"
	}
	return false, ""
}

// tickerScheduler paces headless runs with a time.Ticker that is reset on every rate change
type tickerScheduler struct {
	ticker *time.Ticker
}

func newTickerScheduler(rate int) *tickerScheduler {
	return &tickerScheduler{ticker: time.NewTicker(rateInterval(rate))}
}

func (s *tickerScheduler) SetRate(rate int) {
	s.ticker.Reset(rateInterval(rate))
}

func (s *tickerScheduler) Stop() {
	s.ticker.Stop()
}

func rateInterval(rate int) time.Duration {
	return time.Second / time.Duration(max(rate, 1))
}
