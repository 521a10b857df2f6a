package main

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sheikhrachel/lifeboard/model"
	"github.com/sheikhrachel/lifeboard/sim"
	"github.com/sheikhrachel/lifeboard/utils"
)

type frameCounter struct {
	frames []sim.Frame
}

func (f *frameCounter) Redraw(frame sim.Frame) {
	f.frames = append(f.frames, frame)
}

func TestInitializeGame(t *testing.T) {
	config := utils.DefaultConfig()
	config.Width, config.Height = 20, 20
	config.Pattern = model.PatternGlider
	config.Seed = 42

	grid, pool, err := initializeGame(config)
	require.NoError(t, err)
	assert.NotNil(t, pool)
	assert.Equal(t, 5, grid.CountLivingCells())

	config.UseMemoryPool = false
	config.Pattern = ""
	grid, pool, err = initializeGame(config)
	require.NoError(t, err)
	assert.Nil(t, pool)
	assert.Zero(t, grid.CountLivingCells())
}

func TestInitializeGameUnknownPattern(t *testing.T) {
	config := utils.DefaultConfig()
	config.Pattern = "pulsar"
	_, _, err := initializeGame(config)
	assert.ErrorIs(t, err, model.ErrUnknownPattern)
}

func TestCheckStopConditions(t *testing.T) {
	config := utils.DefaultConfig()
	config.Generations = 10

	tests := []struct {
		name       string
		living     int
		generation int
		stagnant   bool
		stop       bool
		reason     string
	}{
		{"active", 5, 3, false, false, ""},
		{"limit", 5, 10, false, true, "generation limit reached"},
		{"extinct", 0, 3, false, true, "extinction"},
		{"stagnant", 4, 3, true, true, "stagnation detected"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stop, reason := checkStopConditions(tt.living, tt.generation, tt.stagnant, config)
			assert.Equal(t, tt.stop, stop)
			assert.Equal(t, tt.reason, reason)
		})
	}
}

func TestRunHeadlessStopsOnOscillator(t *testing.T) {
	config := utils.DefaultConfig()
	config.Rate = 1000
	config.Generations = 0

	grid := model.NewGrid(5, 5)
	grid.AddBlinker(1, 2)

	frames := &frameCounter{}
	require.NoError(t, runHeadless(context.Background(), config, grid, model.NewGridPool(), frames))

	// the initial frame plus three generations, the third repeating the first
	require.Len(t, frames.frames, 4)
	assert.Equal(t, frames.frames[1].Living, frames.frames[3].Living)
}

func TestRunHeadlessStopsOnCancel(t *testing.T) {
	config := utils.DefaultConfig()
	config.Generations = 0

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	frames := &frameCounter{}
	require.NoError(t, runHeadless(ctx, config, model.NewGrid(5, 5), nil, frames))
	assert.Len(t, frames.frames, 1)
}

func TestTickerSchedulerRearmsOnRateChange(t *testing.T) {
	s := newTickerScheduler(1)
	defer s.Stop()

	start := time.Now()
	s.SetRate(100)

	select {
	case <-s.ticker.C:
		assert.Less(t, time.Since(start), 500*time.Millisecond, "ticked at the old one second interval")
	case <-time.After(500 * time.Millisecond):
		t.Fatal("ticker did not fire at the new rate")
	}
}

func TestRateInterval(t *testing.T) {
	assert.Equal(t, 250*time.Millisecond, rateInterval(4))
	assert.Equal(t, time.Second, rateInterval(0))
}
