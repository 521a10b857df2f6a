// Package sim runs the interactive loop around a Game of Life grid: the
// run/pause state machine, the generation rate, and the mapping from pointer
// and keyboard input to grid edits. It never draws anything itself; every
// change is handed to a Renderer as a Frame.
package sim

import (
	"fmt"
	"time"

	"github.com/sheikhrachel/lifeboard/model"
	"github.com/sheikhrachel/lifeboard/utils"
)

// DefaultCellSize is the pixel size of one cell when none is configured
const DefaultCellSize = 5

// State is the controller's mutable state, kept in one place so it can be inspected between events
type State struct {
	Paused     bool
	Rate       int // generations per second, at least 1
	Cursor     model.Point
	Focused    bool // pointer is over the board
	Generation int
}

// Controller owns the grid and reacts to ticks and input events. It is not safe
// for concurrent use; drive it from a single event loop.
type Controller struct {
	grid      *model.Grid
	pool      *model.GridPool
	state     State
	layout    Layout
	renderer  Renderer
	scheduler Scheduler
	stats     *utils.Stats
	now       func() time.Time
	lastTick  time.Time
}

type Option func(*Controller)

// WithRenderer sets who receives redraw requests
func WithRenderer(r Renderer) Option {
	return func(c *Controller) { c.renderer = r }
}

// WithScheduler sets the timer that is re-armed on rate changes
func WithScheduler(s Scheduler) Option {
	return func(c *Controller) { c.scheduler = s }
}

// WithPool recycles replaced generations through pool
func WithPool(pool *model.GridPool) Option {
	return func(c *Controller) { c.pool = pool }
}

func WithCellSize(size int) Option {
	return func(c *Controller) { c.layout = NewLayout(size) }
}

// WithRate sets the starting generations per second, floored at 1
func WithRate(rate int) Option {
	return func(c *Controller) { c.state.Rate = max(rate, 1) }
}

// WithPaused chooses whether the controller starts paused. The default is paused.
func WithPaused(paused bool) Option {
	return func(c *Controller) { c.state.Paused = paused }
}

func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// NewController takes ownership of grid. Unless told otherwise it starts paused
// at one generation per second, so an empty board sits still until resumed.
func NewController(grid *model.Grid, opts ...Option) *Controller {
	c := &Controller{
		grid:      grid,
		state:     State{Paused: true, Rate: 1},
		layout:    NewLayout(DefaultCellSize),
		renderer:  nopRenderer{},
		scheduler: nopScheduler{},
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.stats = utils.NewStatsAt(c.now())
	c.lastTick = c.now()
	c.scheduler.SetRate(c.state.Rate)
	return c
}

// Grid returns the current generation. It is replaced on the next running tick.
func (c *Controller) Grid() *model.Grid {
	return c.grid
}

// State returns a copy of the controller state
func (c *Controller) State() State {
	return c.state
}

func (c *Controller) Stats() utils.Stats {
	return *c.stats
}

// Tick advances one generation when running and redraws either way
func (c *Controller) Tick() {
	if !c.state.Paused {
		next := c.grid.Step(c.pool)
		model.GridToPool(c.grid, c.pool)
		c.grid = next
		c.state.Generation++

		now := c.now()
		c.stats.Update(c.state.Generation, c.grid.CountLivingCells(), now.Sub(c.lastTick))
		c.lastTick = now
	}
	c.redraw()
}

// TogglePause switches between running and paused
func (c *Controller) TogglePause() {
	if c.state.Paused {
		c.Resume()
		return
	}
	c.Pause()
}

func (c *Controller) Pause() {
	c.state.Paused = true
}

func (c *Controller) Resume() {
	if c.state.Paused {
		c.lastTick = c.now()
	}
	c.state.Paused = false
}

// SpeedUp adds one generation per second and re-arms the scheduler
func (c *Controller) SpeedUp() {
	c.setRate(c.state.Rate + 1)
}

// SlowDown removes one generation per second. At 1 it does nothing.
func (c *Controller) SlowDown() {
	if c.state.Rate <= 1 {
		return
	}
	c.setRate(c.state.Rate - 1)
}

func (c *Controller) setRate(rate int) {
	c.state.Rate = rate
	c.scheduler.SetRate(rate)
}

// MouseMove records the pointer position in pixels. Positions off the board
// only clear the focus; the last cell under the pointer is kept.
func (c *Controller) MouseMove(px, py float64) {
	p, ok := PixelToCell(px, py, c.layout.CellSize, c.grid.Width(), c.grid.Height())
	c.state.Focused = ok
	if ok {
		c.state.Cursor = p
	}
}

// MouseDown toggles the cell under the pointer on a primary click while the pointer is on the board
func (c *Controller) MouseDown(b Button) {
	if b != ButtonPrimary || !c.state.Focused {
		return
	}
	c.grid.Toggle(c.state.Cursor.X, c.state.Cursor.Y)
	c.redraw()
}

// KeyDown applies a key binding and reports whether the key asks to quit
func (c *Controller) KeyDown(k Key) (quit bool) {
	switch k {
	case KeySpace:
		c.TogglePause()
	case KeyUp:
		c.SpeedUp()
	case KeyDown:
		c.SlowDown()
	case KeyC:
		c.grid.Clear()
		c.redraw()
	case KeyEscape:
		return true
	}
	return false
}

// Status is a one-line summary for a window title or log line
func (c *Controller) Status() string {
	mode := "running"
	if c.state.Paused {
		mode = "paused"
	}
	return fmt.Sprintf("%s | %d gen/s | Gen: %d | Living: %d",
		mode, c.state.Rate, c.state.Generation, c.grid.CountLivingCells())
}

// Frame builds the redraw request for the current grid
func (c *Controller) Frame() Frame {
	f := BuildFrame(c.grid, c.layout)
	f.Status = c.Status()
	return f
}

func (c *Controller) redraw() {
	c.renderer.Redraw(c.Frame())
}
