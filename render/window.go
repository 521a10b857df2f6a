// Package render puts a sim.Frame on screen in an Ebitengine window and feeds
// the window's input back to the controller.
package render

import (
	"image/color"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/sheikhrachel/lifeboard/sim"
)

var (
	backgroundColor = color.White
	gridLineColor   = color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
	cellColor       = color.Black
)

var keyBindings = []struct {
	key ebiten.Key
	sim sim.Key
}{
	{ebiten.KeySpace, sim.KeySpace},
	{ebiten.KeyArrowUp, sim.KeyUp},
	{ebiten.KeyArrowDown, sim.KeyDown},
	{ebiten.KeyC, sim.KeyC},
	{ebiten.KeyEscape, sim.KeyEscape},
}

var buttonBindings = []struct {
	button ebiten.MouseButton
	sim    sim.Button
}{
	{ebiten.MouseButtonLeft, sim.ButtonPrimary},
	{ebiten.MouseButtonRight, sim.ButtonSecondary},
	{ebiten.MouseButtonMiddle, sim.ButtonMiddle},
}

// Window implements ebiten.Game around a sim.Controller. It is also the
// controller's Renderer and Scheduler: frames handed to Redraw are painted on
// the next Draw, and rate changes re-arm its ticker.
type Window struct {
	ctrl   *sim.Controller
	ticker *sim.Ticker
	frame  sim.Frame
	title  string
	shown  string
	quit   atomic.Bool
}

// NewWindow creates a window whose generations are paced by ticker. Call
// Attach before Run.
func NewWindow(title string, ticker *sim.Ticker) *Window {
	return &Window{title: title, ticker: ticker}
}

// Attach connects the controller that receives this window's input
func (w *Window) Attach(ctrl *sim.Controller) {
	w.ctrl = ctrl
	w.frame = ctrl.Frame()
}

// Redraw stores the frame to paint on the next Draw
func (w *Window) Redraw(f sim.Frame) {
	w.frame = f
}

// SetRate re-arms the ticker. Ebitengine's own tick rate is raised when the
// simulation needs more updates per second than the default.
func (w *Window) SetRate(rate int) {
	w.ticker.SetRate(rate)
	ebiten.SetTPS(max(ebiten.DefaultTPS, rate))
}

// Quit asks the window to close on its next update. Safe to call from any goroutine.
func (w *Window) Quit() {
	w.quit.Store(true)
}

// Run opens a non-resizable width x height window and blocks until it closes
func (w *Window) Run(width, height int) error {
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(w.title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	return ebiten.RunGame(w)
}

func (w *Window) Update() error {
	if w.quit.Load() {
		return ebiten.Termination
	}

	mx, my := ebiten.CursorPosition()
	w.ctrl.MouseMove(float64(mx), float64(my))

	for _, b := range buttonBindings {
		if inpututil.IsMouseButtonJustPressed(b.button) {
			w.ctrl.MouseDown(b.sim)
		}
	}
	for _, k := range keyBindings {
		if inpututil.IsKeyJustPressed(k.key) && w.ctrl.KeyDown(k.sim) {
			return ebiten.Termination
		}
	}

	if w.ticker.Due() {
		w.ctrl.Tick()
	}

	if title := w.title + " | " + w.frame.Status; title != w.shown {
		ebiten.SetWindowTitle(title)
		w.shown = title
	}
	return nil
}

func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	f := w.frame
	cs := float32(f.CellSize)
	width, height := float32(f.Width), float32(f.Height)
	lw := float32(f.LineWidth)

	for col := 0; col <= f.Cols; col++ {
		x := float32(col) * cs
		vector.StrokeLine(screen, x, 0, x, height, lw, gridLineColor, true)
	}
	for row := 0; row <= f.Rows; row++ {
		y := float32(row) * cs
		vector.StrokeLine(screen, 0, y, width, y, lw, gridLineColor, true)
	}

	for _, r := range f.Cells {
		vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), cellColor, false)
	}
}

func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return w.frame.Width, w.frame.Height
}
