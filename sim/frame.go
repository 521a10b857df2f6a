package sim

import "github.com/sheikhrachel/lifeboard/model"

// Rect is a filled square to paint, in pixels
type Rect struct {
	X, Y, W, H float64
}

// Layout fixes how grid coordinates become pixels
type Layout struct {
	CellSize  int
	Offset    float64 // gap between a grid line and the cell fill
	LineWidth float64
}

// NewLayout derives line width and cell offset from the cell size
func NewLayout(cellSize int) Layout {
	return Layout{
		CellSize:  cellSize,
		Offset:    float64(cellSize) / 40,
		LineWidth: float64(cellSize) / 20,
	}
}

// Frame is everything a renderer needs to redraw the board once
type Frame struct {
	Width, Height int // window size in pixels
	Cols, Rows    int
	CellSize      int
	LineWidth     float64
	Cells         []Rect
	Living        []model.Point
	Status        string
}

// BuildFrame lays out one fill command per living cell plus the grid overlay
func BuildFrame(g *model.Grid, l Layout) Frame {
	cs := float64(l.CellSize)
	living := g.LivingCells()

	f := Frame{
		Width:     g.Width() * l.CellSize,
		Height:    g.Height() * l.CellSize,
		Cols:      g.Width(),
		Rows:      g.Height(),
		CellSize:  l.CellSize,
		LineWidth: l.LineWidth,
		Cells:     make([]Rect, 0, len(living)),
		Living:    living,
	}
	for _, p := range living {
		f.Cells = append(f.Cells, Rect{
			X: float64(p.X)*cs + l.Offset,
			Y: float64(p.Y)*cs + l.Offset,
			W: cs - l.Offset,
			H: cs - l.Offset,
		})
	}
	return f
}

// Renderer receives a fresh frame whenever the board changes or a tick passes
type Renderer interface {
	Redraw(Frame)
}

// Scheduler re-arms the tick timer when the generation rate changes
type Scheduler interface {
	SetRate(generationsPerSecond int)
}

type nopRenderer struct{}

func (nopRenderer) Redraw(Frame) {}

type nopScheduler struct{}

func (nopScheduler) SetRate(int) {}
