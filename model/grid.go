package model

import (
	"crypto/md5"
	"fmt"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/lifeboard/rules"
)

// Grid is the game board: a fixed width x height arena of cells addressed by position
type Grid struct {
	width  int
	height int
	cells  []Cell // row-major, index y*width + x
}

// NewGrid creates a grid of dead cells with the specified dimensions
func NewGrid(width, height int) *Grid {
	g := &Grid{}
	g.Reset(width, height)
	return g
}

// Width returns the width of the grid
func (g *Grid) Width() int {
	return g.width
}

// Height returns the height of the grid
func (g *Grid) Height() int {
	return g.height
}

// Reset resizes the grid and kills every cell
func (g *Grid) Reset(width, height int) {
	if width <= 0 || height <= 0 {
		panic(errors.Errorf("[Grid.Reset] invalid grid size %dx%d", width, height))
	}
	g.width = width
	g.height = height

	if cap(g.cells) < width*height {
		g.cells = make([]Cell, width*height)
	}
	g.cells = g.cells[:width*height]
	for i := range g.cells {
		g.cells[i] = Cell{pos: Point{X: i % width, Y: i / width}}
	}
}

// Clear kills all cells
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i].Alive = false
	}
}

// InBounds reports whether (x, y) addresses a cell of the grid
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

func (g *Grid) index(x, y int) int {
	if !g.InBounds(x, y) {
		panic(errors.Errorf("[Grid] cell (%d,%d) out of range for %dx%d grid", x, y, g.width, g.height))
	}
	return y*g.width + x
}

// At returns the cell at (x, y). It panics when (x, y) is outside the grid.
func (g *Grid) At(x, y int) Cell {
	return g.cells[g.index(x, y)]
}

// Alive returns the state of a cell, treating anything off the board as dead
func (g *Grid) Alive(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	return g.cells[y*g.width+x].Alive
}

// Set sets a cell to alive (true) or dead (false). Positions off the board are ignored.
func (g *Grid) Set(x, y int, alive bool) {
	if g.InBounds(x, y) {
		g.cells[y*g.width+x].Alive = alive
	}
}

// Toggle flips the cell at (x, y) and leaves every other cell alone.
// Callers must bounds-check first: an out of range coordinate panics.
func (g *Grid) Toggle(x, y int) {
	i := g.index(x, y)
	g.cells[i].Alive = !g.cells[i].Alive
}

// Neighbors returns the in-bounds neighbor positions of (x, y)
func (g *Grid) Neighbors(x, y int) []Point {
	return Neighbors(Point{X: x, Y: y}, g.width, g.height)
}

// CountLivingNeighbors counts living neighbors, computing the bounded window once
func (g *Grid) CountLivingNeighbors(x, y int) int {
	count := 0

	minX := max(0, x-1)
	maxX := min(g.width-1, x+1)
	minY := max(0, y-1)
	maxY := min(g.height-1, y+1)

	for ny := minY; ny <= maxY; ny++ {
		row := ny * g.width
		for nx := minX; nx <= maxX; nx++ {
			if nx == x && ny == y {
				continue // a cell is never its own neighbor
			}
			if g.cells[row+nx].Alive {
				count++
			}
		}
	}

	return count
}

// Step calculates the next generation. The receiver is only read; every decision
// is based on the current generation and written into a separate grid, taken from
// pool when one is given.
func (g *Grid) Step(pool *GridPool) *Grid {
	var next *Grid
	if pool != nil {
		next = pool.Get(g.width, g.height)
	} else {
		next = NewGrid(g.width, g.height)
	}

	for i, c := range g.cells {
		next.cells[i].Alive = rules.ApplyConwayRules(g.CountLivingNeighbors(c.pos.X, c.pos.Y), c.Alive)
	}

	return next
}

// Clone returns an independent copy of the grid
func (g *Grid) Clone() *Grid {
	out := &Grid{width: g.width, height: g.height, cells: make([]Cell, len(g.cells))}
	copy(out.cells, g.cells)
	return out
}

// Equal reports whether both grids have the same size and cell states
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.width != other.width || g.height != other.height {
		return false
	}
	for i := range g.cells {
		if g.cells[i].Alive != other.cells[i].Alive {
			return false
		}
	}
	return true
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for _, c := range g.cells {
		if c.Alive {
			count++
		}
	}
	return
}

// LivingCells returns the positions of living cells in row-major order
func (g *Grid) LivingCells() []Point {
	var out []Point
	for _, c := range g.cells {
		if c.Alive {
			out = append(out, c.pos)
		}
	}
	return out
}

// Hash returns an MD5 digest of the current grid state
func (g *Grid) Hash() string {
	h := md5.New()
	buf := make([]byte, len(g.cells))
	for i, c := range g.cells {
		if c.Alive {
			buf[i] = 1
		}
	}
	h.Write(buf)
	return fmt.Sprintf("%x", h.Sum(nil))
}
