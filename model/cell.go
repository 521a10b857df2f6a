package model

import "fmt"

// Point is a cell coordinate on the grid
type Point struct {
	X, Y int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Cell is a single square of the board. Its position is fixed when the grid is built.
type Cell struct {
	pos   Point
	Alive bool
}

// Pos returns the cell's position on the grid
func (c Cell) Pos() Point {
	return c.pos
}

func (c Cell) String() string {
	state := "Dead"
	if c.Alive {
		state = "Live"
	}
	return fmt.Sprintf("%s Cell at %s", state, c.pos)
}

// neighborOffsets walks the eight compass directions, starting east and going around.
var neighborOffsets = [8]Point{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1},
	{-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

// Neighbors returns the positions around p that lie inside a width x height grid.
// Positions past an edge are dropped, not wrapped.
func Neighbors(p Point, width, height int) []Point {
	out := make([]Point, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		nx, ny := p.X+d.X, p.Y+d.Y
		if nx < 0 || ny < 0 || nx >= width || ny >= height {
			continue
		}
		out = append(out, Point{nx, ny})
	}
	return out
}
