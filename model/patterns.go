package model

import (
	"math/rand"

	"github.com/pkg/errors"
)

// Pattern names accepted by SeedPattern
const (
	PatternEmpty   = "empty"
	PatternGlider  = "glider"
	PatternBlinker = "blinker"
	PatternBlock   = "block"
	PatternRandom  = "random"
	PatternMixed   = "mixed"
)

// ErrUnknownPattern is returned for a pattern name SeedPattern does not know
var ErrUnknownPattern = errors.New("unknown pattern")

// KnownPattern reports whether name can be passed to SeedPattern
func KnownPattern(name string) bool {
	switch name {
	case "", PatternEmpty, PatternGlider, PatternBlinker, PatternBlock, PatternRandom, PatternMixed:
		return true
	}
	return false
}

// AddGlider adds a glider pattern with its bounding box at the specified position
func (g *Grid) AddGlider(startX, startY int) {
	pattern := [][]bool{
		{false, true, false},
		{false, false, true},
		{true, true, true},
	}

	for y, row := range pattern {
		for x, cell := range row {
			g.Set(startX+x, startY+y, cell)
		}
	}
}

// AddBlinker adds a horizontal period-2 blinker starting at the specified position
func (g *Grid) AddBlinker(startX, startY int) {
	g.Set(startX, startY, true)
	g.Set(startX+1, startY, true)
	g.Set(startX+2, startY, true)
}

// AddBlock adds the 2x2 block still life
func (g *Grid) AddBlock(startX, startY int) {
	g.Set(startX, startY, true)
	g.Set(startX+1, startY, true)
	g.Set(startX, startY+1, true)
	g.Set(startX+1, startY+1, true)
}

// Randomize brings cells to life with the given probability. Living cells are left alive.
func (g *Grid) Randomize(rng *rand.Rand, density float64) {
	for i := range g.cells {
		if rng.Float64() < density {
			g.cells[i].Alive = true
		}
	}
}

// SeedPattern clears the grid and lays out the named starting pattern
func (g *Grid) SeedPattern(name string, rng *rand.Rand, density float64) error {
	if !KnownPattern(name) {
		return errors.Wrapf(ErrUnknownPattern, "[SeedPattern] %q", name)
	}

	g.Clear()
	cx, cy := g.width/2, g.height/2

	switch name {
	case PatternGlider:
		g.AddGlider(cx-1, cy-1)
	case PatternBlinker:
		g.AddBlinker(cx-1, cy)
	case PatternBlock:
		g.AddBlock(cx-1, cy-1)
	case PatternRandom:
		g.Randomize(rng, density)
	case PatternMixed:
		if g.width >= 10 && g.height >= 10 {
			g.AddGlider(5, 5)
			if g.width >= 20 && g.height >= 15 {
				g.AddGlider(g.width-8, 5)
			}

			g.AddBlinker(g.width/4, g.height/4)
			if g.width >= 30 {
				g.AddBlinker(3*g.width/4, 3*g.height/4)
			}
		}
		g.Randomize(rng, density)
	}

	return nil
}
