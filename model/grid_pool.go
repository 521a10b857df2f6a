package model

import "sync"

// GridToPool returns a grid to the pool for reuse
func GridToPool(grid *Grid, pool *GridPool) {
	if pool == nil || grid == nil {
		return
	}

	pool.Put(grid)
}

// GridPool holds boards a tick has replaced. Step takes its next generation from
// the pool and the controller puts the old one back, so a running simulation
// swaps between the same few grids instead of allocating one per generation.
type GridPool struct {
	pool sync.Pool
}

func NewGridPool() *GridPool {
	return &GridPool{
		pool: sync.Pool{
			New: func() interface{} {
				return &Grid{}
			},
		},
	}
}

// Get retrieves a grid from the pool, resized to width x height with every cell dead
func (p *GridPool) Get(width, height int) *Grid {
	g := p.pool.Get().(*Grid)
	g.Reset(width, height)
	return g
}

// Put returns a replaced generation to the pool. The caller must not use g afterwards.
func (p *GridPool) Put(g *Grid) {
	p.pool.Put(g)
}
