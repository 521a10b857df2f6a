package text

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sheikhrachel/lifeboard/model"
	"github.com/sheikhrachel/lifeboard/sim"
)

func TestTerminalRedraw(t *testing.T) {
	g := model.NewGrid(3, 2)
	g.Set(0, 0, true)
	g.Set(2, 1, true)

	var buf bytes.Buffer
	term := NewTerminal(&buf, false)
	f := sim.BuildFrame(g, sim.NewLayout(5))
	f.Status = "paused"
	term.Redraw(f)

	assert.Equal(t, "paused\n██    \n    ██\n", buf.String())
}

func TestTerminalRedrawWithoutStatus(t *testing.T) {
	var buf bytes.Buffer
	term := NewTerminal(&buf, false)
	term.ShowStatus = false
	term.Redraw(sim.BuildFrame(model.NewGrid(1, 1), sim.NewLayout(5)))

	assert.Equal(t, "  \n", buf.String())
}
