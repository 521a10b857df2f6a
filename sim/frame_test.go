package sim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sheikhrachel/lifeboard/model"
)

func TestBuildFrame(t *testing.T) {
	g := model.NewGrid(100, 80)
	g.Set(0, 0, true)
	g.Set(3, 2, true)

	f := BuildFrame(g, NewLayout(5))

	assert.Equal(t, 500, f.Width)
	assert.Equal(t, 400, f.Height)
	assert.Equal(t, 100, f.Cols)
	assert.Equal(t, 80, f.Rows)
	assert.InDelta(t, 0.25, f.LineWidth, 1e-9)

	require.Len(t, f.Cells, 2)
	assert.Equal(t, Rect{X: 0.125, Y: 0.125, W: 4.875, H: 4.875}, f.Cells[0])
	assert.Equal(t, Rect{X: 15.125, Y: 10.125, W: 4.875, H: 4.875}, f.Cells[1])
	assert.Equal(t, []model.Point{{X: 0, Y: 0}, {X: 3, Y: 2}}, f.Living)
}

func TestBuildFrameEmpty(t *testing.T) {
	f := BuildFrame(model.NewGrid(4, 4), NewLayout(10))
	assert.Empty(t, f.Cells)
	assert.Equal(t, 40, f.Width)
}

func TestTickerFiresAtRate(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	tk := NewTicker(4, clock.Now)
	assert.Equal(t, 250*time.Millisecond, tk.Interval())

	assert.False(t, tk.Due())
	clock.Advance(249 * time.Millisecond)
	assert.False(t, tk.Due())
	clock.Advance(time.Millisecond)
	assert.True(t, tk.Due())
	assert.False(t, tk.Due(), "fires once per interval")

	clock.Advance(250 * time.Millisecond)
	assert.True(t, tk.Due())
}

func TestTickerRearmsOnRateChange(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	tk := NewTicker(1, clock.Now)

	clock.Advance(950 * time.Millisecond)
	tk.SetRate(10)

	clock.Advance(50 * time.Millisecond)
	assert.False(t, tk.Due(), "the old one second deadline no longer applies")

	clock.Advance(50 * time.Millisecond)
	assert.True(t, tk.Due())
}

func TestTickerSkipsAheadWhenLate(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	tk := NewTicker(10, clock.Now)

	clock.Advance(time.Second)
	assert.True(t, tk.Due())
	assert.False(t, tk.Due(), "missed ticks are not replayed")
}

func TestTickerRateFloor(t *testing.T) {
	tk := NewTicker(0, nil)
	assert.Equal(t, time.Second, tk.Interval())
}
