package rules

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		alive     bool
		neighbors int
		want      Outcome
	}{
		{alive: true, neighbors: 0, want: Underpopulation},
		{alive: true, neighbors: 1, want: Underpopulation},
		{alive: true, neighbors: 2, want: Survival},
		{alive: true, neighbors: 3, want: Survival},
		{alive: true, neighbors: 4, want: Overpopulation},
		{alive: true, neighbors: 8, want: Overpopulation},
		{alive: false, neighbors: 3, want: Reproduction},
		{alive: false, neighbors: 0, want: Unchanged},
		{alive: false, neighbors: 2, want: Unchanged},
		{alive: false, neighbors: 4, want: Unchanged},
		{alive: false, neighbors: 8, want: Unchanged},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("alive=%v/n=%d", tt.alive, tt.neighbors), func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.alive, tt.neighbors))
		})
	}
}

func TestApplyConwayRules(t *testing.T) {
	for n := 0; n <= 8; n++ {
		assert.Equal(t, n == 2 || n == 3, ApplyConwayRules(n, true), "living cell with %d neighbors", n)
		assert.Equal(t, n == 3, ApplyConwayRules(n, false), "dead cell with %d neighbors", n)
	}
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "reproduction", Reproduction.String())
	assert.Equal(t, "unknown", Outcome(42).String())
}
