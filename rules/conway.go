package rules

// Outcome names which rule decided a cell's next state.
type Outcome int

const (
	// Unchanged covers every case no other rule matches: a dead cell stays dead.
	Unchanged Outcome = iota
	// Underpopulation kills a living cell with fewer than two living neighbors.
	Underpopulation
	// Survival keeps a living cell with two or three living neighbors.
	Survival
	// Overpopulation kills a living cell with more than three living neighbors.
	Overpopulation
	// Reproduction revives a dead cell with exactly three living neighbors.
	Reproduction
)

var outcomeNames = [...]string{
	Unchanged:       "unchanged",
	Underpopulation: "underpopulation",
	Survival:        "survival",
	Overpopulation:  "overpopulation",
	Reproduction:    "reproduction",
}

func (o Outcome) String() string {
	if o < 0 || int(o) >= len(outcomeNames) {
		return "unknown"
	}
	return outcomeNames[o]
}

// Alive reports the cell state an outcome leaves behind, given the state it started from.
func (o Outcome) Alive(was bool) bool {
	switch o {
	case Underpopulation, Overpopulation:
		return false
	case Survival, Reproduction:
		return true
	default:
		return was
	}
}

/*
Classify applies Conway's Game of Life rules in order and returns the first match:

 1. living and fewer than 2 neighbors: dies
 2. living and 2 or 3 neighbors: lives on
 3. living and more than 3 neighbors: dies
 4. dead and exactly 3 neighbors: becomes alive
 5. otherwise the state is unchanged
*/
func Classify(alive bool, neighbors int) Outcome {
	switch {
	case alive && neighbors < 2:
		return Underpopulation
	case alive && neighbors <= 3:
		return Survival
	case alive:
		return Overpopulation
	case neighbors == 3:
		return Reproduction
	default:
		return Unchanged
	}
}

// ApplyConwayRules returns the next state of a cell with the given number of living neighbors.
func ApplyConwayRules(neighbors int, alive bool) bool {
	return Classify(alive, neighbors).Alive(alive)
}
