package model

// historySize is how many past states are kept; enough to spot period-3 cycles
const historySize = 5

// History remembers the hashes of recent generations to detect a board that stopped changing
type History struct {
	hashes []string
}

// Push records the hash of a generation, dropping the oldest past historySize
func (h *History) Push(hash string) {
	h.hashes = append(h.hashes, hash)
	if len(h.hashes) > historySize {
		h.hashes = h.hashes[1:]
	}
}

// IsStagnant reports whether hash repeats one of the last three recorded states,
// i.e. the board is a still life or a period 2 or 3 oscillator
func (h *History) IsStagnant(hash string) bool {
	if len(h.hashes) < 3 {
		return false
	}

	for back := 1; back <= 3; back++ {
		if h.hashes[len(h.hashes)-back] == hash {
			return true
		}
	}

	return false
}
