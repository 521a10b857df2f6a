package sim

import "github.com/sheikhrachel/lifeboard/model"

// Key identifies a keyboard key the simulation reacts to
type Key int

const (
	KeyUnknown Key = iota
	KeySpace       // pause or resume
	KeyUp          // one more generation per second
	KeyDown        // one fewer generation per second
	KeyC           // clear the board
	KeyEscape      // quit
)

// Button identifies a mouse button
type Button int

const (
	ButtonPrimary Button = iota
	ButtonSecondary
	ButtonMiddle
)

// PixelToCell maps a pointer position in pixels to the cell under it on a
// width x height grid drawn with cellSize pixel squares. The second result is
// false when the pointer is outside the board on either axis or not a number.
func PixelToCell(px, py float64, cellSize, width, height int) (model.Point, bool) {
	maxX := float64(width * cellSize)
	maxY := float64(height * cellSize)
	if !(px >= 0 && px < maxX && py >= 0 && py < maxY) {
		return model.Point{}, false
	}
	return model.Point{X: int(px) / cellSize, Y: int(py) / cellSize}, true
}
