// Package text renders frames as plain text for headless runs. It has no GUI
// dependencies, so it builds without cgo or a display.
package text

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/sheikhrachel/lifeboard/sim"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	clearCmd = "clear"
)

// Terminal draws frames as text, two columns per cell
type Terminal struct {
	out        io.Writer
	clear      bool
	ShowStatus bool
}

// NewTerminal writes frames to out. With clearScreen set, the terminal is cleared before each frame.
func NewTerminal(out io.Writer, clearScreen bool) *Terminal {
	return &Terminal{out: out, clear: clearScreen, ShowStatus: true}
}

// Redraw renders the frame
func (r *Terminal) Redraw(f sim.Frame) {
	if r.clear {
		r.Clear()
	}

	alive := make([]bool, f.Cols*f.Rows)
	for _, p := range f.Living {
		alive[p.Y*f.Cols+p.X] = true
	}

	w := bufio.NewWriter(r.out)
	if r.ShowStatus && f.Status != "" {
		fmt.Fprintln(w, f.Status)
	}
	for y := 0; y < f.Rows; y++ {
		for x := 0; x < f.Cols; x++ {
			if alive[y*f.Cols+x] {
				w.WriteString(gridPosBlock)
			} else {
				w.WriteString(gridPosEmpty)
			}
		}
		w.WriteByte('\n')
	}
	if err := w.Flush(); err != nil {
		fmt.Fprintln(os.Stderr, "Error writing frame:", err)
	}
}

// Clear clears the terminal screen
func (r *Terminal) Clear() {
	cmd := exec.Command(clearCmd)
	cmd.Stdout = r.out
	if err := cmd.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error clearing terminal:", err)
	}
}
