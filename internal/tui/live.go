package tui

import (
	"bufio"
	"fmt"
	"io"

	"github.com/Jurkyy/spinny-cube/internal/engine"
	"github.com/Jurkyy/spinny-cube/internal/viz"
)

const (
	clearScreen = "\033[2J"
	cursorHome  = "\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
)

// LiveRenderer writes frames to a terminal with raw escape sequences. It
// implements engine.Sink.
type LiveRenderer struct {
	out   *bufio.Writer
	theme viz.Theme
}

func NewLiveRenderer(w io.Writer, theme viz.Theme) *LiveRenderer {
	return &LiveRenderer{out: bufio.NewWriter(w), theme: theme}
}

// Begin clears the screen once and hides the cursor.
func (r *LiveRenderer) Begin() error {
	r.out.WriteString(clearScreen + hideCursor)
	return r.out.Flush()
}

// Frame homes the cursor and draws the grid row by row. Each row starts with
// a line break written in place of its first cell.
func (r *LiveRenderer) Frame(c *viz.Canvas) error {
	r.out.WriteString(cursorHome)
	for y := 0; y < c.Height; y++ {
		r.out.WriteByte('\n')
		row := c.Row(y)
		if len(row) > 1 {
			r.out.WriteString(r.theme.Paint(row[1:], c.Background))
		}
	}
	r.out.WriteByte('\n')
	return r.out.Flush()
}

func (r *LiveRenderer) Stats(s engine.FrameStats) error {
	fmt.Fprintf(r.out, "Frame Number: %d\n", s.Frames)
	fmt.Fprintf(r.out, "Total Time Spent Calculating: %v\n", s.Total)
	fmt.Fprintf(r.out, "Average Frame Time: %v\n", s.Average())
	return r.out.Flush()
}

// End restores the cursor.
func (r *LiveRenderer) End() error {
	r.out.WriteString(showCursor)
	return r.out.Flush()
}
