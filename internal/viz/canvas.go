package viz

import (
	"strings"
)

// Canvas is a character grid paired with a depth buffer of the same size.
// Depth holds inverse depth; zero means nothing has been drawn.
type Canvas struct {
	Width, Height int
	Background    rune
	Glyphs        []rune
	Depth         []float64
}

func NewCanvas(w, h int, background rune) *Canvas {
	c := &Canvas{
		Width:      w,
		Height:     h,
		Background: background,
		Glyphs:     make([]rune, w*h),
		Depth:      make([]float64, w*h),
	}
	c.Clear()
	return c
}

// Clear resets every cell to the background glyph at infinite distance.
func (c *Canvas) Clear() {
	for i := range c.Glyphs {
		c.Glyphs[i] = c.Background
	}
	clear(c.Depth)
}

// Plot writes glyph at (xp, yp) if ooz is strictly nearer than the current
// occupant. The cell is addressed by its linear index xp + yp*Width, so an x
// past the right edge wraps onto the next row; indices outside the grid are
// dropped. Plot reports whether the cell was written.
func (c *Canvas) Plot(xp, yp int, glyph rune, ooz float64) bool {
	idx := xp + yp*c.Width
	if idx < 0 || idx >= len(c.Glyphs) {
		return false
	}
	if ooz <= c.Depth[idx] {
		return false
	}
	c.Depth[idx] = ooz
	c.Glyphs[idx] = glyph
	return true
}

// At returns the glyph and depth stored at linear index idx.
func (c *Canvas) At(idx int) (rune, float64) {
	return c.Glyphs[idx], c.Depth[idx]
}

// Row returns row y of the glyph buffer.
func (c *Canvas) Row(y int) []rune {
	return c.Glyphs[y*c.Width : (y+1)*c.Width]
}

// Covered counts cells holding a drawn glyph.
func (c *Canvas) Covered() int {
	n := 0
	for _, d := range c.Depth {
		if d > 0 {
			n++
		}
	}
	return n
}

func (c *Canvas) String() string {
	var b strings.Builder
	b.Grow(len(c.Glyphs) + c.Height)
	for y := 0; y < c.Height; y++ {
		b.WriteString(string(c.Row(y)) + "\n")
	}
	return b.String()
}
