package viz

import (
	"github.com/Jurkyy/spinny-cube/internal/shape"
)

// Renderer runs the rotate, project and rasterize stages over a shape. It
// reuses its point buffer between frames.
type Renderer struct {
	Projector Projector
	points    []shape.Point
}

func NewRenderer(p Projector) *Renderer {
	return &Renderer{Projector: p}
}

// FrameInfo summarizes one rendered frame.
type FrameInfo struct {
	Points  int
	Plotted int
	Skipped int
}

// Render clears c and draws s rotated by r into it.
func (rd *Renderer) Render(c *Canvas, s shape.Shape, r Angles) FrameInfo {
	c.Clear()
	rd.points = s.Points(rd.points[:0])

	b := r.Basis()
	info := FrameInfo{Points: len(rd.points)}
	for _, p := range rd.points {
		v := b.Apply(p.Pos)
		xp, yp, ooz, ok := rd.Projector.Project(v.X(), v.Y(), v.Z())
		if !ok {
			info.Skipped++
			continue
		}
		if c.Plot(xp, yp, p.Glyph, ooz) {
			info.Plotted++
		}
	}
	return info
}
