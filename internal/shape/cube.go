package shape

// Cube is a hollow cube of half-extent Width centered at the origin.
type Cube struct {
	Width   float64
	Density float64
}

func (c *Cube) Name() string { return "cube" }

func (c *Cube) Points(dst []Point) []Point {
	w := c.Width
	steps := arange(-w, w, c.Density)
	for _, u := range steps {
		for _, v := range steps {
			dst = append(dst,
				pt(u, v, -w, '.'),  // front
				pt(w, v, u, '$'),   // right
				pt(-w, v, -u, '~'), // left
				pt(-u, v, w, '#'),  // back
				pt(u, -w, -v, ';'), // bottom
				pt(u, w, v, '-'),   // top
			)
		}
	}
	return dst
}
