package viz

import (
	"testing"

	"github.com/Jurkyy/spinny-cube/internal/shape"
)

func benchmarkRender(b *testing.B, s shape.Shape) {
	c := NewCanvas(160, 55, ' ')
	r := NewRenderer(defaultProjector())
	angles := Angles{}
	spin := Angles{A: -0.03, B: 0.02, C: -0.04}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.Render(c, s, angles)
		angles = angles.Advance(spin)
	}
}

func BenchmarkRenderCube(b *testing.B) {
	benchmarkRender(b, &shape.Cube{Width: 10, Density: 0.5})
}

func BenchmarkRenderSphere(b *testing.B) {
	benchmarkRender(b, &shape.Sphere{Radius: 10, Density: 0.5})
}

func BenchmarkRenderHexPrism(b *testing.B) {
	benchmarkRender(b, &shape.HexagonalPrism{Radius: 10, Height: 20, Density: 0.5})
}

func BenchmarkRenderTorus(b *testing.B) {
	benchmarkRender(b, shape.NewTwistedTorus(15, 5))
}
