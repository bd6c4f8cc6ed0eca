// Package shape generates labeled 3D point clouds for parametric solids.
//
// Every solid implements [Shape]. Solids that change over time also
// implement [Animated] and are advanced once per frame with [Update]:
//
//   - [Cube]: six stippled faces, one glyph per face
//   - [Sphere]: spherical-coordinate sampling
//   - [HexagonalPrism]: edges, side faces and filled hexagonal caps
//   - [TwistedTorus]: a torus whose cross-section twists with time
//
// # Example
//
//	cube := &shape.Cube{Width: 10, Density: 0.5}
//	for _, p := range cube.Points(nil) {
//		...
//	}
//
// Generation is deterministic: the same parameters (and, for animated
// shapes, the same animation state) always produce the same sequence.
package shape
