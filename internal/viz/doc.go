// Package viz turns shape point clouds into character frames.
//
// A frame is produced by a fixed pipeline:
//
//   - [Angles]: rotates every point by the current Euler angles
//   - [Projector]: perspective-projects the rotated point to a screen cell
//   - [Canvas]: keeps the nearest glyph per cell using a depth buffer
//   - [Renderer]: runs the three stages over a whole shape
//
// The package also carries the lipgloss color themes used for glyphs and the
// styles of the stats panel.
//
// Rendering is single-threaded; a Canvas must not be shared between
// goroutines.
package viz
