package engine

import "errors"

// Domain errors for the frame driver.
var (
	// ErrNoShapes indicates a driver configured without any shape.
	ErrNoShapes = errors.New("engine: no shapes to render")
)
