package shape

import "errors"

// ErrUnknownShape indicates a shape kind with no registered constructor.
var ErrUnknownShape = errors.New("shape: unknown shape kind")
