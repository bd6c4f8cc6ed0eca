// Package tui puts frames from the engine on a terminal.
//
// [LiveRenderer] streams raw ANSI frames to stdout. [Model] is the Bubble Tea
// view used by the tui command.
//
// # Key Bindings
//
//	Q     - Quit
//	T     - Cycle color themes
package tui
