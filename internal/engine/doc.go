// Package engine drives the animation loop.
//
// A [Driver] owns everything that changes from frame to frame: the active
// shape, the rotation angles, the canvas and the timing statistics. Each
// frame it
//
//   - switches to the next shape once the switch interval has elapsed
//   - advances animated shapes
//   - renders the active shape into the canvas
//   - hands the canvas to a [Sink]
//   - advances the rotation angles and sleeps for the frame delay
//
// # Example
//
//	d, _ := engine.New(config.DefaultConfig())
//	err := d.Run(ctx, tui.NewLiveRenderer(os.Stdout, viz.ThemePlain))
//
// # Thread Safety
//
// A Driver is NOT thread-safe. Run, Step and the accessors must be called
// from a single goroutine.
package engine
