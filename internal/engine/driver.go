package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/benbjohnson/clock"
	"go.uber.org/zap"

	"github.com/Jurkyy/spinny-cube/internal/config"
	"github.com/Jurkyy/spinny-cube/internal/shape"
	"github.com/Jurkyy/spinny-cube/internal/viz"
)

// Sink receives the frames produced by Run.
type Sink interface {
	// Begin is called once before the first frame.
	Begin() error
	Frame(c *viz.Canvas) error
	Stats(s FrameStats) error
	// End is called once after the loop stops, even on error.
	End() error
}

type Driver struct {
	shapes []shape.Shape
	spins  []viz.Angles
	active int

	angles   viz.Angles
	canvas   *viz.Canvas
	renderer *viz.Renderer
	stats    FrameStats

	frameDelay     time.Duration
	switchInterval time.Duration
	torusStep      float64
	lastSwitch     time.Time

	clock clock.Clock
	log   *zap.SugaredLogger
}

type Option func(*Driver)

// WithClock replaces the wall clock, mainly for tests.
func WithClock(c clock.Clock) Option {
	return func(d *Driver) { d.clock = c }
}

func WithLogger(l *zap.SugaredLogger) Option {
	return func(d *Driver) { d.log = l }
}

// New builds a driver for every shape in cfg. The first shape starts active.
func New(cfg *config.Config, opts ...Option) (*Driver, error) {
	if len(cfg.Shapes) == 0 {
		return nil, ErrNoShapes
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	shapes, err := shape.NewAll(cfg.Shapes, cfg.Density)
	if err != nil {
		return nil, err
	}

	spins := make([]viz.Angles, len(shapes))
	for i := range spins {
		s := cfg.SpinFor(i)
		spins[i] = viz.Angles{A: s.A, B: s.B, C: s.C}
	}

	proj := viz.Projector{
		Width:    cfg.Screen.Width,
		Height:   cfg.Screen.Height,
		Distance: cfg.Camera.Distance,
		K:        cfg.Camera.K,
		XOffset:  cfg.Camera.XOffset,
	}

	d := &Driver{
		shapes:         shapes,
		spins:          spins,
		canvas:         viz.NewCanvas(cfg.Screen.Width, cfg.Screen.Height, cfg.BackgroundRune()),
		renderer:       viz.NewRenderer(proj),
		frameDelay:     cfg.FrameDelay,
		switchInterval: cfg.SwitchInterval,
		torusStep:      cfg.TorusTimeStep,
		clock:          clock.New(),
		log:            zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		opt(d)
	}
	d.lastSwitch = d.clock.Now()
	return d, nil
}

func (d *Driver) Canvas() *viz.Canvas       { return d.canvas }
func (d *Driver) Angles() viz.Angles        { return d.angles }
func (d *Driver) Stats() FrameStats         { return d.stats }
func (d *Driver) Active() shape.Shape       { return d.shapes[d.active] }
func (d *Driver) ActiveIndex() int          { return d.active }
func (d *Driver) Shapes() []shape.Shape     { return d.shapes }
func (d *Driver) FrameDelay() time.Duration { return d.frameDelay }
func (d *Driver) Clock() clock.Clock        { return d.clock }

// SwitchProgress returns how far the active shape is through its interval,
// in [0, 1]. It is always 0 with a single shape.
func (d *Driver) SwitchProgress() float64 {
	if len(d.shapes) < 2 {
		return 0
	}
	p := float64(d.clock.Since(d.lastSwitch)) / float64(d.switchInterval)
	return min(max(p, 0), 1)
}

// Step renders one frame into the canvas and advances the rotation state.
func (d *Driver) Step() viz.FrameInfo {
	d.maybeSwitch(d.clock.Now())

	for _, s := range d.shapes {
		shape.Update(s, d.torusStep)
	}

	info := d.renderer.Render(d.canvas, d.Active(), d.angles)
	d.angles = d.angles.Advance(d.spins[d.active])
	return info
}

func (d *Driver) maybeSwitch(now time.Time) {
	if len(d.shapes) < 2 || now.Sub(d.lastSwitch) < d.switchInterval {
		return
	}
	d.active = (d.active + 1) % len(d.shapes)
	d.lastSwitch = now
	d.log.Debugw("switched shape", "shape", d.Active().Name(), "index", d.active)
}

// RecordFrame adds a frame duration to the statistics.
func (d *Driver) RecordFrame(elapsed time.Duration) FrameStats {
	d.stats.Record(elapsed)
	if d.stats.Saturated() {
		d.log.Warnw("frame time total saturated", "frames", d.stats.Frames)
	}
	return d.stats
}

// Run renders frames into sink until ctx is canceled. Frame time includes the
// pacing sleep.
func (d *Driver) Run(ctx context.Context, sink Sink) (err error) {
	if err := sink.Begin(); err != nil {
		return fmt.Errorf("engine: begin output: %w", err)
	}
	defer func() {
		if endErr := sink.End(); err == nil && endErr != nil {
			err = fmt.Errorf("engine: end output: %w", endErr)
		}
	}()

	d.lastSwitch = d.clock.Now()
	d.log.Infow("animation started", "shapes", len(d.shapes), "first", d.Active().Name())

	for ctx.Err() == nil {
		start := d.clock.Now()

		d.Step()
		if err := sink.Frame(d.canvas); err != nil {
			return fmt.Errorf("engine: write frame: %w", err)
		}

		if !d.sleep(ctx) {
			break
		}

		stats := d.RecordFrame(d.clock.Since(start))
		if err := sink.Stats(stats); err != nil {
			return fmt.Errorf("engine: write stats: %w", err)
		}
	}

	d.log.Infow("animation stopped", "frames", d.stats.Frames, "average", d.stats.Average())
	return nil
}

// sleep waits for the frame delay and reports false if ctx ended first.
func (d *Driver) sleep(ctx context.Context) bool {
	if d.frameDelay <= 0 {
		return ctx.Err() == nil
	}
	select {
	case <-ctx.Done():
		return false
	case <-d.clock.After(d.frameDelay):
		return true
	}
}
