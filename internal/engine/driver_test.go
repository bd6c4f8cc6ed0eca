package engine_test

import (
	"context"
	"errors"
	"time"

	"github.com/benbjohnson/clock"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/Jurkyy/spinny-cube/internal/config"
	"github.com/Jurkyy/spinny-cube/internal/engine"
	"github.com/Jurkyy/spinny-cube/internal/shape"
	"github.com/Jurkyy/spinny-cube/internal/viz"
)

// recordingSink counts calls and cancels after a fixed number of frames.
type recordingSink struct {
	mock    *clock.Mock
	cancel  context.CancelFunc
	stopAt  int
	work    time.Duration
	failOn  int
	began   int
	frames  int
	ended   int
	stats   []engine.FrameStats
	heights []int
}

func (s *recordingSink) Begin() error {
	s.began++
	return nil
}

func (s *recordingSink) Frame(c *viz.Canvas) error {
	s.frames++
	s.heights = append(s.heights, c.Height)
	if s.frames == s.failOn {
		return errBroken
	}
	s.mock.Add(s.work)
	if s.frames == s.stopAt {
		s.cancel()
	}
	return nil
}

func (s *recordingSink) Stats(fs engine.FrameStats) error {
	s.stats = append(s.stats, fs)
	return nil
}

func (s *recordingSink) End() error {
	s.ended++
	return nil
}

var errBroken = errors.New("broken pipe")

func smallConfig(kinds ...string) *config.Config {
	cfg := config.DefaultConfig()
	cfg.Screen.Width, cfg.Screen.Height = 80, 24
	cfg.FrameDelay = 0
	cfg.Shapes = nil
	for _, k := range kinds {
		switch k {
		case "torus":
			cfg.Shapes = append(cfg.Shapes, config.ShapeSpec{Kind: k, MajorRadius: 15, MinorRadius: 5})
		case "hexprism":
			cfg.Shapes = append(cfg.Shapes, config.ShapeSpec{Kind: k, Radius: 10, Height: 20})
		default:
			cfg.Shapes = append(cfg.Shapes, config.ShapeSpec{Kind: k, Width: 10, Radius: 10})
		}
	}
	return cfg
}

var _ = Describe("Driver", func() {
	var mock *clock.Mock

	BeforeEach(func() {
		mock = clock.NewMock()
	})

	Describe("New", func() {
		It("rejects an empty shape list", func() {
			_, err := engine.New(smallConfig())
			Expect(err).To(MatchError(engine.ErrNoShapes))
		})

		It("rejects an invalid configuration", func() {
			cfg := smallConfig("cube")
			cfg.Density = 0
			_, err := engine.New(cfg)
			Expect(errors.Is(err, config.ErrInvalid)).To(BeTrue())
		})

		It("sizes the canvas from the screen", func() {
			d, err := engine.New(smallConfig("cube"))
			Expect(err).NotTo(HaveOccurred())
			Expect(d.Canvas().Width).To(Equal(80))
			Expect(d.Canvas().Height).To(Equal(24))
			Expect(d.Canvas().Depth).To(HaveLen(80 * 24))
		})
	})

	Describe("Step", func() {
		It("switches shape once the interval has elapsed", func() {
			d, err := engine.New(smallConfig("cube", "sphere"), engine.WithClock(mock))
			Expect(err).NotTo(HaveOccurred())

			d.Step()
			Expect(d.Active().Name()).To(Equal("cube"))

			mock.Add(9 * time.Second)
			d.Step()
			Expect(d.ActiveIndex()).To(Equal(0))

			mock.Add(time.Second)
			d.Step()
			Expect(d.Active().Name()).To(Equal("sphere"))

			mock.Add(10 * time.Second)
			d.Step()
			Expect(d.ActiveIndex()).To(Equal(0))
		})

		It("never switches with a single shape", func() {
			d, err := engine.New(smallConfig("sphere"), engine.WithClock(mock))
			Expect(err).NotTo(HaveOccurred())

			for i := 0; i < 5; i++ {
				mock.Add(time.Minute)
				d.Step()
			}
			Expect(d.ActiveIndex()).To(Equal(0))
			Expect(d.SwitchProgress()).To(BeZero())
		})

		It("reports switch progress", func() {
			d, err := engine.New(smallConfig("cube", "sphere"), engine.WithClock(mock))
			Expect(err).NotTo(HaveOccurred())

			mock.Add(2500 * time.Millisecond)
			Expect(d.SwitchProgress()).To(BeNumerically("~", 0.25, 1e-9))
		})

		It("animates the torus even while another shape is active", func() {
			d, err := engine.New(smallConfig("cube", "torus"), engine.WithClock(mock))
			Expect(err).NotTo(HaveOccurred())

			for i := 0; i < 3; i++ {
				d.Step()
			}
			torus, ok := d.Shapes()[1].(*shape.TwistedTorus)
			Expect(ok).To(BeTrue())
			Expect(torus.Time).To(BeNumerically("~", 3*config.DefaultTorusTimeStep, 1e-12))
		})

		It("advances the angles by the active shape's spin", func() {
			cfg := smallConfig("cube", "sphere")
			cfg.Shapes[1].Spin = &config.Spin{A: 0.1}
			d, err := engine.New(cfg, engine.WithClock(mock))
			Expect(err).NotTo(HaveOccurred())

			d.Step()
			d.Step()
			a := d.Angles()
			Expect(a.A).To(BeNumerically("~", -0.06, 1e-12))
			Expect(a.B).To(BeNumerically("~", 0.04, 1e-12))
			Expect(a.C).To(BeNumerically("~", -0.08, 1e-12))

			mock.Add(10 * time.Second)
			d.Step()
			Expect(d.Angles().A).To(BeNumerically("~", 0.04, 1e-12))
			Expect(d.Angles().B).To(BeNumerically("~", 0.04, 1e-12))
		})

		It("draws something into the canvas", func() {
			d, err := engine.New(smallConfig("cube"), engine.WithClock(mock))
			Expect(err).NotTo(HaveOccurred())

			info := d.Step()
			Expect(info.Points).To(Equal(40 * 40 * 6))
			Expect(d.Canvas().Covered()).To(BeNumerically(">", 0))
		})
	})

	Describe("Run", func() {
		var (
			ctx    context.Context
			cancel context.CancelFunc
			sink   *recordingSink
		)

		BeforeEach(func() {
			ctx, cancel = context.WithCancel(context.Background())
			sink = &recordingSink{mock: mock, cancel: cancel, work: 10 * time.Millisecond}
		})

		AfterEach(func() {
			cancel()
		})

		It("stops when the context is canceled", func() {
			sink.stopAt = 5
			d, err := engine.New(smallConfig("cube"), engine.WithClock(mock))
			Expect(err).NotTo(HaveOccurred())

			Expect(d.Run(ctx, sink)).To(Succeed())
			Expect(sink.began).To(Equal(1))
			Expect(sink.ended).To(Equal(1))
			Expect(sink.frames).To(Equal(5))
			Expect(sink.heights).To(HaveEach(24))
		})

		It("reports cumulative frame statistics", func() {
			sink.stopAt = 4
			d, err := engine.New(smallConfig("cube"), engine.WithClock(mock))
			Expect(err).NotTo(HaveOccurred())

			Expect(d.Run(ctx, sink)).To(Succeed())
			Expect(sink.stats).To(HaveLen(3))
			for i, s := range sink.stats {
				Expect(s.Frames).To(BeEquivalentTo(i + 1))
				Expect(s.Last).To(Equal(10 * time.Millisecond))
			}
			last := sink.stats[len(sink.stats)-1]
			Expect(last.Total).To(Equal(30 * time.Millisecond))
			Expect(last.Average()).To(Equal(10 * time.Millisecond))
		})

		It("returns output errors and still ends the sink", func() {
			sink.failOn = 2
			d, err := engine.New(smallConfig("cube"), engine.WithClock(mock))
			Expect(err).NotTo(HaveOccurred())

			err = d.Run(ctx, sink)
			Expect(err).To(MatchError(errBroken))
			Expect(sink.ended).To(Equal(1))
			Expect(sink.frames).To(Equal(2))
		})
	})
})
