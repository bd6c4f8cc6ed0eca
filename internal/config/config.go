package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultScreenWidth    = 160
	DefaultScreenHeight   = 55
	DefaultBackground     = " "
	DefaultDistance       = 70.0
	DefaultK              = 100.0
	DefaultXOffset        = 10.0
	DefaultDensity        = 0.5
	DefaultFrameDelay     = 50 * time.Millisecond
	DefaultSwitchInterval = 10 * time.Second
	DefaultTorusTimeStep  = 0.011
)

// ErrInvalid is returned by Validate for unusable settings.
var ErrInvalid = errors.New("config: invalid configuration")

type Config struct {
	Screen         ScreenConfig  `yaml:"screen"`
	Camera         CameraConfig  `yaml:"camera"`
	Density        float64       `yaml:"density"`
	Spin           Spin          `yaml:"spin"`
	FrameDelay     time.Duration `yaml:"frame_delay"`
	SwitchInterval time.Duration `yaml:"switch_interval"`
	TorusTimeStep  float64       `yaml:"torus_time_step"`
	Theme          string        `yaml:"theme"`
	Shapes         []ShapeSpec   `yaml:"shapes"`
}

type ScreenConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Background string `yaml:"background"`
}

type CameraConfig struct {
	Distance float64 `yaml:"distance"`
	K        float64 `yaml:"k"`
	XOffset  float64 `yaml:"x_offset"`
}

// Spin holds per-frame rotation deltas in radians.
type Spin struct {
	A float64 `yaml:"a"`
	B float64 `yaml:"b"`
	C float64 `yaml:"c"`
}

// ShapeSpec describes one entry of the shape rotation. Unused dimensions are
// ignored by the shape kind. A nil Spin falls back to Config.Spin.
type ShapeSpec struct {
	Kind        string  `yaml:"kind"`
	Width       float64 `yaml:"width,omitempty"`
	Radius      float64 `yaml:"radius,omitempty"`
	Height      float64 `yaml:"height,omitempty"`
	MajorRadius float64 `yaml:"major_radius,omitempty"`
	MinorRadius float64 `yaml:"minor_radius,omitempty"`
	Spin        *Spin   `yaml:"spin,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Screen: ScreenConfig{
			Width:      DefaultScreenWidth,
			Height:     DefaultScreenHeight,
			Background: DefaultBackground,
		},
		Camera: CameraConfig{
			Distance: DefaultDistance,
			K:        DefaultK,
			XOffset:  DefaultXOffset,
		},
		Density:        DefaultDensity,
		Spin:           Spin{A: -0.03, B: 0.02, C: -0.04},
		FrameDelay:     DefaultFrameDelay,
		SwitchInterval: DefaultSwitchInterval,
		TorusTimeStep:  DefaultTorusTimeStep,
		Shapes: []ShapeSpec{
			{Kind: "torus", MajorRadius: 15, MinorRadius: 5},
			{Kind: "cube", Width: 10},
			{Kind: "sphere", Radius: 10},
			{Kind: "hexprism", Radius: 10, Height: 20},
		},
	}
}

func Load(path string) (*Config, error) {
	return LoadInto(path, DefaultConfig())
}

// LoadInto overlays the file at path onto a copy of base. Keys missing from
// the file keep the value from base; a shapes list replaces base's entirely.
func LoadInto(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := base.Clone()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Clone returns a deep copy so presets are never mutated by callers.
func (c *Config) Clone() *Config {
	out := *c
	out.Shapes = make([]ShapeSpec, len(c.Shapes))
	for i, s := range c.Shapes {
		if s.Spin != nil {
			spin := *s.Spin
			s.Spin = &spin
		}
		out.Shapes[i] = s
	}
	return &out
}

// BackgroundRune returns the first rune of Screen.Background, or a space.
func (c *Config) BackgroundRune() rune {
	for _, r := range c.Screen.Background {
		return r
	}
	return ' '
}

// SpinFor returns the rotation deltas used while shape i is active.
func (c *Config) SpinFor(i int) Spin {
	if i >= 0 && i < len(c.Shapes) && c.Shapes[i].Spin != nil {
		return *c.Shapes[i].Spin
	}
	return c.Spin
}

func (c *Config) Validate() error {
	switch {
	case c.Screen.Width <= 0 || c.Screen.Height <= 0:
		return fmt.Errorf("%w: screen must be positive, got %dx%d", ErrInvalid, c.Screen.Width, c.Screen.Height)
	case c.Density <= 0:
		return fmt.Errorf("%w: density must be positive, got %g", ErrInvalid, c.Density)
	case c.Camera.Distance <= 0:
		return fmt.Errorf("%w: camera distance must be positive, got %g", ErrInvalid, c.Camera.Distance)
	case c.FrameDelay < 0:
		return fmt.Errorf("%w: frame delay must not be negative", ErrInvalid)
	case c.SwitchInterval <= 0:
		return fmt.Errorf("%w: switch interval must be positive", ErrInvalid)
	case len(c.Shapes) == 0:
		return fmt.Errorf("%w: no shapes configured", ErrInvalid)
	}
	return nil
}
