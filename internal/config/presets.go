package config

import "sort"

var Presets = map[string]*Config{
	"showcase": DefaultConfig(),
	"classic": func() *Config {
		cfg := DefaultConfig()
		cfg.Spin = Spin{A: -0.04, B: 0.02, C: -0.04}
		cfg.Shapes = []ShapeSpec{{Kind: "cube", Width: 10}}
		return cfg
	}(),
	"cube":     single(ShapeSpec{Kind: "cube", Width: 10}),
	"sphere":   single(ShapeSpec{Kind: "sphere", Radius: 10}),
	"hexprism": single(ShapeSpec{Kind: "hexprism", Radius: 10, Height: 20}),
	"torus":    single(ShapeSpec{Kind: "torus", MajorRadius: 15, MinorRadius: 5}),
}

func single(s ShapeSpec) *Config {
	cfg := DefaultConfig()
	cfg.Shapes = []ShapeSpec{s}
	return cfg
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg.Clone()
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
