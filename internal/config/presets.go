package config

import "sort"

var Presets = map[string]*Config{
	"reference": DefaultConfig(),
	"calm": {
		Mode: "2d", FPS: 30, Frames: 600, Theme: "ocean",
		X: WaveConfig{Position: 0.2, Speed: 0.25, Wavelength: 0.6, MaxHeight: 0.4},
		Y: WaveConfig{Position: 0.8, Speed: -0.15, Wavelength: 0.9, MaxHeight: 0.3},
	},
	"collide": {
		Mode: "2d", FPS: 60, Frames: 900, Theme: "retro",
		X: WaveConfig{Position: 0.0, Speed: 0.8, Wavelength: 0.5, MaxHeight: 0.6},
		Y: WaveConfig{Position: 1.0, Speed: -0.8, Wavelength: 0.5, MaxHeight: 0.6},
	},
	"ripple": {
		Mode: "line", FPS: 100, Frames: 1000, Theme: "classic",
		X: WaveConfig{Position: 0.1, Speed: 1.7, Wavelength: 0.25, MaxHeight: 0.9},
		Y: WaveConfig{Position: 0.6, Speed: -1.3, Wavelength: 0.35, MaxHeight: 0.7},
	},
}

func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := *p
	if cfg.Palette == "" {
		cfg.Palette = DefaultConfig().Palette
	}
	return &cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
