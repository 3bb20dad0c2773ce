// Package config handles planet generator configuration loading and management.
package config

// Config holds all generator and viewer settings.
type Config struct {
	Planet  PlanetConfig  `yaml:"planet"`
	Noise   NoiseConfig   `yaml:"noise"`
	Colors  ColorsConfig  `yaml:"colors"`
	Viewer  ViewerConfig  `yaml:"viewer"`
	Logging LoggingConfig `yaml:"logging"`
}

// PlanetConfig holds mesh settings. Resolution and face count are clamped
// by the generator, not rejected.
type PlanetConfig struct {
	Resolution int     `yaml:"resolution"` // vertices per chunk edge
	FaceCount  int     `yaml:"face_count"` // chunks per cube face edge
	Radius     float32 `yaml:"radius"`
	SeaLevel   float32 `yaml:"sea_level"`
	Workers    int     `yaml:"workers"` // 0 = one per CPU
}

// NoiseConfig holds the noise stack settings.
type NoiseConfig struct {
	Kernel              string `yaml:"kernel"` // simplex or perlin
	Seed                int64  `yaml:"seed"`
	UseFirstLayerAsMask bool   `yaml:"use_first_layer_as_mask"`

	// Layers may contain null entries; those get default settings.
	Layers []*LayerConfig `yaml:"layers"`
}

// LayerConfig holds a single noise layer.
type LayerConfig struct {
	Type          string     `yaml:"type"` // soft or rigid
	LayerCount    int        `yaml:"layer_count"`
	BaseRoughness float64    `yaml:"base_roughness"`
	Strength      float64    `yaml:"strength"`
	Center        [3]float64 `yaml:"center,flow"`
}

// ColorsConfig holds the elevation palette. Empty values keep the
// built-in earth palette.
type ColorsConfig struct {
	Sea      string      `yaml:"sea"`
	Gradient []ColorStop `yaml:"gradient"`
}

// ColorStop is a gradient stop; Color is #rrggbb, #rrggbbaa or a color name.
type ColorStop struct {
	At    float32 `yaml:"at"`
	Color string  `yaml:"color"`
}

// ViewerConfig holds display settings for the interactive viewer.
type ViewerConfig struct {
	Width         int    `yaml:"width"`
	Height        int    `yaml:"height"`
	Fullscreen    bool   `yaml:"fullscreen"`
	VSync         bool   `yaml:"vsync"`
	FPSLimit      int    `yaml:"fps_limit"`
	Wireframe     bool   `yaml:"wireframe"`
	ScreenshotDir string `yaml:"screenshot_dir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Planet: PlanetConfig{
			Resolution: 64,
			FaceCount:  2,
			Radius:     8,
			SeaLevel:   0,
		},
		Noise: NoiseConfig{
			Kernel:              "simplex",
			Seed:                0,
			UseFirstLayerAsMask: true,
			Layers:              []*LayerConfig{nil, nil, nil},
		},
		Viewer: ViewerConfig{
			Width:         1280,
			Height:        720,
			Fullscreen:    false,
			VSync:         true,
			FPSLimit:      0,
			ScreenshotDir: "screenshots",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
