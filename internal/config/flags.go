package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagResolution = flag.Int("resolution", 0, "Vertices per chunk edge (2-254)")
	flagFaces      = flag.Int("faces", 0, "Chunks per cube face edge (1-5)")
	flagSeed       = flag.Int64("seed", 0, "Noise seed")
	flagKernel     = flag.String("kernel", "", "Noise kernel: simplex or perlin")
	flagWorkers    = flag.Int("workers", 0, "Parallel chunk builders")
	flagWindowed   = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth      = flag.Int("width", 0, "Window width")
	flagHeight     = flag.Int("height", 0, "Window height")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagResolution > 0 {
		cfg.Planet.Resolution = *flagResolution
	}
	if *flagFaces > 0 {
		cfg.Planet.FaceCount = *flagFaces
	}
	if *flagSeed != 0 {
		cfg.Noise.Seed = *flagSeed
	}
	if *flagKernel != "" {
		cfg.Noise.Kernel = *flagKernel
	}
	if *flagWorkers > 0 {
		cfg.Planet.Workers = *flagWorkers
	}
	if *flagWindowed {
		cfg.Viewer.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Viewer.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Viewer.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Viewer.Height = *flagHeight
	}
}
