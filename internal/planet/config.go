package planet

import (
	"runtime"

	"github.com/golang/geo/r3"

	"github.com/Faultbox/planetgen/internal/noise"
)

// Grid limits. Values outside are clamped when assigned.
const (
	MinResolution = 2
	MaxResolution = 254
	MinFaceCount  = 1
	MaxFaceCount  = 5

	DefaultResolution = 64
	DefaultFaceCount  = 2
)

// Config describes one planet. Resolution and FaceCount are clamped by
// their setters; the zero value reports the minimum legal grid.
type Config struct {
	resolution int
	faceCount  int

	Radius   float32
	SeaLevel float32

	// Layers are evaluated in order; a nil entry is replaced by a default
	// during initialization (soft base layer, rigid detail layers).
	Layers              []*noise.Settings
	UseFirstLayerAsMask bool

	Kernel  string // noise kernel name, see noise.NewKernel
	Seed    int64
	Workers int // parallel chunk builders; 0 means one per CPU
}

// NewConfig returns a unit-radius planet with one default base layer.
func NewConfig() Config {
	c := Config{
		Radius:              1,
		Layers:              make([]*noise.Settings, 1),
		UseFirstLayerAsMask: true,
		Kernel:              noise.KernelSimplex,
	}
	c.SetResolution(DefaultResolution)
	c.SetFaceCount(DefaultFaceCount)
	return c
}

// Resolution returns vertices per chunk edge.
func (c Config) Resolution() int {
	return clamp(c.resolution, MinResolution, MaxResolution)
}

// SetResolution sets vertices per chunk edge, clamped to [2, 254].
func (c *Config) SetResolution(v int) {
	c.resolution = clamp(v, MinResolution, MaxResolution)
}

// FaceCount returns chunks per cube face edge.
func (c Config) FaceCount() int {
	return clamp(c.faceCount, MinFaceCount, MaxFaceCount)
}

// SetFaceCount sets chunks per cube face edge, clamped to [1, 5].
func (c *Config) SetFaceCount(v int) {
	c.faceCount = clamp(v, MinFaceCount, MaxFaceCount)
}

// NoiseSettings returns the dense layer list used for generation.
func (c Config) NoiseSettings() []noise.Settings {
	return noise.FillDefaults(c.Layers, c.FaceCount(), r3.Vector{})
}

func (c Config) workers() int {
	if c.Workers > 0 {
		return c.Workers
	}
	return runtime.NumCPU()
}

func (c Config) clone() Config {
	out := c
	out.Layers = make([]*noise.Settings, len(c.Layers))
	for i, s := range c.Layers {
		if s != nil {
			cp := *s
			out.Layers[i] = &cp
		}
	}
	return out
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
