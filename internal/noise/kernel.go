// Package noise composes layered 3D noise into planet elevation values.
package noise

import (
	"fmt"
	"strings"

	"github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"
)

// Kernel names accepted by NewKernel.
const (
	KernelSimplex = "simplex"
	KernelPerlin  = "perlin"
)

// Kernel is a deterministic 3D noise function returning values in [-1, 1].
// Implementations must be safe for concurrent use.
type Kernel interface {
	Eval3(x, y, z float64) float64
}

// KernelFunc adapts a plain function to the Kernel interface.
type KernelFunc func(x, y, z float64) float64

// Eval3 calls f(x, y, z).
func (f KernelFunc) Eval3(x, y, z float64) float64 {
	return f(x, y, z)
}

// NewKernel returns the named kernel seeded with seed.
// An empty name selects OpenSimplex.
func NewKernel(name string, seed int64) (Kernel, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", KernelSimplex:
		return opensimplex.New(seed), nil
	case KernelPerlin:
		// Single octave: octave summation is done by Layer.
		return &perlinKernel{p: perlin.NewPerlin(2, 2, 1, seed)}, nil
	default:
		return nil, fmt.Errorf("unknown noise kernel %q", name)
	}
}

// perlinKernel clamps classic Perlin output into [-1, 1].
type perlinKernel struct {
	p *perlin.Perlin
}

func (k *perlinKernel) Eval3(x, y, z float64) float64 {
	v := k.p.Noise3D(x, y, z)
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}
