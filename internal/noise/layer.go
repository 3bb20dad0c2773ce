package noise

import (
	"math"

	"github.com/golang/geo/r3"
)

// Layer evaluates one octave-summed noise function.
type Layer struct {
	settings Settings
	kernel   Kernel
}

// NewLayer binds settings to a kernel.
func NewLayer(kernel Kernel, settings Settings) *Layer {
	return &Layer{settings: settings, kernel: kernel}
}

// Settings returns the layer configuration.
func (l *Layer) Settings() Settings {
	return l.settings
}

// Raw returns the octave sum at p before Strength is applied.
// Frequency doubles and amplitude halves on every octave.
func (l *Layer) Raw(p r3.Vector) float64 {
	frequency := l.settings.BaseRoughness
	amplitude := 1.0
	sum := 0.0
	for range l.settings.LayerCount {
		q := p.Mul(frequency).Add(l.settings.Center)
		v := l.kernel.Eval3(q.X, q.Y, q.Z)
		if l.settings.Type == Rigid {
			v = 1 - math.Abs(v)
		}
		sum += v * amplitude
		frequency *= 2
		amplitude *= 0.5
	}
	return sum
}

// Evaluate returns the layer's elevation contribution at p.
func (l *Layer) Evaluate(p r3.Vector) float64 {
	return l.Raw(p) * l.settings.Strength
}
