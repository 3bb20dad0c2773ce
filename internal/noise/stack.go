package noise

import (
	"math"

	"github.com/golang/geo/r3"
)

// Stack sums an ordered list of layers into a single elevation.
// When the first layer is a mask, its clamped raw output gates every
// later layer, so detail only appears where the base shape is positive.
type Stack struct {
	layers  []*Layer
	useMask bool
}

// NewStack builds one Layer per settings entry, all sharing kernel.
func NewStack(kernel Kernel, settings []Settings, useFirstLayerAsMask bool) *Stack {
	layers := make([]*Layer, len(settings))
	for i, s := range settings {
		layers[i] = NewLayer(kernel, s)
	}
	return &Stack{layers: layers, useMask: useFirstLayerAsMask}
}

// Len returns the number of layers.
func (s *Stack) Len() int {
	return len(s.layers)
}

// Evaluate returns the summed elevation at p. An empty stack yields 0.
func (s *Stack) Evaluate(p r3.Vector) float64 {
	if len(s.layers) == 0 {
		return 0
	}

	base := s.layers[0]
	raw := base.Raw(p)
	elevation := raw * base.settings.Strength

	mask := 1.0
	if s.useMask {
		mask = math.Max(raw, 0)
	}

	for _, l := range s.layers[1:] {
		elevation += l.Evaluate(p) * mask
	}
	return elevation
}
