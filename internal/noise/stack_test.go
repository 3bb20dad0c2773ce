package noise

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
)

func TestStackEmpty(t *testing.T) {
	s := NewStack(constKernel(1), nil, true)
	if got := s.Evaluate(r3.Vector{Y: 1}); got != 0 {
		t.Errorf("empty Stack.Evaluate() = %v, want 0", got)
	}
}

func TestStackMaskGatesDetail(t *testing.T) {
	// Base layer samples -0.5 everywhere, so the mask clamps to 0.
	settings := []Settings{
		{LayerCount: 1, BaseRoughness: 1, Strength: 1, Type: Soft},
		{LayerCount: 1, BaseRoughness: 1, Strength: 100, Type: Soft},
		{LayerCount: 2, BaseRoughness: 1, Strength: 1e6, Type: Rigid},
	}
	p := r3.Vector{X: 0.6, Y: 0.8}

	masked := NewStack(constKernel(-0.5), settings, true)
	if got := masked.Evaluate(p); got != -0.5 {
		t.Errorf("masked Evaluate() = %v, want -0.5 (base only)", got)
	}

	unmasked := NewStack(constKernel(-0.5), settings, false)
	want := -0.5 + -0.5*100 + 0.5*1.5*1e6
	if got := unmasked.Evaluate(p); math.Abs(got-want) > 1e-6 {
		t.Errorf("unmasked Evaluate() = %v, want %v", got, want)
	}
}

func TestStackMaskUsesRawBaseOutput(t *testing.T) {
	// Base raw = 0.25, strength 4 -> contributes 1.0; mask stays 0.25.
	settings := []Settings{
		{LayerCount: 1, BaseRoughness: 1, Strength: 4, Type: Soft},
		{LayerCount: 1, BaseRoughness: 1, Strength: 2, Type: Soft},
	}
	s := NewStack(constKernel(0.25), settings, true)
	want := 0.25*4 + 0.25*2*0.25
	if got := s.Evaluate(r3.Vector{Z: 1}); math.Abs(got-want) > 1e-12 {
		t.Errorf("Evaluate() = %v, want %v", got, want)
	}
}

func TestStackDeterministic(t *testing.T) {
	k, err := NewKernel(KernelSimplex, 99)
	if err != nil {
		t.Fatal(err)
	}
	settings := FillDefaults([]*Settings{nil, nil, nil}, 2, r3.Vector{})
	a := NewStack(k, settings, true)
	b := NewStack(k, settings, true)

	for i := range 100 {
		p := r3.Vector{X: math.Sin(float64(i)), Y: math.Cos(float64(i)), Z: 0.3}.Normalize()
		if a.Evaluate(p) != b.Evaluate(p) {
			t.Fatalf("stacks disagree at %v", p)
		}
	}
}
