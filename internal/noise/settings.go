package noise

import (
	"fmt"
	"math"
	"strings"

	"github.com/golang/geo/r3"
)

// Type selects how a layer shapes each kernel sample.
type Type int

const (
	// Soft sums raw kernel samples (rolling hills, continents).
	Soft Type = iota
	// Rigid sums 1-|sample|, producing sharp ridges.
	Rigid
)

// String returns the lowercase type name.
func (t Type) String() string {
	switch t {
	case Soft:
		return "soft"
	case Rigid:
		return "rigid"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// ParseType parses "soft" or "rigid" (case-insensitive).
func ParseType(s string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "soft", "":
		return Soft, nil
	case "rigid":
		return Rigid, nil
	default:
		return Soft, fmt.Errorf("unknown noise type %q", s)
	}
}

// Settings configures a single noise layer.
type Settings struct {
	LayerCount    int       // octaves summed; 0 disables the layer
	BaseRoughness float64   // frequency of the first octave
	Strength      float64   // scale applied to the summed octaves
	Center        r3.Vector // offset added to every sample point
	Type          Type
}

// DefaultBase returns the settings used for an unset base (mask) layer.
func DefaultBase(center r3.Vector) Settings {
	return Settings{
		LayerCount:    2,
		BaseRoughness: math.Pow(2, 5),
		Strength:      math.Pow(2, 0),
		Center:        center,
		Type:          Soft,
	}
}

// DefaultDetail returns the settings used for an unset detail layer at
// index i (i >= 1). Roughness grows with the chunk subdivision count.
func DefaultDetail(i, faceCount int, center r3.Vector) Settings {
	return Settings{
		LayerCount:    2,
		BaseRoughness: math.Pow(2, float64(i+faceCount/3)),
		Strength:      math.Pow(2, float64(i)),
		Center:        center,
		Type:          Rigid,
	}
}

// FillDefaults returns a dense copy of layers where every nil entry is
// replaced by DefaultBase (index 0) or DefaultDetail (index >= 1).
// An empty input yields a single default base layer.
func FillDefaults(layers []*Settings, faceCount int, center r3.Vector) []Settings {
	if len(layers) == 0 {
		return []Settings{DefaultBase(center)}
	}
	out := make([]Settings, len(layers))
	for i, s := range layers {
		switch {
		case s != nil:
			out[i] = *s
		case i == 0:
			out[i] = DefaultBase(center)
		default:
			out[i] = DefaultDetail(i, faceCount, center)
		}
	}
	return out
}
