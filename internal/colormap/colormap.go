// Package colormap maps vertex elevations to colors.
package colormap

import (
	"sort"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/planetgen/internal/terrain"
)

// Color is a linear RGBA color with components in [0, 1].
type Color = mgl32.Vec4

// Stop is a gradient key: Color at normalized elevation At.
type Stop struct {
	At    float32
	Color Color
}

// Gradient interpolates linearly between sorted stops.
type Gradient struct {
	stops []Stop
}

// NewGradient returns a gradient over a sorted copy of stops.
func NewGradient(stops ...Stop) *Gradient {
	sorted := make([]Stop, len(stops))
	copy(sorted, stops)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].At < sorted[j].At
	})
	return &Gradient{stops: sorted}
}

// Stops returns the sorted stops.
func (g *Gradient) Stops() []Stop {
	return g.stops
}

// At samples the gradient at t. Values outside the first and last stop
// clamp to the end colors; an empty gradient is white.
func (g *Gradient) At(t float32) Color {
	if len(g.stops) == 0 {
		return Color{1, 1, 1, 1}
	}
	first, last := g.stops[0], g.stops[len(g.stops)-1]
	if t <= first.At {
		return first.Color
	}
	if t >= last.At {
		return last.Color
	}

	i := sort.Search(len(g.stops), func(i int) bool { return g.stops[i].At >= t })
	lo, hi := g.stops[i-1], g.stops[i]
	span := hi.At - lo.At
	if span <= 0 {
		return hi.Color
	}
	f := math32.Max(0, math32.Min(1, (t-lo.At)/span))
	return lo.Color.Mul(1 - f).Add(hi.Color.Mul(f))
}

// Normalizer maps an elevation into [0, 1].
type Normalizer interface {
	Normalize(v float32) float32
}

// Mapper assigns a flat Sea color at or below sea level and samples
// Gradient at the normalized elevation above it.
type Mapper struct {
	Gradient *Gradient
	Sea      Color
}

// ColorFor returns the color of a vertex at elevation.
func (m *Mapper) ColorFor(elevation, seaLevel float32, r Normalizer) Color {
	if elevation <= seaLevel {
		return m.Sea
	}
	return m.Gradient.At(r.Normalize(elevation))
}

// ColorChunk fills c.Colors, one entry per vertex.
func (m *Mapper) ColorChunk(c *terrain.Chunk, seaLevel float32, r Normalizer) {
	if cap(c.Colors) < len(c.Vertices) {
		c.Colors = make([]Color, len(c.Vertices))
	}
	c.Colors = c.Colors[:len(c.Vertices)]
	for i, v := range c.Vertices {
		c.Colors[i] = m.ColorFor(v.Elevation, seaLevel, r)
	}
}

// DefaultMapper returns an earth-like palette: deep blue sea, then sand,
// grass, rock and snow with rising elevation.
func DefaultMapper() *Mapper {
	return &Mapper{
		Sea: Color{0.08, 0.22, 0.48, 1},
		Gradient: NewGradient(
			Stop{At: 0.0, Color: Color{0.76, 0.70, 0.50, 1}},
			Stop{At: 0.15, Color: Color{0.33, 0.55, 0.22, 1}},
			Stop{At: 0.55, Color: Color{0.20, 0.38, 0.15, 1}},
			Stop{At: 0.80, Color: Color{0.45, 0.40, 0.36, 1}},
			Stop{At: 1.0, Color: Color{0.95, 0.95, 0.97, 1}},
		),
	}
}
