package renderer

import (
	"github.com/Faultbox/planetgen/internal/terrain"
)

// Interleaved vertex layout: position, normal, RGBA color.
const (
	positionOffset = 0
	normalOffset   = 3
	colorOffset    = 6
	floatsPerVert  = 10
	vertexStride   = floatsPerVert * 4
)

// interleave packs a chunk's displaced positions, normals and colors into
// one float buffer. Vertices without a color are drawn white.
func interleave(c *terrain.Chunk) []float32 {
	out := make([]float32, len(c.Vertices)*floatsPerVert)
	for i, v := range c.Vertices {
		o := out[i*floatsPerVert:]
		copy(o[positionOffset:], v.Displaced[:])
		copy(o[normalOffset:], v.Normal[:])
		if i < len(c.Colors) {
			copy(o[colorOffset:], c.Colors[i][:])
		} else {
			o[colorOffset], o[colorOffset+1], o[colorOffset+2], o[colorOffset+3] = 1, 1, 1, 1
		}
	}
	return out
}
