package terrain

import (
	"github.com/go-gl/mathgl/mgl32"
)

// DefaultWeldEpsilon is the position tolerance used to merge seam vertices.
const DefaultWeldEpsilon float32 = 1e-5

// Weld merges chunks into a single indexed mesh, collapsing vertices whose
// displaced positions fall in the same epsilon cell. On large planets the
// cell grows with the coordinate magnitude. The first occurrence of a
// position wins; colors are carried when every chunk has them.
func Weld(chunks []*Chunk, epsilon float32) *Mesh {
	if epsilon <= 0 {
		epsilon = DefaultWeldEpsilon
	}

	withColors := len(chunks) > 0
	total := 0
	for _, c := range chunks {
		total += len(c.Vertices)
		if len(c.Colors) != len(c.Vertices) {
			withColors = false
		}
	}

	mesh := &Mesh{
		Vertices: make([]Vertex, 0, total),
		Bounds:   emptyBounds(),
	}
	if withColors {
		mesh.Colors = make([]mgl32.Vec4, 0, total)
	}

	cell := cellSize(chunks, epsilon)
	index := make(map[[3]int64]uint32, total)
	for _, c := range chunks {
		remap := make([]uint32, len(c.Vertices))
		for i, v := range c.Vertices {
			key := quantize(v.Displaced, cell)
			if idx, ok := index[key]; ok {
				remap[i] = idx
				continue
			}
			idx := uint32(len(mesh.Vertices))
			index[key] = idx
			remap[i] = idx
			mesh.Vertices = append(mesh.Vertices, v)
			if withColors {
				mesh.Colors = append(mesh.Colors, c.Colors[i])
			}
			mesh.Bounds.extend(v.Displaced)
		}
		for _, i := range c.Indices {
			mesh.Indices = append(mesh.Indices, remap[i])
		}
	}
	return mesh
}
