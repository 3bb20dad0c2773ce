// Package terrain builds displaced cube-sphere chunk meshes.
package terrain

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Vertex is a planet surface vertex.
type Vertex struct {
	Position  mgl32.Vec3 // point on the unit sphere
	Displaced mgl32.Vec3 // Position * (radius + Elevation)
	Normal    mgl32.Vec3
	Elevation float32
}

// Chunk holds the mesh buffers of one face subdivision.
type Chunk struct {
	Face       FaceDescriptor
	Resolution int
	Vertices   []Vertex
	Indices    []uint32
	Colors     []mgl32.Vec4 // filled by the coloring pass, one per vertex
	Range      MinMax       // elevations observed by this chunk only
	Bounds     Bounds
}

// TriangleCount returns the number of triangles in the chunk.
func (c *Chunk) TriangleCount() int {
	return len(c.Indices) / 3
}

// Mesh is a single indexed mesh, typically produced by Weld.
type Mesh struct {
	Vertices []Vertex
	Colors   []mgl32.Vec4
	Indices  []uint32
	Bounds   Bounds
}

// Bounds holds the axis-aligned bounding box of displaced positions.
type Bounds struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

func emptyBounds() Bounds {
	return Bounds{
		Min: mgl32.Vec3{1e10, 1e10, 1e10},
		Max: mgl32.Vec3{-1e10, -1e10, -1e10},
	}
}

func (b *Bounds) extend(p mgl32.Vec3) {
	for i := range 3 {
		if p[i] < b.Min[i] {
			b.Min[i] = p[i]
		}
		if p[i] > b.Max[i] {
			b.Max[i] = p[i]
		}
	}
}

// Union returns the box enclosing b and other.
func (b Bounds) Union(other Bounds) Bounds {
	if other.Min[0] > other.Max[0] {
		return b
	}
	out := b
	out.extend(other.Min)
	out.extend(other.Max)
	return out
}
