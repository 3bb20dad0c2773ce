package terrain

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// relativeCell is the smallest cell size as a fraction of the largest
// coordinate magnitude, about eight float32 ulps.
const relativeCell = 1e-6

// computeNormals sets each vertex normal to the normalized sum of the
// face normals of its triangles. Cross products are area weighted.
func computeNormals(vertices []Vertex, indices []uint32) {
	for i := range vertices {
		vertices[i].Normal = mgl32.Vec3{}
	}
	for t := 0; t+2 < len(indices); t += 3 {
		a, b, c := indices[t], indices[t+1], indices[t+2]
		pa := vertices[a].Displaced
		n := vertices[b].Displaced.Sub(pa).Cross(vertices[c].Displaced.Sub(pa))
		vertices[a].Normal = vertices[a].Normal.Add(n)
		vertices[b].Normal = vertices[b].Normal.Add(n)
		vertices[c].Normal = vertices[c].Normal.Add(n)
	}
	for i := range vertices {
		vertices[i].Normal = safeNormalize(vertices[i].Normal, vertices[i].Position)
	}
}

// SmoothSeams averages normals of border vertices that coincide across
// chunks, so lighting does not reveal chunk edges. Only border vertices
// are considered; interior normals are already continuous.
func SmoothSeams(chunks []*Chunk, epsilon float32) {
	type ref struct {
		chunk  *Chunk
		vertex int
	}

	cell := cellSize(chunks, epsilon)
	posMap := make(map[[3]int64][]ref)
	for _, c := range chunks {
		res := c.Resolution
		for i := range c.Vertices {
			x, y := i%res, i/res
			if x != 0 && y != 0 && x != res-1 && y != res-1 {
				continue
			}
			key := quantize(c.Vertices[i].Displaced, cell)
			posMap[key] = append(posMap[key], ref{c, i})
		}
	}

	for _, refs := range posMap {
		if len(refs) < 2 {
			continue
		}
		var sum mgl32.Vec3
		for _, r := range refs {
			sum = sum.Add(r.chunk.Vertices[r.vertex].Normal)
		}
		avg := safeNormalize(sum, refs[0].chunk.Vertices[refs[0].vertex].Position)
		for _, r := range refs {
			r.chunk.Vertices[r.vertex].Normal = avg
		}
	}
}

// cellSize returns the quantization cell for chunks: epsilon, widened on
// large planets so keys stay far from int64 limits and coordinates that
// differ by a float32 rounding step still share a cell.
func cellSize(chunks []*Chunk, epsilon float32) float64 {
	var extent float64
	for _, c := range chunks {
		if len(c.Vertices) == 0 {
			continue
		}
		for _, v := range [2]mgl32.Vec3{c.Bounds.Min, c.Bounds.Max} {
			for _, x := range v {
				extent = max(extent, math.Abs(float64(x)))
			}
		}
	}
	return max(float64(epsilon), extent*relativeCell)
}

func quantize(p mgl32.Vec3, cell float64) [3]int64 {
	return [3]int64{
		int64(math.Round(float64(p[0]) / cell)),
		int64(math.Round(float64(p[1]) / cell)),
		int64(math.Round(float64(p[2]) / cell)),
	}
}

// safeNormalize falls back to the sphere normal for degenerate sums.
func safeNormalize(v, fallback mgl32.Vec3) mgl32.Vec3 {
	if v.Len() < 1e-12 {
		return fallback
	}
	return v.Normalize()
}
