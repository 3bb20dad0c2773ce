package terrain

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/golang/geo/r3"
)

// ErrNonFiniteElevation is returned when the elevation function yields NaN
// or an infinity. The whole generation pass is abandoned.
var ErrNonFiniteElevation = errors.New("non-finite elevation")

// ElevationFunc returns the elevation at a point on the unit sphere.
type ElevationFunc func(p r3.Vector) float64

// BuildOptions configures BuildChunk.
type BuildOptions struct {
	Resolution int // vertices per chunk edge, >= 2
	FaceCount  int // chunks per cube face edge, >= 1
	Radius     float32
	Elevation  ElevationFunc // nil means a perfect sphere
}

// BuildChunk generates the vertex and index buffers for one chunk.
// Vertices are laid out row-major, Resolution per row, and every grid quad
// becomes two triangles wound counter-clockwise seen from outside.
func BuildChunk(desc FaceDescriptor, opts BuildOptions) (*Chunk, error) {
	res := opts.Resolution
	if res < 2 || opts.FaceCount < 1 {
		return nil, fmt.Errorf("invalid chunk grid: resolution %d, face count %d", res, opts.FaceCount)
	}
	if desc.Face < 0 || desc.Face >= len(CubeDirections) {
		return nil, fmt.Errorf("invalid face index %d", desc.Face)
	}

	d := opts.FaceCount * (res - 1)
	radius := float64(opts.Radius)

	chunk := &Chunk{
		Face:       desc,
		Resolution: res,
		Vertices:   make([]Vertex, res*res),
		Indices:    make([]uint32, 0, (res-1)*(res-1)*6),
		Range:      NewMinMax(),
		Bounds:     emptyBounds(),
	}

	for y := range res {
		for x := range res {
			nx := desc.ChunkX*(res-1) + x
			ny := desc.ChunkY*(res-1) + y
			p := CubeToSphere(desc, nx, ny, d)

			e := 0.0
			if opts.Elevation != nil {
				e = opts.Elevation(p)
			}
			if math.IsNaN(e) || math.IsInf(e, 0) {
				return nil, fmt.Errorf("%w at %v", ErrNonFiniteElevation, p)
			}

			displaced := toVec3(p.Mul(radius + e))
			chunk.Vertices[y*res+x] = Vertex{
				Position:  toVec3(p),
				Displaced: displaced,
				Elevation: float32(e),
			}
			chunk.Range.Observe(float32(e))
			chunk.Bounds.extend(displaced)
		}
	}

	outward := desc.AxisA().Cross(desc.AxisB()).Dot(desc.Direction()) > 0
	for y := range res - 1 {
		for x := range res - 1 {
			i := uint32(y*res + x)
			right := i + 1
			up := i + uint32(res)
			diag := up + 1
			if outward {
				chunk.Indices = append(chunk.Indices, i, right, up, right, diag, up)
			} else {
				chunk.Indices = append(chunk.Indices, i, up, right, right, up, diag)
			}
		}
	}

	computeNormals(chunk.Vertices, chunk.Indices)
	return chunk, nil
}

func toVec3(v r3.Vector) mgl32.Vec3 {
	return mgl32.Vec3{float32(v.X), float32(v.Y), float32(v.Z)}
}
