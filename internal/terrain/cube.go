package terrain

import (
	"fmt"

	"github.com/golang/geo/r3"
)

// CubeDirections are the outward normals of the six cube faces.
// A face's tangent axes are the entries two and four places further on,
// which gives every face a basis without per-face special cases.
var CubeDirections = [6]r3.Vector{
	{X: 0, Y: 1, Z: 0},  // up
	{X: 0, Y: -1, Z: 0}, // down
	{X: 1, Y: 0, Z: 0},  // right
	{X: -1, Y: 0, Z: 0}, // left
	{X: 0, Y: 0, Z: 1},  // forward
	{X: 0, Y: 0, Z: -1}, // back
}

// FaceDescriptor identifies one chunk of one cube face.
type FaceDescriptor struct {
	Face   int // index into CubeDirections
	ChunkX int // chunk column in [0, faceCount)
	ChunkY int // chunk row in [0, faceCount)
}

// Direction returns the face normal.
func (d FaceDescriptor) Direction() r3.Vector {
	return CubeDirections[d.Face]
}

// AxisA returns the face's local X axis.
func (d FaceDescriptor) AxisA() r3.Vector {
	return CubeDirections[(d.Face+2)%6]
}

// AxisB returns the face's local Y axis.
func (d FaceDescriptor) AxisB() r3.Vector {
	return CubeDirections[(d.Face+4)%6]
}

func (d FaceDescriptor) String() string {
	return fmt.Sprintf("face %d chunk (%d,%d)", d.Face, d.ChunkX, d.ChunkY)
}

// Descriptors enumerates the 6 * faceCount^2 chunks of a cube, face by
// face, row-major within a face.
func Descriptors(faceCount int) []FaceDescriptor {
	perFace := faceCount * faceCount
	out := make([]FaceDescriptor, 0, 6*perFace)
	for face := range 6 {
		for i := range perFace {
			out = append(out, FaceDescriptor{
				Face:   face,
				ChunkX: i % faceCount,
				ChunkY: i / faceCount,
			})
		}
	}
	return out
}

// CubeToSphere maps face-global grid numerators (nx, ny) in [0, d] onto
// the unit sphere. Integer numerators keep shared chunk edges exact: the
// last column of one chunk and the first column of its neighbour produce
// the same inputs and therefore the same bits.
func CubeToSphere(desc FaceDescriptor, nx, ny, d int) r3.Vector {
	a := float64(2*nx-d) / float64(d)
	b := float64(2*ny-d) / float64(d)
	p := desc.Direction().
		Add(desc.AxisA().Mul(a)).
		Add(desc.AxisB().Mul(b))
	return p.Normalize()
}
