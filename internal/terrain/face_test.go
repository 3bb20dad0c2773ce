package terrain

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/golang/geo/r3"
)

func wavy(p r3.Vector) float64 {
	return 0.1*math.Sin(5*p.X)*math.Cos(3*p.Y) + 0.05*p.Z
}

func buildAll(t *testing.T, faceCount, res int, elev ElevationFunc) []*Chunk {
	t.Helper()
	return buildSphere(t, faceCount, res, 1, elev)
}

func buildSphere(t *testing.T, faceCount, res int, radius float32, elev ElevationFunc) []*Chunk {
	t.Helper()
	opts := BuildOptions{Resolution: res, FaceCount: faceCount, Radius: radius, Elevation: elev}
	var chunks []*Chunk
	for _, d := range Descriptors(faceCount) {
		c, err := BuildChunk(d, opts)
		if err != nil {
			t.Fatalf("BuildChunk(%s) error: %v", d, err)
		}
		chunks = append(chunks, c)
	}
	return chunks
}

func TestDescriptors(t *testing.T) {
	for fc := 1; fc <= 5; fc++ {
		descs := Descriptors(fc)
		if len(descs) != 6*fc*fc {
			t.Errorf("Descriptors(%d) returned %d, want %d", fc, len(descs), 6*fc*fc)
		}
	}

	descs := Descriptors(2)
	// Index j*fc*fc + i maps to face j, column i%fc, row i/fc.
	if got := descs[1*4+3]; got != (FaceDescriptor{Face: 1, ChunkX: 1, ChunkY: 1}) {
		t.Errorf("Descriptors(2)[7] = %v, want face 1 chunk (1,1)", got)
	}
}

func TestFaceBasis(t *testing.T) {
	for face := range 6 {
		d := FaceDescriptor{Face: face}
		if d.AxisA() != CubeDirections[(face+2)%6] || d.AxisB() != CubeDirections[(face+4)%6] {
			t.Errorf("face %d axes do not follow the +2/+4 rotation", face)
		}
		dir, a, b := d.Direction(), d.AxisA(), d.AxisB()
		if dir.Dot(a) != 0 || dir.Dot(b) != 0 || a.Dot(b) != 0 {
			t.Errorf("face %d basis is not orthogonal: dir=%v a=%v b=%v", face, dir, a, b)
		}
	}
}

func TestBuildChunkCounts(t *testing.T) {
	c, err := BuildChunk(FaceDescriptor{}, BuildOptions{Resolution: 4, FaceCount: 1, Radius: 1})
	if err != nil {
		t.Fatal(err)
	}
	if len(c.Vertices) != 16 {
		t.Errorf("vertex count = %d, want 16", len(c.Vertices))
	}
	if c.TriangleCount() != 2*3*3 {
		t.Errorf("TriangleCount() = %d, want 18", c.TriangleCount())
	}
	for _, i := range c.Indices {
		if int(i) >= len(c.Vertices) {
			t.Fatalf("index %d out of range", i)
		}
	}
}

func TestBuildChunkUnitSphere(t *testing.T) {
	for _, c := range buildAll(t, 2, 5, nil) {
		for _, v := range c.Vertices {
			if l := v.Displaced.Len(); math.Abs(float64(l)-1) > 1e-6 {
				t.Fatalf("%s: |displaced| = %v, want 1", c.Face, l)
			}
			if v.Elevation != 0 {
				t.Fatalf("%s: elevation = %v, want 0", c.Face, v.Elevation)
			}
		}
	}
}

func TestBuildChunkDisplacement(t *testing.T) {
	c, err := BuildChunk(FaceDescriptor{Face: 4}, BuildOptions{
		Resolution: 3,
		FaceCount:  1,
		Radius:     10,
		Elevation:  func(r3.Vector) float64 { return 2.5 },
	})
	if err != nil {
		t.Fatal(err)
	}
	for _, v := range c.Vertices {
		if l := v.Displaced.Len(); math.Abs(float64(l)-12.5) > 1e-4 {
			t.Errorf("|displaced| = %v, want 12.5", l)
		}
	}
	if c.Range.Min != 2.5 || c.Range.Max != 2.5 {
		t.Errorf("Range = %+v, want {2.5 2.5}", c.Range)
	}
}

func TestWindingOutward(t *testing.T) {
	for _, c := range buildAll(t, 2, 4, wavy) {
		for i := 0; i < len(c.Indices); i += 3 {
			a := c.Vertices[c.Indices[i]].Displaced
			b := c.Vertices[c.Indices[i+1]].Displaced
			d := c.Vertices[c.Indices[i+2]].Displaced
			n := b.Sub(a).Cross(d.Sub(a))
			centroid := a.Add(b).Add(d).Mul(1.0 / 3)
			if n.Dot(centroid) <= 0 {
				t.Fatalf("%s: triangle %d faces inward", c.Face, i/3)
			}
		}
	}
}

func TestNormalsPointOutward(t *testing.T) {
	for _, c := range buildAll(t, 1, 6, nil) {
		for _, v := range c.Vertices {
			if v.Normal.Dot(v.Position) < 0.9 {
				t.Fatalf("%s: normal %v not aligned with %v", c.Face, v.Normal, v.Position)
			}
		}
	}
}

func TestSeamWithinFaceIsExact(t *testing.T) {
	const res = 5
	opts := BuildOptions{Resolution: res, FaceCount: 2, Radius: 1, Elevation: wavy}
	left, err := BuildChunk(FaceDescriptor{Face: 2, ChunkX: 0, ChunkY: 1}, opts)
	if err != nil {
		t.Fatal(err)
	}
	right, err := BuildChunk(FaceDescriptor{Face: 2, ChunkX: 1, ChunkY: 1}, opts)
	if err != nil {
		t.Fatal(err)
	}

	for y := range res {
		a := left.Vertices[y*res+res-1]
		b := right.Vertices[y*res]
		if a.Position != b.Position || a.Displaced != b.Displaced || a.Elevation != b.Elevation {
			t.Errorf("row %d: seam vertices differ: %+v vs %+v", y, a, b)
		}
	}
}

func TestSeamsAcrossAllChunks(t *testing.T) {
	const res = 5
	chunks := buildAll(t, 2, res, wavy)

	near := func(a, b mgl32.Vec3) bool {
		return a.Sub(b).Len() <= 1e-5
	}

	for ci, c := range chunks {
		for i, v := range c.Vertices {
			x, y := i%res, i/res
			if x != 0 && y != 0 && x != res-1 && y != res-1 {
				continue
			}
			found := false
			for oi, other := range chunks {
				if oi == ci {
					continue
				}
				for _, w := range other.Vertices {
					if near(v.Displaced, w.Displaced) {
						found = true
						break
					}
				}
				if found {
					break
				}
			}
			if !found {
				t.Fatalf("%s: border vertex %d (%v) has no partner in another chunk", c.Face, i, v.Displaced)
			}
		}
	}
}

func TestNonFiniteElevation(t *testing.T) {
	_, err := BuildChunk(FaceDescriptor{}, BuildOptions{
		Resolution: 3,
		FaceCount:  1,
		Radius:     1,
		Elevation:  func(r3.Vector) float64 { return math.NaN() },
	})
	if !errors.Is(err, ErrNonFiniteElevation) {
		t.Errorf("BuildChunk() error = %v, want ErrNonFiniteElevation", err)
	}
}

func TestBuildChunkInvalidGrid(t *testing.T) {
	if _, err := BuildChunk(FaceDescriptor{}, BuildOptions{Resolution: 1, FaceCount: 1}); err == nil {
		t.Error("expected error for resolution 1")
	}
	if _, err := BuildChunk(FaceDescriptor{Face: 6}, BuildOptions{Resolution: 2, FaceCount: 1}); err == nil {
		t.Error("expected error for face 6")
	}
}

func TestSmoothSeams(t *testing.T) {
	const res = 4
	chunks := buildAll(t, 2, res, wavy)
	SmoothSeams(chunks, DefaultWeldEpsilon)

	byPos := make(map[[3]int64]mgl32.Vec3)
	for _, c := range chunks {
		for i, v := range c.Vertices {
			x, y := i%res, i/res
			if x != 0 && y != 0 && x != res-1 && y != res-1 {
				continue
			}
			key := quantize(v.Displaced, float64(DefaultWeldEpsilon))
			if n, ok := byPos[key]; ok && n != v.Normal {
				t.Fatalf("coincident vertices at %v have normals %v and %v", v.Displaced, n, v.Normal)
			}
			byPos[key] = v.Normal
		}
	}
}
