package renderer

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/planetgen/internal/terrain"
)

func TestInterleave(t *testing.T) {
	c := &terrain.Chunk{
		Vertices: []terrain.Vertex{
			{Displaced: mgl32.Vec3{1, 2, 3}, Normal: mgl32.Vec3{0, 1, 0}},
			{Displaced: mgl32.Vec3{4, 5, 6}, Normal: mgl32.Vec3{0, 0, 1}},
		},
		Colors: []mgl32.Vec4{{0.1, 0.2, 0.3, 0.4}, {0.5, 0.6, 0.7, 0.8}},
	}

	got := interleave(c)
	want := []float32{
		1, 2, 3, 0, 1, 0, 0.1, 0.2, 0.3, 0.4,
		4, 5, 6, 0, 0, 1, 0.5, 0.6, 0.7, 0.8,
	}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("buffer[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestInterleaveWithoutColors(t *testing.T) {
	c := &terrain.Chunk{Vertices: make([]terrain.Vertex, 3)}
	got := interleave(c)
	for v := range 3 {
		for k := range 4 {
			if got[v*floatsPerVert+colorOffset+k] != 1 {
				t.Fatalf("vertex %d color = %v, want white", v, got[v*floatsPerVert+colorOffset:v*floatsPerVert+floatsPerVert])
			}
		}
	}
}
