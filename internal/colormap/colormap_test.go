package colormap

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/planetgen/internal/terrain"
)

var (
	black = Color{0, 0, 0, 1}
	white = Color{1, 1, 1, 1}
	blue  = Color{0, 0, 1, 1}
)

func TestGradientAt(t *testing.T) {
	g := NewGradient(Stop{At: 1, Color: white}, Stop{At: 0, Color: black})

	tests := []struct {
		t    float32
		want Color
	}{
		{-1, black},
		{0, black},
		{0.5, Color{0.5, 0.5, 0.5, 1}},
		{1, white},
		{2, white},
	}
	for _, tt := range tests {
		if got := g.At(tt.t); !got.ApproxEqual(tt.want) {
			t.Errorf("At(%v) = %v, want %v", tt.t, got, tt.want)
		}
	}

	if got := NewGradient().At(0.3); got != white {
		t.Errorf("empty gradient At() = %v, want white", got)
	}
}

func TestGradientMultiStop(t *testing.T) {
	g := NewGradient(
		Stop{At: 0, Color: black},
		Stop{At: 0.5, Color: Color{1, 0, 0, 1}},
		Stop{At: 1, Color: white},
	)
	if got := g.At(0.75); !got.ApproxEqual(Color{1, 0.5, 0.5, 1}) {
		t.Errorf("At(0.75) = %v, want {1 0.5 0.5 1}", got)
	}
}

type fixedRange struct{ min, max float32 }

func (r fixedRange) Normalize(v float32) float32 {
	return (v - r.min) / (r.max - r.min)
}

func TestMapperSeaLevel(t *testing.T) {
	m := &Mapper{
		Sea:      blue,
		Gradient: NewGradient(Stop{At: 0, Color: black}, Stop{At: 1, Color: white}),
	}
	r := fixedRange{min: -1, max: 1}

	if got := m.ColorFor(-0.5, 0, r); got != blue {
		t.Errorf("below sea ColorFor() = %v, want sea color", got)
	}
	if got := m.ColorFor(0, 0, r); got != blue {
		t.Errorf("at sea level ColorFor() = %v, want sea color", got)
	}
	// Above sea level the gradient uses the full range, not [sea, max].
	if got := m.ColorFor(0.5, 0, r); !got.ApproxEqual(Color{0.75, 0.75, 0.75, 1}) {
		t.Errorf("above sea ColorFor() = %v, want gradient at 0.75", got)
	}
}

func TestColorChunk(t *testing.T) {
	c := &terrain.Chunk{
		Vertices: []terrain.Vertex{
			{Elevation: -1},
			{Elevation: 1},
		},
	}
	mm := terrain.NewMinMax()
	mm.Observe(-1)
	mm.Observe(1)

	m := &Mapper{Sea: blue, Gradient: NewGradient(Stop{At: 0, Color: black}, Stop{At: 1, Color: white})}
	m.ColorChunk(c, 0, mm)

	want := []mgl32.Vec4{blue, white}
	if len(c.Colors) != len(want) {
		t.Fatalf("colors = %d, want %d", len(c.Colors), len(want))
	}
	for i := range want {
		if c.Colors[i] != want[i] {
			t.Errorf("Colors[%d] = %v, want %v", i, c.Colors[i], want[i])
		}
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{"#ff0000", Color{1, 0, 0, 1}, false},
		{"#00FF0080", Color{0, 1, 0, float32(0x80) / 255}, false},
		{"white", white, false},
		{" Navy ", Color{0, 0, float32(0x80) / 255, 1}, false},
		{"#fff", Color{}, true},
		{"#gg0000", Color{}, true},
		{"notacolor", Color{}, true},
		{"", Color{}, true},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseColor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
