package lighting

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestSunDirection(t *testing.T) {
	tests := []struct {
		lon, lat float32
		want     mgl32.Vec3
	}{
		{0, 0, mgl32.Vec3{0, 0, 1}},
		{90, 0, mgl32.Vec3{1, 0, 0}},
		{0, 90, mgl32.Vec3{0, 1, 0}},
		{180, 0, mgl32.Vec3{0, 0, -1}},
	}
	for _, tt := range tests {
		got := SunDirection(tt.lon, tt.lat)
		if !got.ApproxEqualThreshold(tt.want, 1e-6) {
			t.Errorf("SunDirection(%v, %v) = %v, want %v", tt.lon, tt.lat, got, tt.want)
		}
		if l := got.Len(); mgl32.Abs(l-1) > 1e-6 {
			t.Errorf("SunDirection(%v, %v) length = %v, want 1", tt.lon, tt.lat, l)
		}
	}
}

func TestLightDirectionOpposesSun(t *testing.T) {
	sun := SunDirection(30, 45)
	light := LightDirection(30, 45)
	if got := sun.Dot(light); mgl32.Abs(got+1) > 1e-6 {
		t.Errorf("sun . light = %v, want -1", got)
	}
}
