// Package lighting provides lighting utilities for 3D rendering.
package lighting

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// SunDirection converts longitude/latitude angles in degrees to a unit
// vector pointing towards the sun. Longitude rotates around the Y axis,
// latitude is the elevation above the XZ plane.
func SunDirection(longitude, latitude float32) mgl32.Vec3 {
	lon := mgl32.DegToRad(longitude)
	lat := mgl32.DegToRad(latitude)

	return mgl32.Vec3{
		math32.Cos(lat) * math32.Sin(lon),
		math32.Sin(lat),
		math32.Cos(lat) * math32.Cos(lon),
	}
}

// LightDirection returns the direction light travels, from the sun
// towards the origin.
func LightDirection(longitude, latitude float32) mgl32.Vec3 {
	return SunDirection(longitude, latitude).Mul(-1)
}
