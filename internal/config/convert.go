package config

import (
	"fmt"

	"github.com/golang/geo/r3"
	"go.uber.org/multierr"
	"go.uber.org/zap/zapcore"

	"github.com/Faultbox/planetgen/internal/colormap"
	"github.com/Faultbox/planetgen/internal/noise"
	"github.com/Faultbox/planetgen/internal/planet"
)

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var err error

	if c.Planet.Radius < 0 {
		err = multierr.Append(err, fmt.Errorf("planet.radius: must not be negative, got %v", c.Planet.Radius))
	}
	if c.Planet.Workers < 0 {
		err = multierr.Append(err, fmt.Errorf("planet.workers: must not be negative, got %d", c.Planet.Workers))
	}
	if _, kerr := noise.NewKernel(c.Noise.Kernel, 0); kerr != nil {
		err = multierr.Append(err, fmt.Errorf("noise.kernel: %w", kerr))
	}
	for i, l := range c.Noise.Layers {
		if l == nil {
			continue
		}
		if _, terr := noise.ParseType(l.Type); terr != nil {
			err = multierr.Append(err, fmt.Errorf("noise.layers[%d].type: %w", i, terr))
		}
		if l.LayerCount < 0 {
			err = multierr.Append(err, fmt.Errorf("noise.layers[%d].layer_count: must not be negative, got %d", i, l.LayerCount))
		}
	}
	if c.Colors.Sea != "" {
		if _, cerr := colormap.ParseColor(c.Colors.Sea); cerr != nil {
			err = multierr.Append(err, fmt.Errorf("colors.sea: %w", cerr))
		}
	}
	for i, s := range c.Colors.Gradient {
		if _, cerr := colormap.ParseColor(s.Color); cerr != nil {
			err = multierr.Append(err, fmt.Errorf("colors.gradient[%d]: %w", i, cerr))
		}
	}
	if c.Viewer.Width < 0 || c.Viewer.Height < 0 {
		err = multierr.Append(err, fmt.Errorf("viewer: size must not be negative, got %dx%d", c.Viewer.Width, c.Viewer.Height))
	}
	if _, lerr := zapcore.ParseLevel(c.Logging.Level); c.Logging.Level != "" && lerr != nil {
		err = multierr.Append(err, fmt.Errorf("logging.level: %w", lerr))
	}

	return err
}

// PlanetConfig converts the file settings into a generator configuration.
func (c *Config) PlanetConfig() (planet.Config, error) {
	pc := planet.NewConfig()
	pc.SetResolution(c.Planet.Resolution)
	pc.SetFaceCount(c.Planet.FaceCount)
	pc.Radius = c.Planet.Radius
	pc.SeaLevel = c.Planet.SeaLevel
	pc.Workers = c.Planet.Workers
	pc.Kernel = c.Noise.Kernel
	pc.Seed = c.Noise.Seed
	pc.UseFirstLayerAsMask = c.Noise.UseFirstLayerAsMask

	pc.Layers = make([]*noise.Settings, len(c.Noise.Layers))
	for i, l := range c.Noise.Layers {
		if l == nil {
			continue
		}
		typ, err := noise.ParseType(l.Type)
		if err != nil {
			return planet.Config{}, fmt.Errorf("layer %d: %w", i, err)
		}
		pc.Layers[i] = &noise.Settings{
			LayerCount:    l.LayerCount,
			BaseRoughness: l.BaseRoughness,
			Strength:      l.Strength,
			Center:        r3.Vector{X: l.Center[0], Y: l.Center[1], Z: l.Center[2]},
			Type:          typ,
		}
	}
	return pc, nil
}

// Palette builds the color mapper, starting from the built-in palette.
func (c *Config) Palette() (*colormap.Mapper, error) {
	m := colormap.DefaultMapper()

	if c.Colors.Sea != "" {
		sea, err := colormap.ParseColor(c.Colors.Sea)
		if err != nil {
			return nil, fmt.Errorf("sea color: %w", err)
		}
		m.Sea = sea
	}

	if len(c.Colors.Gradient) > 0 {
		stops := make([]colormap.Stop, 0, len(c.Colors.Gradient))
		for i, s := range c.Colors.Gradient {
			col, err := colormap.ParseColor(s.Color)
			if err != nil {
				return nil, fmt.Errorf("gradient stop %d: %w", i, err)
			}
			stops = append(stops, colormap.Stop{At: s.At, Color: col})
		}
		m.Gradient = colormap.NewGradient(stops...)
	}
	return m, nil
}
