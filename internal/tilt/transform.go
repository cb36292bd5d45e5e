package tilt

import "math"

// Config controls the parallax tilt effect.
type Config struct {
	Enabled   bool
	Intensity float64
	Smoothing float64 // EMA factor in (0,1]
}

// Descriptor is the rendering-facing description of the tilt effect. It is
// the only orientation-derived value exposed outside this package.
type Descriptor struct {
	Enabled bool
	RotateX float64 // degrees, from beta
	RotateY float64 // degrees, from gamma
	ShiftX  int     // horizontal cell offset for terminal parallax
	ShiftY  int     // vertical cell offset
}

// Transform derives the parallax descriptor from a smoothed orientation.
// A disabled config yields the zero descriptor.
func Transform(o Orientation, cfg Config) Descriptor {
	if !cfg.Enabled {
		return Descriptor{}
	}
	rx := o.Beta * cfg.Intensity
	ry := o.Gamma * cfg.Intensity
	return Descriptor{
		Enabled: true,
		RotateX: rx,
		RotateY: ry,
		ShiftX:  int(math.Round(ry)),
		ShiftY:  int(math.Round(rx)),
	}
}
