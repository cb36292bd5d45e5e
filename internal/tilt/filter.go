package tilt

import "math"

// Epsilon is the neutral-zone threshold in degrees. A decaying orientation
// inside it snaps to exactly zero.
const Epsilon = 0.1

// Orientation holds device tilt in degrees.
type Orientation struct {
	Alpha float64 // rotation around Z (compass heading)
	Beta  float64 // front-back tilt
	Gamma float64 // left-right tilt
}

// IsZero reports whether all axes are exactly neutral.
func (o Orientation) IsZero() bool {
	return o.Alpha == 0 && o.Beta == 0 && o.Gamma == 0
}

// Smooth applies per-axis exponential smoothing. factor must be in (0,1];
// higher values track the raw signal faster, lower values are steadier.
func Smooth(prev, raw Orientation, factor float64) Orientation {
	return Orientation{
		Alpha: prev.Alpha + (raw.Alpha-prev.Alpha)*factor,
		Beta:  prev.Beta + (raw.Beta-prev.Beta)*factor,
		Gamma: prev.Gamma + (raw.Gamma-prev.Gamma)*factor,
	}
}

// DragSample synthesizes an orientation sample from a pointer drag delta.
// Vertical motion maps to beta, horizontal to gamma, both clamped to ±90.
func DragSample(dx, dy float64) Orientation {
	return Orientation{
		Beta:  clamp(dy, -90, 90),
		Gamma: clamp(dx, -90, 90),
	}
}

// DecayStep moves a released orientation toward neutral by multiplying each
// axis by k (<1). Once every axis is within Epsilon of zero the result snaps
// to exactly zero and done is true.
func DecayStep(o Orientation, k float64) (next Orientation, done bool) {
	next = Orientation{Alpha: o.Alpha * k, Beta: o.Beta * k, Gamma: o.Gamma * k}
	if math.Abs(next.Alpha) < Epsilon && math.Abs(next.Beta) < Epsilon && math.Abs(next.Gamma) < Epsilon {
		return Orientation{}, true
	}
	return next, false
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
