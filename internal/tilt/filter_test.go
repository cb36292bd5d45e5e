package tilt

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmoothStaysBetweenPrevAndRaw(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 1000; i++ {
		prev := rng.Float64()*360 - 180
		raw := rng.Float64()*360 - 180
		factor := rng.Float64()
		if factor == 0 {
			factor = 1
		}

		out := Smooth(Orientation{Beta: prev}, Orientation{Beta: raw}, factor)

		lo, hi := math.Min(prev, raw), math.Max(prev, raw)
		assert.GreaterOrEqual(t, out.Beta, lo)
		assert.LessOrEqual(t, out.Beta, hi)
	}
}

func TestSmoothFixedPoint(t *testing.T) {
	o := Orientation{Alpha: 12.5, Beta: -33.3, Gamma: 88}
	for _, factor := range []float64{0.1, 0.3, 0.5, 1} {
		assert.Equal(t, o, Smooth(o, o, factor))
	}
}

func TestSmoothFullFactorTracksRaw(t *testing.T) {
	raw := Orientation{Alpha: 5, Beta: 10, Gamma: -15}
	assert.Equal(t, raw, Smooth(Orientation{Beta: 90}, raw, 1))
}

func TestDecayTerminatesAtExactZero(t *testing.T) {
	cases := []Orientation{
		{Beta: 45, Gamma: 80},
		{Alpha: 1, Beta: -0.2, Gamma: 0.15},
		{Beta: -90, Gamma: 90},
		{Gamma: 0.1000001},
	}

	for _, o := range cases {
		done := false
		for i := 0; i < 500; i++ {
			o, done = DecayStep(o, 0.95)
			if done {
				break
			}
		}
		require.True(t, done, "decay must terminate within the iteration bound")
		assert.True(t, o.IsZero(), "decayed orientation must snap to exactly zero")
	}
}

func TestDecayAlreadyNeutral(t *testing.T) {
	o, done := DecayStep(Orientation{}, 0.95)
	assert.True(t, done)
	assert.True(t, o.IsZero())
}

func TestDragSampleClamped(t *testing.T) {
	s := DragSample(500, -500)
	assert.Equal(t, 90.0, s.Gamma)
	assert.Equal(t, -90.0, s.Beta)
	assert.Equal(t, 0.0, s.Alpha)

	s = DragSample(12, 34)
	assert.Equal(t, 12.0, s.Gamma)
	assert.Equal(t, 34.0, s.Beta)
}

func TestTransformDisabledIsNoop(t *testing.T) {
	d := Transform(Orientation{Beta: 60, Gamma: -60}, Config{Enabled: false, Intensity: 0.5})
	assert.Equal(t, Descriptor{}, d)
}

func TestTransformScalesByIntensity(t *testing.T) {
	d := Transform(Orientation{Beta: 40, Gamma: -20}, Config{Enabled: true, Intensity: 0.1})
	assert.True(t, d.Enabled)
	assert.InDelta(t, 4.0, d.RotateX, 1e-9)
	assert.InDelta(t, -2.0, d.RotateY, 1e-9)
	assert.Equal(t, -2, d.ShiftX)
	assert.Equal(t, 4, d.ShiftY)
}
