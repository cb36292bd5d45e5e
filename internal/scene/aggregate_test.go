package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"paralela/internal/device"
	"paralela/internal/location"
	"paralela/internal/tilt"
)

func TestAggregateEmptySnapshotsYieldPlaceholders(t *testing.T) {
	ctx := Aggregate(device.Snapshot{}, location.Snapshot{})

	assert.Equal(t, UnknownLocation, ctx.Location)
	assert.Equal(t, UnknownWeather, ctx.CurrentWeather)
	assert.Equal(t, UnknownParallelWeather, ctx.ParallelWeather)
	assert.Equal(t, UnknownTime, ctx.CurrentTime)
	assert.Equal(t, UnknownTime, ctx.ParallelTime)
	assert.Equal(t, UnknownTime, ctx.FutureTime)
	assert.True(t, ctx.Simulated)
	assert.False(t, ctx.CameraLive)
}

func TestAggregatePrefersLiveValues(t *testing.T) {
	loc := location.Snapshot{
		Source:  location.SourceReal,
		Address: "Queen Street",
		City:    "Brisbane",
		Weather: location.Weather{Current: "soleado", Parallel: "lluvia de cristales", Temperature: 24},
		Times:   location.Times{Current: "09:15", Parallel: "14:32", Future: "09:45"},
	}
	dev := device.Snapshot{Clock: "09:15:03"}

	ctx := Aggregate(dev, loc)
	assert.Equal(t, "Queen Street", ctx.Location)
	assert.Equal(t, "09:15", ctx.CurrentTime)
	assert.Equal(t, "14:32", ctx.ParallelTime)
	assert.Equal(t, "soleado", ctx.CurrentWeather)
	assert.False(t, ctx.Simulated)
}

func TestAggregateFallsBackToDeviceClock(t *testing.T) {
	dev := device.Snapshot{Clock: "22:10:05"}

	ctx := Aggregate(dev, location.Snapshot{})
	assert.Equal(t, "22:10:05", ctx.CurrentTime)
	assert.Equal(t, "22:10:05", ctx.ParallelTime)
	assert.Equal(t, "22:10:05", ctx.FutureTime)
}

func TestAggregateTiltHonorsConfig(t *testing.T) {
	dev := device.Snapshot{
		Orientation: tilt.Orientation{Beta: 40, Gamma: -20},
		Tilt:        tilt.Config{Enabled: true, Intensity: 0.1, Smoothing: 0.3},
	}

	ctx := Aggregate(dev, location.Snapshot{})
	assert.True(t, ctx.Tilt.Enabled)
	assert.InDelta(t, 4.0, ctx.Tilt.RotateX, 1e-9)

	dev.Tilt.Enabled = false
	ctx = Aggregate(dev, location.Snapshot{})
	assert.Equal(t, tilt.Descriptor{}, ctx.Tilt)
}

func TestAggregateIsDeterministic(t *testing.T) {
	dev := device.Snapshot{Clock: "10:00:00", Orientation: tilt.Orientation{Beta: 5}}
	loc := location.Snapshot{Address: "Oak Avenue", Weather: location.Weather{Current: "nublado"}}

	assert.Equal(t, Aggregate(dev, loc), Aggregate(dev, loc))
}
