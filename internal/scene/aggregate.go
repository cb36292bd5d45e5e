// Package scene merges the device and location state into the read model
// consumed by templating and rendering. The merge is pure: the same pair of
// snapshots always yields the same context.
package scene

import (
	"paralela/internal/device"
	"paralela/internal/location"
	"paralela/internal/tilt"
)

// Placeholder fallbacks used when neither a live nor a simulated value is
// available. Each resolution falls through live -> device -> placeholder.
const (
	UnknownLocation        = "ubicación desconocida"
	UnknownWeather         = "clima desconocido"
	UnknownParallelWeather = "energía dimensional"
	UnknownTime            = "ahora"
)

// Context is the aggregated read model. It is derived, never stored.
type Context struct {
	Location        string
	City            string
	Country         string
	CurrentWeather  string
	ParallelWeather string
	Temperature     int
	CurrentTime     string
	ParallelTime    string
	FutureTime      string
	Tilt            tilt.Descriptor
	Simulated       bool
	CameraLive      bool
}

// Aggregate computes the context from the two state snapshots.
func Aggregate(dev device.Snapshot, loc location.Snapshot) Context {
	return Context{
		Location:        fallback(loc.Address, UnknownLocation),
		City:            loc.City,
		Country:         loc.Country,
		CurrentWeather:  fallback(loc.Weather.Current, UnknownWeather),
		ParallelWeather: fallback(loc.Weather.Parallel, UnknownParallelWeather),
		Temperature:     loc.Weather.Temperature,
		CurrentTime:     fallback(loc.Times.Current, dev.Clock, UnknownTime),
		ParallelTime:    fallback(loc.Times.Parallel, dev.Clock, UnknownTime),
		FutureTime:      fallback(loc.Times.Future, dev.Clock, UnknownTime),
		Tilt:            tilt.Transform(dev.Orientation, dev.Tilt),
		Simulated:       loc.Source == location.SourceSimulated,
		CameraLive:      dev.Stream != nil,
	}
}

func fallback(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
