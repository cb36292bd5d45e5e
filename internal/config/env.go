package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env holds options read from the environment. Flags may override them.
type Env struct {
	GeocodeURL   string  `env:"PARALELA_GEOCODE_URL" envDefault:"https://nominatim.openstreetmap.org"`
	GeolocateURL string  `env:"PARALELA_GEOLOCATE_URL" envDefault:"http://ip-api.com/json"`
	UserAgent    string  `env:"PARALELA_USER_AGENT" envDefault:"paralela/1.0"`
	Locale       string  `env:"PARALELA_LANG" envDefault:"es"`
	LogPath      string  `env:"PARALELA_LOG" envDefault:""`
	Latitude     float64 `env:"PARALELA_LAT" envDefault:"0"`
	Longitude    float64 `env:"PARALELA_LON" envDefault:"0"`
}

// FromEnv loads configuration from environment variables.
func FromEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	return e, nil
}

// HasCoordinates reports whether a fixed position was supplied.
func (e Env) HasCoordinates() bool {
	return e.Latitude != 0 || e.Longitude != 0
}
