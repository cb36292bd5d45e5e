package location

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrNoAddress marks a geocoding response without a usable address payload.
// The caller treats it the same as any other lookup failure.
var ErrNoAddress = errors.New("no address in geocode response")

// Address is the human-readable triple a reverse lookup resolves to.
type Address struct {
	Road    string
	City    string
	Country string
}

// Geocoder resolves coordinates through a Nominatim-shaped reverse endpoint.
type Geocoder struct {
	base      string
	userAgent string
	session   string
	client    *http.Client
	log       *zap.Logger
}

// NewGeocoder builds a client for the given base URL. Every request carries
// the configured User-Agent and a per-session identifier header, as public
// geocoding services require an identifiable client.
func NewGeocoder(base, userAgent string, log *zap.Logger) *Geocoder {
	return &Geocoder{
		base:      strings.TrimRight(base, "/"),
		userAgent: userAgent,
		session:   uuid.NewString(),
		client:    &http.Client{Timeout: 10 * time.Second},
		log:       log,
	}
}

// Reverse looks up the street/city/country triple for a position.
func (g *Geocoder) Reverse(ctx context.Context, c Coordinates) (Address, error) {
	q := url.Values{}
	q.Set("lat", strconv.FormatFloat(c.Lat, 'f', 6, 64))
	q.Set("lon", strconv.FormatFloat(c.Lon, 'f', 6, 64))
	q.Set("format", "jsonv2")
	q.Set("addressdetails", "1")
	q.Set("zoom", "18")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.base+"/reverse?"+q.Encode(), nil)
	if err != nil {
		return Address{}, fmt.Errorf("build reverse request: %w", err)
	}
	req.Header.Set("User-Agent", g.userAgent)
	req.Header.Set("X-Paralela-Session", g.session)

	resp, err := g.client.Do(req)
	if err != nil {
		return Address{}, fmt.Errorf("reverse geocode: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Address{}, fmt.Errorf("reverse geocode: unexpected status %d", resp.StatusCode)
	}

	var payload struct {
		Address struct {
			Road       string `json:"road"`
			Pedestrian string `json:"pedestrian"`
			Suburb     string `json:"suburb"`
			City       string `json:"city"`
			Town       string `json:"town"`
			Village    string `json:"village"`
			Country    string `json:"country"`
		} `json:"address"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Address{}, fmt.Errorf("decode reverse response: %w", err)
	}

	road := firstNonEmpty(payload.Address.Road, payload.Address.Pedestrian, payload.Address.Suburb)
	city := firstNonEmpty(payload.Address.City, payload.Address.Town, payload.Address.Village)
	if road == "" && city == "" {
		return Address{}, ErrNoAddress
	}

	g.log.Debug("reverse geocode resolved",
		zap.Float64("lat", c.Lat),
		zap.Float64("lon", c.Lon),
		zap.String("road", road),
		zap.String("city", city))

	return Address{Road: road, City: city, Country: payload.Address.Country}, nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
