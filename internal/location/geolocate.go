package location

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"
)

// Coordinates is a WGS84 position.
type Coordinates struct {
	Lat float64
	Lon float64
}

// Provider yields the device position. Implementations must honor the
// context deadline; the Machine maps their failures into ErrorKinds.
type Provider interface {
	Locate(ctx context.Context) (Coordinates, error)
}

// Sentinel failures a Provider may return.
var (
	ErrProviderUnsupported = errors.New("geolocation not supported")
	ErrProviderDenied      = errors.New("geolocation permission denied")
)

// HTTPProvider asks a geolocation endpoint for an approximate fix. Recent
// fixes are served from a short-lived cache instead of re-querying.
type HTTPProvider struct {
	url    string
	client *http.Client
	maxAge time.Duration

	mu       sync.Mutex
	cached   Coordinates
	cachedAt time.Time
}

// NewHTTPProvider creates a provider for the given endpoint. The endpoint is
// expected to answer with a JSON body carrying "lat" and "lon" fields.
func NewHTTPProvider(url string, maxAge time.Duration) *HTTPProvider {
	return &HTTPProvider{
		url:    url,
		client: &http.Client{},
		maxAge: maxAge,
	}
}

func (p *HTTPProvider) Locate(ctx context.Context) (Coordinates, error) {
	p.mu.Lock()
	if !p.cachedAt.IsZero() && time.Since(p.cachedAt) < p.maxAge {
		c := p.cached
		p.mu.Unlock()
		return c, nil
	}
	p.mu.Unlock()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		return Coordinates{}, fmt.Errorf("build geolocate request: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return Coordinates{}, fmt.Errorf("geolocate: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusForbidden || resp.StatusCode == http.StatusUnauthorized {
		return Coordinates{}, fmt.Errorf("geolocate: %w", ErrProviderDenied)
	}
	if resp.StatusCode != http.StatusOK {
		return Coordinates{}, fmt.Errorf("geolocate: unexpected status %d", resp.StatusCode)
	}

	var payload struct {
		Lat float64 `json:"lat"`
		Lon float64 `json:"lon"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Coordinates{}, fmt.Errorf("decode geolocate response: %w", err)
	}

	c := Coordinates{Lat: payload.Lat, Lon: payload.Lon}
	p.mu.Lock()
	p.cached = c
	p.cachedAt = time.Now()
	p.mu.Unlock()
	return c, nil
}

// StaticProvider returns a fixed position, used when the reader supplies
// coordinates through the environment.
type StaticProvider struct {
	Coords Coordinates
}

func (p StaticProvider) Locate(context.Context) (Coordinates, error) {
	return p.Coords, nil
}
