package location

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestReverseSendsClientIdentity(t *testing.T) {
	var gotUA, gotSession string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotSession = r.Header.Get("X-Paralela-Session")

		q := r.URL.Query()
		assert.Equal(t, "/reverse", r.URL.Path)
		assert.Equal(t, "jsonv2", q.Get("format"))
		assert.Equal(t, "1", q.Get("addressdetails"))
		assert.Equal(t, "18", q.Get("zoom"))
		assert.Equal(t, "-27.470000", q.Get("lat"))
		assert.Equal(t, "153.026000", q.Get("lon"))

		w.Write([]byte(`{"address":{"road":"Queen Street","city":"Brisbane","country":"Australia"}}`))
	}))
	defer srv.Close()

	g := NewGeocoder(srv.URL, "paralela-test/1.0", zap.NewNop())
	addr, err := g.Reverse(context.Background(), Coordinates{Lat: -27.47, Lon: 153.026})
	require.NoError(t, err)

	assert.Equal(t, "Queen Street", addr.Road)
	assert.Equal(t, "Brisbane", addr.City)
	assert.Equal(t, "Australia", addr.Country)
	assert.Equal(t, "paralela-test/1.0", gotUA)
	assert.NotEmpty(t, gotSession)
}

func TestReverseFallsBackThroughAddressFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"address":{"pedestrian":"Rambla Nueva","town":"Tarragona","country":"España"}}`))
	}))
	defer srv.Close()

	g := NewGeocoder(srv.URL, "paralela-test/1.0", zap.NewNop())
	addr, err := g.Reverse(context.Background(), Coordinates{Lat: 41.1, Lon: 1.25})
	require.NoError(t, err)

	assert.Equal(t, "Rambla Nueva", addr.Road)
	assert.Equal(t, "Tarragona", addr.City)
}

func TestReverseWithoutAddressPayloadFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"address":{}}`))
	}))
	defer srv.Close()

	g := NewGeocoder(srv.URL, "paralela-test/1.0", zap.NewNop())
	_, err := g.Reverse(context.Background(), Coordinates{})
	assert.ErrorIs(t, err, ErrNoAddress)
}

func TestReverseNonOKStatusFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	g := NewGeocoder(srv.URL, "paralela-test/1.0", zap.NewNop())
	_, err := g.Reverse(context.Background(), Coordinates{})
	assert.Error(t, err)
}
