package location

import (
	"context"
	"errors"
	"math/rand"
	"os"
	"sync"
	"time"

	"go.uber.org/zap"

	"paralela/internal/config"
)

// Phase tracks the session's progress from the simulated seed to a real fix.
type Phase int

const (
	Uninitialized Phase = iota
	SimulatedSeeded
	RequestingReal
	RealResolved
	RealFailed
)

// Source tags whether the address came from a live lookup or the simulator.
// It is a first-class field so consumers never have to infer provenance from
// string suffixes.
type Source int

const (
	SourceSimulated Source = iota
	SourceReal
)

// Snapshot is a copy of the location state, safe to read without locks.
type Snapshot struct {
	Phase       Phase
	Source      Source
	Coordinates *Coordinates
	Address     string
	City        string
	Country     string
	Weather     Weather
	Times       Times
	DeviceTime  string

	LoadingLocation bool
	LoadingWeather  bool
	LocationError   ErrorKind
	WeatherError    ErrorKind
	Permission      bool
}

// Machine owns the location state. It seeds simulated data synchronously at
// construction, so address and weather are never empty, then upgrades to real
// data at most once per request, never downgrading on failure.
type Machine struct {
	mu       sync.RWMutex
	log      *zap.Logger
	rng      *rand.Rand
	provider Provider
	geocoder *Geocoder
	clock    *Clock

	inflight bool

	phase       Phase
	source      Source
	coords      *Coordinates
	address     string
	city        string
	country     string
	weather     Weather
	times       Times
	deviceTime  string
	loadingLoc  bool
	loadingWx   bool
	locErr      ErrorKind
	wxErr       ErrorKind
	permission  bool
}

// NewMachine builds the machine and seeds it. provider may be nil when the
// platform has no way to locate itself; real requests then report
// ErrUnsupported and the seed stands.
func NewMachine(provider Provider, geocoder *Geocoder, clock *Clock, rng *rand.Rand, log *zap.Logger) *Machine {
	m := &Machine{
		log:      log,
		rng:      rng,
		provider: provider,
		geocoder: geocoder,
		clock:    clock,
	}
	m.seed()
	return m
}

// seed installs simulated data before any async permission flow can run.
func (m *Machine) seed() {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	m.phase = SimulatedSeeded
	m.source = SourceSimulated
	m.address = sampleStreet(m.rng)
	m.city = simulatedCity
	m.country = simulatedCountry
	m.weather = sampleWeather(m.rng)
	m.times = m.clock.Derive(now)
	m.deviceTime = m.clock.DeviceTime(now)

	m.log.Info("seeded simulated location",
		zap.String("address", m.address),
		zap.String("weather", m.weather.Current))
}

// RequestReal performs one real geolocation attempt followed by a reverse
// geocode. It blocks until done and returns the resulting snapshot, so the
// caller can await it to sequence subsequent steps. A second call while one
// is in flight returns the current snapshot untouched. Failures of any kind
// leave the simulated seed in place.
func (m *Machine) RequestReal(ctx context.Context) Snapshot {
	m.mu.Lock()
	if m.inflight {
		m.mu.Unlock()
		return m.Snapshot()
	}
	m.inflight = true
	m.loadingLoc = true
	m.phase = RequestingReal
	m.mu.Unlock()

	defer func() {
		m.mu.Lock()
		m.inflight = false
		m.loadingLoc = false
		m.mu.Unlock()
	}()

	if m.provider == nil {
		m.fail(ErrUnsupported)
		return m.Snapshot()
	}

	ctx, cancel := context.WithTimeout(ctx, config.LocationTimeout)
	defer cancel()

	coords, err := m.provider.Locate(ctx)
	if err != nil {
		m.fail(classifyLocateErr(err))
		m.log.Warn("geolocation failed", zap.Error(err))
		return m.Snapshot()
	}

	m.mu.Lock()
	m.coords = &coords
	m.permission = true
	m.mu.Unlock()

	addr, err := m.geocoder.Reverse(ctx, coords)
	if err != nil {
		m.fail(ErrGeocodeFailed)
		m.log.Warn("reverse geocode failed", zap.Error(err))
		return m.Snapshot()
	}

	m.mu.Lock()
	m.phase = RealResolved
	m.source = SourceReal
	m.address = addr.Road
	if addr.Road == "" {
		m.address = addr.City
	}
	m.city = addr.City
	m.country = addr.Country
	m.weather = sampleWeather(m.rng)
	m.locErr = ErrNone
	m.mu.Unlock()

	m.log.Info("real location resolved", zap.String("address", addr.Road), zap.String("city", addr.City))
	return m.Snapshot()
}

// fail records the error kind without touching the seeded values.
func (m *Machine) fail(kind ErrorKind) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.phase = RealFailed
	m.locErr = kind
	m.permission = false
}

// TickClock recomputes the derived times. Called once per second.
func (m *Machine) TickClock(now time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.times = m.clock.Derive(now)
	m.deviceTime = m.clock.DeviceTime(now)
}

// Resample draws fresh simulated weather, used when the narrative restarts.
func (m *Machine) Resample() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.weather = sampleWeather(m.rng)
}

// Snapshot returns a copy of the current state.
func (m *Machine) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var coords *Coordinates
	if m.coords != nil {
		c := *m.coords
		coords = &c
	}
	return Snapshot{
		Phase:           m.phase,
		Source:          m.source,
		Coordinates:     coords,
		Address:         m.address,
		City:            m.city,
		Country:         m.country,
		Weather:         m.weather,
		Times:           m.times,
		DeviceTime:      m.deviceTime,
		LoadingLocation: m.loadingLoc,
		LoadingWeather:  m.loadingWx,
		LocationError:   m.locErr,
		WeatherError:    m.wxErr,
		Permission:      m.permission,
	}
}

func classifyLocateErr(err error) ErrorKind {
	switch {
	case errors.Is(err, context.DeadlineExceeded) || os.IsTimeout(err):
		return ErrTimeout
	case errors.Is(err, ErrProviderDenied):
		return ErrPermissionDenied
	case errors.Is(err, ErrProviderUnsupported):
		return ErrUnsupported
	default:
		// Closed taxonomy: transport failures read as a fix that never arrived.
		return ErrTimeout
	}
}
