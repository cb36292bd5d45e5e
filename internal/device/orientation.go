package device

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"paralela/internal/config"
	"paralela/internal/tilt"
)

// OrientationSampleMsg carries one raw tilt sample from a driver.
type OrientationSampleMsg struct {
	Sample tilt.Orientation
}

// OrientationDriver emits raw orientation samples.
type OrientationDriver interface {
	// Available reports whether the platform can produce samples at all.
	Available() bool
	// Start begins emission. Callers gate it behind the consent flow.
	Start(s Sender) error
	// Stop halts emission. Idempotent; no sample is sent after it returns.
	Stop()
}

// IIODriver reads a sysfs accelerometer and derives beta/gamma from the
// gravity vector.
type IIODriver struct {
	Dir string // e.g. /sys/bus/iio/devices
	log *zap.Logger

	mu      sync.Mutex
	cancel  context.CancelFunc
	device  string
	scale   float64
	probed  bool
}

func NewIIODriver(log *zap.Logger) *IIODriver {
	return &IIODriver{Dir: "/sys/bus/iio/devices", log: log}
}

// Available probes for an accelerometer once and caches the answer.
func (d *IIODriver) Available() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.probed {
		d.probe()
		d.probed = true
	}
	return d.device != ""
}

func (d *IIODriver) probe() {
	matches, _ := filepath.Glob(filepath.Join(d.Dir, "*", "in_accel_x_raw"))
	if len(matches) == 0 {
		return
	}
	d.device = filepath.Dir(matches[0])
	d.scale = 1.0
	if raw, err := os.ReadFile(filepath.Join(d.device, "in_accel_scale")); err == nil {
		if v, err := strconv.ParseFloat(strings.TrimSpace(string(raw)), 64); err == nil && v != 0 {
			d.scale = v
		}
	}
}

func (d *IIODriver) Start(s Sender) error {
	if !d.Available() {
		return os.ErrNotExist
	}

	d.mu.Lock()
	ctx, cancel := context.WithCancel(context.Background())
	d.cancel = cancel
	dev := d.device
	d.mu.Unlock()

	go d.loop(ctx, s, dev)
	return nil
}

func (d *IIODriver) loop(ctx context.Context, s Sender, dev string) {
	ticker := time.NewTicker(config.SampleInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			ax, okX := readAxis(dev, "x")
			ay, okY := readAxis(dev, "y")
			az, okZ := readAxis(dev, "z")
			if !okX || !okY || !okZ {
				continue
			}
			s.Send(OrientationSampleMsg{Sample: gravityToTilt(ax, ay, az)})
		}
	}
}

func readAxis(dev, axis string) (float64, bool) {
	raw, err := os.ReadFile(filepath.Join(dev, "in_accel_"+axis+"_raw"))
	if err != nil {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(string(raw)), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// gravityToTilt converts an acceleration vector to tilt angles: pitch from
// the Y axis against the XZ plane, roll from X against Z.
func gravityToTilt(ax, ay, az float64) tilt.Orientation {
	const rad2deg = 180 / math.Pi
	return tilt.Orientation{
		Beta:  math.Atan2(ay, math.Sqrt(ax*ax+az*az)) * rad2deg,
		Gamma: math.Atan2(ax, az) * rad2deg,
	}
}

func (d *IIODriver) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
}

// MockOrientationDriver drifts sinusoidally for demo mode.
type MockOrientationDriver struct {
	mu     sync.Mutex
	cancel context.CancelFunc
}

func (d *MockOrientationDriver) Available() bool { return true }

func (d *MockOrientationDriver) Start(s Sender) error {
	d.mu.Lock()
	ctx, cancel := context.WithCancel(context.Background())
	d.cancel = cancel
	d.mu.Unlock()

	go func() {
		ticker := time.NewTicker(config.SampleInterval)
		defer ticker.Stop()

		t := 0.0
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				t += 0.05
				s.Send(OrientationSampleMsg{Sample: tilt.Orientation{
					Beta:  25 * math.Sin(t),
					Gamma: 35 * math.Sin(t*0.6+1.3),
				}})
			}
		}
	}()
	return nil
}

func (d *MockOrientationDriver) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
}
