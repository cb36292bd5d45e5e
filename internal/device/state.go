package device

import (
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	"paralela/internal/tilt"
)

// Facing selects between the environment-facing and user-facing cameras.
type Facing int

const (
	FacingBack Facing = iota
	FacingFront
)

func (f Facing) String() string {
	if f == FacingFront {
		return "front"
	}
	return "back"
}

// Flip returns the opposite facing mode.
func (f Facing) Flip() Facing {
	if f == FacingFront {
		return FacingBack
	}
	return FacingFront
}

// Support records which inputs the platform can provide.
type Support struct {
	Camera      bool
	Orientation bool
	Touch       bool
}

// DetectSupport probes the platform. Touch maps to terminal pointer events,
// which are always deliverable.
func DetectSupport(devDir, iioDir string) Support {
	cams, _ := filepath.Glob(filepath.Join(devDir, "video*"))
	accels, _ := filepath.Glob(filepath.Join(iioDir, "*", "in_accel_x_raw"))
	return Support{
		Camera:      len(cams) > 0,
		Orientation: len(accels) > 0,
		Touch:       true,
	}
}

// Snapshot is a copy of the device state, safe to read without locks.
type Snapshot struct {
	Stream           *Stream
	CameraError      CameraErrorKind
	CameraPermission bool
	CameraLoading    bool
	Facing           Facing
	Frame            *Frame

	Orientation           tilt.Orientation // smoothed
	OrientationPermission bool
	OrientationError      OrientationErrorKind

	Tilt    tilt.Config
	Support Support
	Clock   string // device wall clock, aggregator fallback
}

// Store owns the device state. Drivers feed it from goroutines through the
// app's message loop; every exported mutation takes the lock.
type Store struct {
	mu   sync.RWMutex
	log  *zap.Logger
	snap Snapshot
}

// NewStore creates the state container with detected support flags and the
// initial tilt configuration.
func NewStore(support Support, cfg tilt.Config, log *zap.Logger) *Store {
	return &Store{
		log: log,
		snap: Snapshot{
			Facing:  FacingBack,
			Tilt:    cfg,
			Support: support,
		},
	}
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

func (s *Store) SetCameraLoading(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.CameraLoading = v
}

// SetCameraStream installs a newly acquired stream handle.
func (s *Store) SetCameraStream(stream *Stream) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.Stream = stream
	s.snap.CameraError = CameraErrNone
	s.snap.CameraPermission = true
	s.snap.CameraLoading = false
}

// SetCameraError records a failure; the stream slot is always cleared.
func (s *Store) SetCameraError(kind CameraErrorKind) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.Stream = nil
	s.snap.Frame = nil
	s.snap.CameraError = kind
	s.snap.CameraPermission = false
	s.snap.CameraLoading = false
}

// ClearCameraStream closes and drops the active stream. Safe to call when
// none is active.
func (s *Store) ClearCameraStream() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.snap.Stream != nil {
		if err := s.snap.Stream.Close(); err != nil {
			s.log.Warn("closing camera stream", zap.Error(err))
		}
		s.snap.Stream = nil
	}
	s.snap.Frame = nil
}

func (s *Store) SetFacing(f Facing) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.Facing = f
}

func (s *Store) SetFrame(f *Frame) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.snap.Stream == nil {
		// Frame arrived after teardown; drop it.
		return
	}
	s.snap.Frame = f
}

// ApplyOrientation smooths a raw hardware sample into the stored value.
func (s *Store) ApplyOrientation(raw tilt.Orientation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.Orientation = tilt.Smooth(s.snap.Orientation, raw, s.snap.Tilt.Smoothing)
}

// SetOrientation overwrites the stored value directly, used by the
// drag fallback where the sample is already display-stable.
func (s *Store) SetOrientation(o tilt.Orientation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.Orientation = o
}

// DecayOrientation applies one release-decay step toward neutral.
func (s *Store) DecayOrientation(k float64) (tilt.Orientation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, done := tilt.DecayStep(s.snap.Orientation, k)
	s.snap.Orientation = next
	return next, done
}

func (s *Store) SetOrientationGranted() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.OrientationPermission = true
	s.snap.OrientationError = OrientationErrNone
}

func (s *Store) SetOrientationError(kind OrientationErrorKind) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.OrientationPermission = false
	s.snap.OrientationError = kind
}

func (s *Store) SetTiltConfig(cfg tilt.Config) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.Tilt = cfg
}

func (s *Store) SetClock(formatted string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.Clock = formatted
}
