package device

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"paralela/internal/config"
)

// Sender delivers driver messages to the UI loop. *tea.Program satisfies it;
// tests use a channel-backed stand-in.
type Sender interface {
	Send(tea.Msg)
}

// Sentinel camera failures used by drivers.
var (
	ErrCameraUnsupported = errors.New("no capture device available")
	ErrCameraConstrained = errors.New("requested facing mode not satisfiable")
)

// Stream is the exclusive handle to an open capture device. Close is
// idempotent and nil-safe.
type Stream struct {
	Path string
	W, H int // requested capture geometry

	mu sync.Mutex
	f  *os.File
}

func (s *Stream) Close() error {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.f == nil {
		return nil
	}
	err := s.f.Close()
	s.f = nil
	return err
}

// CameraDriver acquires capture streams.
type CameraDriver interface {
	Open(facing Facing) (*Stream, error)
}

// V4LDriver opens video device nodes. The environment-facing camera maps to
// the first node, the user-facing one to the second.
type V4LDriver struct {
	DevDir string
}

// NewV4LDriver probes the default device directory.
func NewV4LDriver() *V4LDriver {
	return &V4LDriver{DevDir: "/dev"}
}

func (d *V4LDriver) Open(facing Facing) (*Stream, error) {
	nodes, err := filepath.Glob(filepath.Join(d.DevDir, "video*"))
	if err != nil || len(nodes) == 0 {
		return nil, ErrCameraUnsupported
	}
	sort.Strings(nodes)

	idx := 0
	if facing == FacingFront {
		idx = 1
	}
	if idx >= len(nodes) {
		return nil, fmt.Errorf("%w: no %s camera", ErrCameraConstrained, facing)
	}

	f, err := os.OpenFile(nodes[idx], os.O_RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", nodes[idx], err)
	}
	return &Stream{Path: nodes[idx], W: config.CameraWidth, H: config.CameraHeight, f: f}, nil
}

// classifyCameraErr maps a platform error onto the closed error taxonomy.
func classifyCameraErr(err error) CameraErrorKind {
	switch {
	case errors.Is(err, ErrCameraUnsupported):
		return CameraNotSupported
	case errors.Is(err, ErrCameraConstrained):
		return CameraOverconstrained
	case errors.Is(err, os.ErrPermission):
		return CameraDenied
	case errors.Is(err, os.ErrNotExist):
		return CameraNotFound
	default:
		return CameraUnknown
	}
}

// MockCameraDriver always succeeds with a synthetic stream, for demo mode.
type MockCameraDriver struct{}

func (MockCameraDriver) Open(facing Facing) (*Stream, error) {
	return &Stream{Path: "mock:" + facing.String(), W: config.CameraWidth, H: config.CameraHeight}, nil
}
