package device

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"paralela/internal/tilt"
)

// recordingDriver tracks every stream it hands out so tests can check for
// dangling handles.
type recordingDriver struct {
	errByFacing map[Facing]error
	opened      []*Stream
}

func (d *recordingDriver) Open(facing Facing) (*Stream, error) {
	if err := d.errByFacing[facing]; err != nil {
		return nil, err
	}
	s := &Stream{Path: "fake:" + facing.String()}
	d.opened = append(d.opened, s)
	return s, nil
}

func newTestStore(support Support) *Store {
	return NewStore(support, tilt.Config{Enabled: true, Intensity: 0.1, Smoothing: 0.3}, zap.NewNop())
}

func allSupport() Support {
	return Support{Camera: true, Orientation: true, Touch: true}
}

func TestRequestCameraDenied(t *testing.T) {
	store := newTestStore(allSupport())
	driver := &recordingDriver{errByFacing: map[Facing]error{
		FacingBack:  os.ErrPermission,
		FacingFront: os.ErrPermission,
	}}
	m := NewManager(store, driver, zap.NewNop())

	kind := m.RequestCamera(FacingBack)
	assert.Equal(t, CameraDenied, kind)

	snap := store.Snapshot()
	assert.Nil(t, snap.Stream)
	assert.False(t, snap.CameraPermission)
	assert.False(t, snap.CameraLoading)
	assert.Equal(t, CameraDenied, snap.CameraError)
}

func TestRequestCameraWithoutSupport(t *testing.T) {
	store := newTestStore(Support{Camera: false, Touch: true})
	driver := &recordingDriver{}
	m := NewManager(store, driver, zap.NewNop())

	kind := m.RequestCamera(FacingBack)
	assert.Equal(t, CameraNotSupported, kind)
	assert.Empty(t, driver.opened, "driver must not be invoked without support")
}

func TestRequestCameraSuccess(t *testing.T) {
	store := newTestStore(allSupport())
	m := NewManager(store, &recordingDriver{}, zap.NewNop())

	require.Equal(t, CameraErrNone, m.RequestCamera(FacingBack))

	snap := store.Snapshot()
	require.NotNil(t, snap.Stream)
	assert.True(t, snap.CameraPermission)
	assert.Equal(t, CameraErrNone, snap.CameraError)
	assert.Equal(t, FacingBack, snap.Facing)
}

func TestSwitchFacingFailureLeavesNoStream(t *testing.T) {
	store := newTestStore(allSupport())
	driver := &recordingDriver{errByFacing: map[Facing]error{
		FacingFront: errors.New("device busy"),
	}}
	m := NewManager(store, driver, zap.NewNop())

	require.Equal(t, CameraErrNone, m.RequestCamera(FacingBack))
	first := store.Snapshot().Stream

	kind := m.SwitchFacing()
	assert.Equal(t, CameraUnknown, kind)

	snap := store.Snapshot()
	assert.Nil(t, snap.Stream, "failed switch must not leave a stream open")
	assert.Equal(t, FacingFront, snap.Facing)

	// The first handle must have been closed before the switch attempt.
	assert.NoError(t, first.Close())
}

func TestSwitchFacingFlipsBackAndForth(t *testing.T) {
	store := newTestStore(allSupport())
	m := NewManager(store, &recordingDriver{}, zap.NewNop())

	require.Equal(t, CameraErrNone, m.RequestCamera(FacingBack))
	require.Equal(t, CameraErrNone, m.SwitchFacing())
	assert.Equal(t, FacingFront, store.Snapshot().Facing)
	require.Equal(t, CameraErrNone, m.SwitchFacing())
	assert.Equal(t, FacingBack, store.Snapshot().Facing)
}

func TestStopCameraIdempotent(t *testing.T) {
	store := newTestStore(allSupport())
	m := NewManager(store, &recordingDriver{}, zap.NewNop())

	m.StopCamera() // nothing active yet

	require.Equal(t, CameraErrNone, m.RequestCamera(FacingBack))
	m.StopCamera()
	m.StopCamera()
	assert.Nil(t, store.Snapshot().Stream)
}

func TestV4LDriverClassification(t *testing.T) {
	dir := t.TempDir()

	// No nodes at all: not supported.
	d := &V4LDriver{DevDir: dir}
	_, err := d.Open(FacingBack)
	assert.Equal(t, CameraNotSupported, classifyCameraErr(err))

	// One node: the front camera is overconstrained.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "video0"), nil, 0o644))
	_, err = d.Open(FacingFront)
	assert.Equal(t, CameraOverconstrained, classifyCameraErr(err))

	// The back camera opens.
	s, err := d.Open(FacingBack)
	require.NoError(t, err)
	assert.NoError(t, s.Close())
	assert.NoError(t, s.Close(), "close must be idempotent")
}

func TestFrameDroppedAfterTeardown(t *testing.T) {
	store := newTestStore(allSupport())
	m := NewManager(store, &recordingDriver{}, zap.NewNop())

	require.Equal(t, CameraErrNone, m.RequestCamera(FacingBack))
	store.SetFrame(&Frame{W: 1, H: 1, Pix: []float64{0.5}})
	require.NotNil(t, store.Snapshot().Frame)

	m.StopCamera()
	store.SetFrame(&Frame{W: 1, H: 1, Pix: []float64{0.5}})
	assert.Nil(t, store.Snapshot().Frame, "no frame may land after teardown")
}
