package device

import (
	"go.uber.org/zap"
)

// Manager owns camera acquisition. At most one stream is ever active; a new
// request always stops the previous stream first, and a failed request never
// leaves a dangling handle open. There are no automatic retries.
type Manager struct {
	store  *Store
	driver CameraDriver
	log    *zap.Logger
}

func NewManager(store *Store, driver CameraDriver, log *zap.Logger) *Manager {
	return &Manager{store: store, driver: driver, log: log}
}

// RequestCamera acquires a stream for the given facing mode. The outcome is
// recorded in the store; the returned kind is CameraErrNone on success.
func (m *Manager) RequestCamera(facing Facing) CameraErrorKind {
	snap := m.store.Snapshot()
	if !snap.Support.Camera {
		m.store.SetFacing(facing)
		m.store.SetCameraError(CameraNotSupported)
		return CameraNotSupported
	}

	m.store.SetCameraLoading(true)
	m.store.ClearCameraStream()
	m.store.SetFacing(facing)

	stream, err := m.driver.Open(facing)
	if err != nil {
		kind := classifyCameraErr(err)
		m.store.SetCameraError(kind)
		m.log.Warn("camera acquisition failed",
			zap.String("facing", facing.String()),
			zap.String("kind", kind.String()),
			zap.Error(err))
		return kind
	}

	m.store.SetCameraStream(stream)
	m.log.Info("camera stream acquired",
		zap.String("facing", facing.String()),
		zap.String("path", stream.Path))
	return CameraErrNone
}

// SwitchFacing stops the current stream, flips the facing mode and
// re-acquires. On failure the facing mode stays flipped and no stream is
// left open.
func (m *Manager) SwitchFacing() CameraErrorKind {
	return m.RequestCamera(m.store.Snapshot().Facing.Flip())
}

// StopCamera releases the active stream. Idempotent.
func (m *Manager) StopCamera() {
	m.store.ClearCameraStream()
}
