package app

import (
	"time"

	"paralela/internal/device"
	"paralela/internal/location"
)

// FrameTickMsg triggers a UI refresh.
type FrameTickMsg time.Time

// ClockTickMsg advances the derived clocks once per second.
type ClockTickMsg time.Time

// RevealTickMsg advances the typewriter by one character.
type RevealTickMsg time.Time

// MotionTickMsg drives the orientation decay after a drag is released.
type MotionTickMsg time.Time

// HintExpiredMsg hides the navigation hint.
type HintExpiredMsg struct{}

// LocationAttemptMsg fires the automatic geolocation attempt after the
// startup grace period.
type LocationAttemptMsg struct{}

// LocationResolvedMsg carries the outcome of a geolocation attempt.
type LocationResolvedMsg struct {
	Snapshot location.Snapshot
}

// CameraResultMsg reports a camera open attempt.
type CameraResultMsg struct {
	Kind device.CameraErrorKind
}
