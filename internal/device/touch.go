package device

import "paralela/internal/tilt"

// Drag scaling: terminal cells are coarse, so a ~20 cell drag reaches the
// clamp. Rows count double because cells are roughly twice as tall as wide.
const (
	dragScaleX = 4.0
	dragScaleY = 8.0
)

// DragTracker turns pointer drags into synthesized orientation samples while
// hardware orientation is unavailable.
type DragTracker struct {
	active bool
	startX int
	startY int
}

// Press anchors a new drag.
func (t *DragTracker) Press(x, y int) {
	t.active = true
	t.startX = x
	t.startY = y
}

// Move synthesizes a sample from the drag delta. Returns false when no drag
// is active.
func (t *DragTracker) Move(x, y int) (tilt.Orientation, bool) {
	if !t.active {
		return tilt.Orientation{}, false
	}
	dx := float64(x-t.startX) * dragScaleX
	dy := float64(y-t.startY) * dragScaleY
	return tilt.DragSample(dx, dy), true
}

// Release ends the drag. Returns true if a drag was active, signalling the
// caller to start the decay toward neutral.
func (t *DragTracker) Release() bool {
	was := t.active
	t.active = false
	return was
}

// Active reports whether a drag is in progress.
func (t *DragTracker) Active() bool {
	return t.active
}
