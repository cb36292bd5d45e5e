package device

import (
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"paralela/internal/tilt"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// chanSender collects driver messages for assertions.
type chanSender struct {
	mu   sync.Mutex
	msgs []tea.Msg
}

func (c *chanSender) Send(m tea.Msg) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.msgs = append(c.msgs, m)
}

func (c *chanSender) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.msgs)
}

func TestMockOrientationEmitsAndStops(t *testing.T) {
	d := &MockOrientationDriver{}
	sender := &chanSender{}

	require.True(t, d.Available())
	require.NoError(t, d.Start(sender))

	deadline := time.Now().Add(2 * time.Second)
	for sender.count() == 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	require.Greater(t, sender.count(), 0, "driver should emit samples")

	d.Stop()
	d.Stop() // idempotent

	// Allow any in-flight tick to drain, then verify emission has ceased.
	time.Sleep(150 * time.Millisecond)
	n := sender.count()
	time.Sleep(150 * time.Millisecond)
	assert.Equal(t, n, sender.count(), "no sample may arrive after Stop")

	first, ok := sender.msgs[0].(OrientationSampleMsg)
	require.True(t, ok)
	assert.LessOrEqual(t, first.Sample.Beta, 90.0)
	assert.GreaterOrEqual(t, first.Sample.Beta, -90.0)
}

func TestIIODriverUnavailableWithoutSysfs(t *testing.T) {
	d := &IIODriver{Dir: t.TempDir()}
	assert.False(t, d.Available())
	assert.Error(t, d.Start(&chanSender{}))
	d.Stop() // safe with nothing running
}

func TestGravityToTilt(t *testing.T) {
	// Flat on a table: gravity along Z, no tilt.
	o := gravityToTilt(0, 0, 1)
	assert.InDelta(t, 0, o.Beta, 1e-9)
	assert.InDelta(t, 0, o.Gamma, 1e-9)

	// On its side: full roll.
	o = gravityToTilt(1, 0, 0)
	assert.InDelta(t, 90, o.Gamma, 1e-9)

	// Upright: full pitch.
	o = gravityToTilt(0, 1, 0)
	assert.InDelta(t, 90, o.Beta, 1e-9)
}

func TestDragTrackerLifecycle(t *testing.T) {
	var dt DragTracker

	_, ok := dt.Move(5, 5)
	assert.False(t, ok, "no sample without an active drag")
	assert.False(t, dt.Release())

	dt.Press(10, 10)
	require.True(t, dt.Active())

	sample, ok := dt.Move(15, 12)
	require.True(t, ok)
	assert.Equal(t, tilt.DragSample(5*dragScaleX, 2*dragScaleY), sample)

	assert.True(t, dt.Release())
	assert.False(t, dt.Active())
}

func TestFrameSynthStartStop(t *testing.T) {
	fs := NewFrameSynth(8, 4, true)
	sender := &chanSender{}

	fs.Start(sender, FacingFront)

	deadline := time.Now().Add(2 * time.Second)
	for sender.count() == 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	require.Greater(t, sender.count(), 0)

	fs.Stop()
	fs.Stop()

	msg, ok := sender.msgs[0].(CameraFrameMsg)
	require.True(t, ok)
	require.NotNil(t, msg.Frame)
	assert.Equal(t, 8, msg.Frame.W)
	assert.Equal(t, 4, msg.Frame.H)
	for _, v := range msg.Frame.Pix {
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 1.0)
	}
	assert.Equal(t, 0.0, msg.Frame.At(-1, 0), "out of bounds reads are zero")
}
