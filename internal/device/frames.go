package device

import (
	"context"
	"math"
	"math/rand"
	"sync"
	"time"

	"paralela/internal/config"
)

// Frame is a luminance grid the camera panel renders as ASCII. Values are
// row-major in [0,1].
type Frame struct {
	W, H int
	Pix  []float64
}

// At returns the luminance at (x, y), zero outside the grid.
func (f *Frame) At(x, y int) float64 {
	if f == nil || x < 0 || y < 0 || x >= f.W || y >= f.H {
		return 0
	}
	return f.Pix[y*f.W+x]
}

// CameraFrameMsg carries the latest synthesized frame.
type CameraFrameMsg struct {
	Frame *Frame
}

// FrameSynth renders the "view through the camera" while a stream is active.
// Terminal capture cannot decode real video, so both real and mock streams
// get a synthesized field: drifting interference for the mock stream and a
// subtler static for a real handle. Front-facing streams are mirrored.
type FrameSynth struct {
	mu      sync.Mutex
	cancel  context.CancelFunc
	running bool

	w, h   int
	facing Facing
	demo   bool
}

func NewFrameSynth(w, h int, demo bool) *FrameSynth {
	return &FrameSynth{w: w, h: h, demo: demo}
}

// Start begins emitting frames. A prior run is stopped first.
func (fs *FrameSynth) Start(s Sender, facing Facing) {
	fs.Stop()

	fs.mu.Lock()
	fs.facing = facing
	fs.running = true
	ctx, cancel := context.WithCancel(context.Background())
	fs.cancel = cancel
	fs.mu.Unlock()

	go fs.loop(ctx, s)
}

func (fs *FrameSynth) loop(ctx context.Context, s Sender) {
	ticker := time.NewTicker(config.FrameInterval)
	defer ticker.Stop()

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	t := 0.0
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			fs.mu.Lock()
			if !fs.running {
				fs.mu.Unlock()
				return
			}
			facing := fs.facing
			fs.mu.Unlock()

			t += 0.2
			s.Send(CameraFrameMsg{Frame: fs.render(t, facing, rng)})
		}
	}
}

func (fs *FrameSynth) render(t float64, facing Facing, rng *rand.Rand) *Frame {
	f := &Frame{W: fs.w, H: fs.h, Pix: make([]float64, fs.w*fs.h)}
	for y := 0; y < fs.h; y++ {
		for x := 0; x < fs.w; x++ {
			px := x
			if facing == FacingFront {
				px = fs.w - 1 - x
			}
			var v float64
			if fs.demo {
				// Interference pattern drifting over time.
				v = 0.5 +
					0.25*math.Sin(float64(x)/3.0+t) +
					0.25*math.Sin(float64(y)/2.0-t*0.7)
			} else {
				v = 0.35 + rng.Float64()*0.3
			}
			v += (rng.Float64() - 0.5) * 0.1
			if v < 0 {
				v = 0
			}
			if v > 1 {
				v = 1
			}
			f.Pix[y*fs.w+px] = v
		}
	}
	return f
}

// Stop halts frame emission. Idempotent.
func (fs *FrameSynth) Stop() {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.running = false
	if fs.cancel != nil {
		fs.cancel()
		fs.cancel = nil
	}
}
