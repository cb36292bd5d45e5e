package config

import "time"

const (
	// Orientation smoothing
	SmoothingFactor = 0.3  // EMA factor (30% new, 70% old)
	TiltIntensity   = 0.1  // rotation degrees per degree of tilt
	DecayConstant   = 0.95 // release decay multiplier per motion tick
	SampleInterval  = 50 * time.Millisecond

	// Camera
	CameraWidth   = 1280 // ideal capture width
	CameraHeight  = 720
	FrameWidth    = 120 // synthesized luminance field resolution
	FrameHeight   = 68
	FrameInterval = 200 * time.Millisecond // frame synthesis cadence

	// Geolocation
	LocationTimeout = 15 * time.Second
	LocationMaxAge  = 30 * time.Second
	LocationDelay   = 2 * time.Second // wait before the automatic attempt

	// Time derivation
	ParallelOffsetMax = 6 * time.Hour
	FutureOffset      = 30 * time.Minute
	ClockInterval     = time.Second

	// Weather simulation
	TempMin = 10 // Celsius
	TempMax = 40

	// Story presentation
	RevealInterval = 30 * time.Millisecond // one character per tick
	MotionInterval = 16 * time.Millisecond // decay tick (~60fps)
	HintDuration   = 5 * time.Second       // navigation hint visibility

	// App
	AppName    = "PARALELA"
	AppVersion = "1.0"
	TargetFPS  = 30
)
