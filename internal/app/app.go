package app

import (
	"context"
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"paralela/internal/config"
	"paralela/internal/device"
	"paralela/internal/location"
	"paralela/internal/scene"
	"paralela/internal/story"
	"paralela/internal/tilt"
	"paralela/internal/ui"
)

// Options configures the application at startup.
type Options struct {
	Demo     bool
	NoCamera bool
	Lang     language.Tag
	Env      config.Env
	Provider location.Provider
	Log      *zap.Logger
}

// shared holds state shared between the Bubble Tea model copies and main.go.
// Because Bubble Tea uses value receivers, pointer fields ensure all copies
// see the same underlying data.
type shared struct {
	devices *device.Store
	camera  *device.Manager
	orient  device.OrientationDriver
	frames  *device.FrameSynth
	drag    *device.DragTracker
	loc     *location.Machine
	book    *story.Book
	reveal  *story.Reveal
	sender  device.Sender
	log     *zap.Logger
}

// phase sequences the reader screens: title, consent, then the story.
type phase int

const (
	phaseIntro phase = iota
	phasePermissions
	phaseStory
)

// AppModel is the root Bubble Tea model for Paralela.
type AppModel struct {
	width  int
	height int

	demoMode    bool
	noCamera    bool
	phase       phase
	hintVisible bool
	decaying    bool
	cursorOn    bool

	progress progress.Model

	shared *shared

	// Cached snapshots, refreshed once per frame tick
	dev device.Snapshot
	loc location.Snapshot
	ctx scene.Context
}

// New creates a new AppModel. The location machine seeds simulated data
// synchronously, so the first render already has a complete context.
func New(opts Options) AppModel {
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}

	support := device.DetectSupport("/dev", "/sys/bus/iio/devices")
	if opts.NoCamera {
		support.Camera = false
	}

	var camDriver device.CameraDriver
	var orient device.OrientationDriver
	if opts.Demo {
		support.Camera = !opts.NoCamera
		support.Orientation = true
		camDriver = device.MockCameraDriver{}
		orient = &device.MockOrientationDriver{}
	} else {
		camDriver = device.NewV4LDriver()
		orient = device.NewIIODriver(log)
	}

	tiltCfg := tilt.Config{
		Enabled:   true,
		Intensity: config.TiltIntensity,
		Smoothing: config.SmoothingFactor,
	}
	devices := device.NewStore(support, tiltCfg, log)

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	clock := location.NewClock(opts.Lang)
	geocoder := location.NewGeocoder(opts.Env.GeocodeURL, opts.Env.UserAgent, log)
	machine := location.NewMachine(opts.Provider, geocoder, clock, rng, log)

	book := story.NewBook(story.Pages())

	sh := &shared{
		devices: devices,
		camera:  device.NewManager(devices, camDriver, log),
		orient:  orient,
		frames:  device.NewFrameSynth(config.FrameWidth, config.FrameHeight, opts.Demo),
		drag:    &device.DragTracker{},
		loc:     machine,
		book:    book,
		log:     log,
	}

	m := AppModel{
		demoMode:    opts.Demo,
		noCamera:    opts.NoCamera,
		hintVisible: true,
		progress:    progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
		shared:      sh,
	}
	m.refresh()
	sh.reveal = story.NewReveal(m.resolvedPage())
	return m
}

func (m AppModel) Init() tea.Cmd {
	return tea.Batch(
		frameTickCmd(),
		clockTickCmd(),
		revealTickCmd(),
	)
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = m.width / 5
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case FrameTickMsg:
		m.refresh()
		m.cursorOn = time.Time(msg).UnixMilli()/400%2 == 0
		// Same text is a noop; a context change mid-page re-resolves in place.
		m.shared.reveal.Retarget(m.resolvedPage())
		return m, frameTickCmd()

	case ClockTickMsg:
		now := time.Time(msg)
		m.shared.loc.TickClock(now)
		m.shared.devices.SetClock(m.shared.loc.Snapshot().DeviceTime)
		m.refresh()
		m.shared.reveal.Retarget(m.resolvedPage())
		return m, clockTickCmd()

	case RevealTickMsg:
		if !m.shared.reveal.Done() {
			m.shared.reveal.Advance()
		}
		return m, revealTickCmd()

	case MotionTickMsg:
		if m.decaying && !m.shared.drag.Active() {
			if _, done := m.shared.devices.DecayOrientation(config.DecayConstant); done {
				m.decaying = false
				return m, nil
			}
			return m, motionTickCmd()
		}
		m.decaying = false
		return m, nil

	case HintExpiredMsg:
		m.hintVisible = false
		return m, nil

	case LocationAttemptMsg:
		if m.shared.loc.Snapshot().Phase == location.SimulatedSeeded {
			return m, m.requestLocationCmd()
		}
		return m, nil

	case LocationResolvedMsg:
		m.loc = msg.Snapshot
		m.ctx = scene.Aggregate(m.dev, m.loc)
		m.shared.reveal.Retarget(m.resolvedPage())
		return m, nil

	case device.OrientationSampleMsg:
		m.shared.devices.ApplyOrientation(msg.Sample)
		return m, nil

	case device.CameraFrameMsg:
		m.shared.devices.SetFrame(msg.Frame)
		return m, nil

	case CameraResultMsg:
		if msg.Kind == device.CameraErrNone {
			m.shared.frames.Start(m.shared.sender, m.shared.devices.Snapshot().Facing)
		}
		return m, nil
	}

	return m, nil
}

func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "q" || key == "Q" || key == "ctrl+c" {
		m.stopSensors()
		return m, tea.Quit
	}

	switch m.phase {
	case phaseIntro:
		m.phase = phasePermissions
		return m, nil
	case phasePermissions:
		return m.handlePermissionsKey(key)
	}

	switch key {
	case "right", "l", " ", "enter":
		// A tap mid-reveal finishes the page; the next one turns it.
		if !m.shared.reveal.Done() {
			for !m.shared.reveal.Done() {
				m.shared.reveal.Advance()
			}
			return m, nil
		}
		if !m.shared.book.IsLast() {
			m.shared.book.Next()
			m.restartReveal()
		}

	case "left", "h":
		if !m.shared.book.IsFirst() {
			m.shared.book.Previous()
			m.restartReveal()
		}

	case "g", "home":
		m.shared.book.GoTo(0)
		m.restartReveal()

	case "G", "end":
		m.shared.book.GoTo(m.shared.book.Total() - 1)
		m.restartReveal()

	case "r", "R":
		m.shared.book.Reset()
		m.shared.loc.Resample()
		m.refresh()
		m.restartReveal()
		m.hintVisible = true
		return m, hintCmd()

	case "c", "C":
		if m.dev.Stream != nil {
			m.shared.frames.Stop()
			m.shared.camera.StopCamera()
			return m, nil
		}
		return m, m.requestCameraCmd(m.dev.Facing)

	case "f", "F":
		if m.dev.Stream == nil {
			return m, nil
		}
		m.shared.frames.Stop()
		return m, m.switchFacingCmd()

	case "o", "O":
		return m, m.toggleOrientation()
	}

	return m, nil
}

// handlePermissionsKey runs the consent screen: camera first, orientation on
// request, then the story. The location attempt waits until the reader has
// settled into the story.
func (m AppModel) handlePermissionsKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "c", "C":
		if m.dev.Stream == nil && !m.dev.CameraLoading {
			return m, m.requestCameraCmd(m.dev.Facing)
		}

	case "o", "O":
		return m, m.toggleOrientation()

	case "enter", " ", "s", "S":
		m.phase = phaseStory
		m.restartReveal()
		return m, tea.Batch(hintCmd(), locationDelayCmd())
	}
	return m, nil
}

// handleMouse maps terminal pointer drags onto the touch tilt fallback. The
// fallback only drives orientation while no sensor feed is granted.
func (m AppModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.dev.OrientationPermission {
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.shared.drag.Press(msg.X, msg.Y)
			m.decaying = false
		}

	case tea.MouseActionMotion:
		if o, ok := m.shared.drag.Move(msg.X, msg.Y); ok {
			m.shared.devices.SetOrientation(o)
		}

	case tea.MouseActionRelease:
		if m.shared.drag.Release() {
			m.decaying = true
			return m, motionTickCmd()
		}
	}

	return m, nil
}

func (m AppModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Sintonizando la otra dimensión..."
	}

	switch m.phase {
	case phaseIntro:
		return m.viewIntro()
	case phasePermissions:
		return m.viewPermissions()
	}

	cameraW, bodyH, rightW := ui.PanelSizes(m.width, m.height)

	menuBar := ui.RenderMenuBar(m.width, m.demoMode)

	var frame *device.Frame
	var camErr string
	if m.ctx.CameraLive {
		frame = m.dev.Frame
	} else if m.dev.CameraError != device.CameraErrNone {
		camErr = m.dev.CameraError.Message()
	} else {
		camErr = "cámara apagada, pulsa C"
	}
	cameraPanel := ui.RenderCameraPanel(cameraW, bodyH, frame, m.ctx.Tilt, camErr)

	spans := story.Highlight(m.shared.reveal.Current())
	textPanel := ui.RenderTextPanel(rightW, spans, !m.shared.reveal.Done(), m.cursorOn)
	if m.hintVisible {
		textPanel += "\n" + ui.StyleHint.Render(" ←/→ para cambiar de página")
	}

	infoPanel := ui.RenderInfoPanel(rightW, m.ctx, m.loc.Phase, m.loc.LocationError)

	bar := m.progress.ViewAs(m.shared.book.ProgressPercent() / 100)
	statusBar := ui.RenderStatusBar(m.width, m.shared.book.Index(), m.shared.book.Total(), bar, m.ctx)

	return ui.ComposeLayout(m.width, m.height, menuBar, cameraPanel, textPanel, infoPanel, statusBar)
}

func (m AppModel) viewIntro() string {
	title := ui.StylePanelTitle.Render(config.AppName + " v" + config.AppVersion)
	sub := ui.StyleStoryText.Render("una narración desde la dimensión paralela")
	hint := ui.StyleHint.Render("pulsa cualquier tecla para empezar")
	return ui.ComposeIntro(m.width, m.height, title, sub, hint)
}

func (m AppModel) viewPermissions() string {
	camera := "apagada"
	switch {
	case m.noCamera:
		camera = "desactivada (--no-camera)"
	case m.dev.CameraLoading:
		camera = "abriendo..."
	case m.dev.Stream != nil:
		camera = "concedida"
	case m.dev.CameraError != device.CameraErrNone:
		camera = m.dev.CameraError.Message()
	case !m.dev.Support.Camera:
		camera = "no disponible"
	}

	orient := "apagada"
	switch {
	case m.dev.OrientationPermission:
		orient = "concedida"
	case m.dev.OrientationError != device.OrientationErrNone:
		orient = "no disponible, arrastra con el ratón"
	}

	return ui.RenderPermissions(m.width, m.height, camera, orient)
}

// refresh re-reads both stores and recomputes the aggregated context.
func (m *AppModel) refresh() {
	m.dev = m.shared.devices.Snapshot()
	m.loc = m.shared.loc.Snapshot()
	m.ctx = scene.Aggregate(m.dev, m.loc)
}

// resolvedPage renders the current page's template against the live context.
func (m *AppModel) resolvedPage() string {
	return story.Resolve(m.shared.book.Current().Text, m.ctx)
}

func (m *AppModel) restartReveal() {
	m.refresh()
	m.shared.reveal = story.NewReveal(m.resolvedPage())
}

// StartSensors wires the drivers to the running program. Must be called
// before p.Run().
func (m *AppModel) StartSensors(p *tea.Program) {
	m.shared.sender = p
}

func (m *AppModel) stopSensors() {
	m.shared.frames.Stop()
	m.shared.orient.Stop()
	m.shared.camera.StopCamera()
}

func (m AppModel) toggleOrientation() tea.Cmd {
	if m.dev.OrientationPermission {
		m.shared.orient.Stop()
		m.shared.devices.SetOrientationError(device.OrientationErrNone)
		return nil
	}
	if !m.shared.orient.Available() {
		m.shared.devices.SetOrientationError(device.OrientationUnsupported)
		return nil
	}
	if err := m.shared.orient.Start(m.shared.sender); err != nil {
		m.shared.log.Warn("orientation start failed", zap.Error(err))
		m.shared.devices.SetOrientationError(device.OrientationDenied)
		return nil
	}
	m.shared.devices.SetOrientationGranted()
	return nil
}

func (m AppModel) requestCameraCmd(facing device.Facing) tea.Cmd {
	camera := m.shared.camera
	return func() tea.Msg {
		return CameraResultMsg{Kind: camera.RequestCamera(facing)}
	}
}

func (m AppModel) switchFacingCmd() tea.Cmd {
	camera := m.shared.camera
	return func() tea.Msg {
		return CameraResultMsg{Kind: camera.SwitchFacing()}
	}
}

func (m AppModel) requestLocationCmd() tea.Cmd {
	machine := m.shared.loc
	return func() tea.Msg {
		return LocationResolvedMsg{Snapshot: machine.RequestReal(context.Background())}
	}
}

func frameTickCmd() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(config.TargetFPS), func(t time.Time) tea.Msg {
		return FrameTickMsg(t)
	})
}

func clockTickCmd() tea.Cmd {
	return tea.Tick(config.ClockInterval, func(t time.Time) tea.Msg {
		return ClockTickMsg(t)
	})
}

func revealTickCmd() tea.Cmd {
	return tea.Tick(config.RevealInterval, func(t time.Time) tea.Msg {
		return RevealTickMsg(t)
	})
}

func motionTickCmd() tea.Cmd {
	return tea.Tick(config.MotionInterval, func(t time.Time) tea.Msg {
		return MotionTickMsg(t)
	})
}

func hintCmd() tea.Cmd {
	return tea.Tick(config.HintDuration, func(time.Time) tea.Msg {
		return HintExpiredMsg{}
	})
}

func locationDelayCmd() tea.Cmd {
	return tea.Tick(config.LocationDelay, func(time.Time) tea.Msg {
		return LocationAttemptMsg{}
	})
}
