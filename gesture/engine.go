package gesture

import (
	"io"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	// SwipeThreshold is the horizontal displacement in calibrated pixels
	// that turns a touch into a swipe.
	SwipeThreshold = 30

	// MaxTapTime is the longest press that still counts as a tap.
	// Anything longer without a swipe is a hold and fires nothing.
	MaxTapTime = 400 * time.Millisecond

	// trailCap bounds the number of calibrated points the engine retains
	// for diagnostics.
	trailCap = 128
)

// Config wires an Engine. All fields are fixed once New is called, except
// Source and Sink which may be replaced through their setters before
// steady-state ticking begins.
type Config struct {
	// Source supplies raw touch samples. A nil source makes Tick a
	// silent no-op; configuration may legitimately finish after the
	// first ticks.
	Source Source

	// Sink, when non-nil, receives each calibrated point that passes
	// the wake-trap and noise filters.
	Sink Sink

	// Width and Height are the display dimensions in pixels, used by
	// the calibration transform. They are not validated; degenerate
	// values produce degenerate but non-crashing output.
	Width  int
	Height int

	// SleepTimeout is the idle time after which the engine sleeps.
	SleepTimeout time.Duration

	// SuppressWakeClick arms the wake-trap: the touch that wakes the
	// engine is swallowed through its release instead of being
	// classified.
	SuppressWakeClick bool

	SwapXY  bool
	InvertX bool
	InvertY bool

	// Debounce is the minimum touch duration; shorter touches are ghost
	// touches and leave no trace in output or events.
	Debounce time.Duration

	// DebugRaw logs every raw sample at debug level.
	DebugRaw bool

	// Log receives diagnostics. Nil discards them.
	Log *logrus.Logger
}

// Engine is the per-tick gesture interpreter. All of its state is owned by
// the single tick caller; no locking is used or required.
type Engine struct {
	src   Source
	sink  Sink
	calib Calibration

	sleepTimeout time.Duration
	suppressWake bool
	debounce     time.Duration
	debugRaw     bool
	log          *logrus.Logger

	state        State
	startX       int
	startY       int
	gestureStart time.Time

	lastActivity      time.Time
	sleeping          bool
	ignoreNextRelease bool

	triggers [numKinds]Trigger

	// touches is the calibrated output exposed to consumers. buf is its
	// backing array so the steady-state tick path allocates nothing.
	touches []Sample
	buf     [1]Sample
	trail   *Trail
}

// New creates an Engine from cfg. Call Start with the current time before
// the first Tick to seed the activity clock.
func New(cfg Config) *Engine {
	log := cfg.Log
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}
	return &Engine{
		src:  cfg.Source,
		sink: cfg.Sink,
		calib: Calibration{
			SwapXY:  cfg.SwapXY,
			InvertX: cfg.InvertX,
			InvertY: cfg.InvertY,
			Width:   cfg.Width,
			Height:  cfg.Height,
		},
		sleepTimeout: cfg.SleepTimeout,
		suppressWake: cfg.SuppressWakeClick,
		debounce:     cfg.Debounce,
		debugRaw:     cfg.DebugRaw,
		log:          log,
		trail:        NewTrail(trailCap),
	}
}

// Start seeds the idle clock. Without it the first Tick would observe a
// full sleep timeout's worth of idle time.
func (e *Engine) Start(now time.Time) {
	e.lastActivity = now
}

// SetSource replaces the touch source. Configuration time only.
func (e *Engine) SetSource(src Source) { e.src = src }

// SetSink replaces the coordinate sink. Configuration time only.
func (e *Engine) SetSink(sink Sink) { e.sink = sink }

// Bind attaches a trigger to a kind. A nil trigger unbinds; an unbound
// kind makes the matching event a no-op.
func (e *Engine) Bind(k Kind, t Trigger) {
	if k >= 0 && k < numKinds {
		e.triggers[k] = t
	}
}

// Trigger returns the binding for k, or nil when unbound or unknown.
func (e *Engine) Trigger(k Kind) Trigger {
	if k < 0 || k >= numKinds {
		return nil
	}
	return e.triggers[k]
}

// Tick runs one polling step. now must be a single clock reading taken by
// the caller for this tick; it is threaded through every transition so all
// duration comparisons inside the tick agree with each other.
func (e *Engine) Tick(now time.Time) {
	if e.src == nil {
		return
	}

	// The sleep check precedes sample handling so the timeout is
	// evaluated even on ticks with no touch.
	if !e.sleeping && now.Sub(e.lastActivity) > e.sleepTimeout {
		e.sleeping = true
		e.log.Info("entering sleep mode")
		e.fire(Sleep)
	}

	touches := e.src.Touches()

	// Finger up.
	if len(touches) == 0 {
		if e.state != StateIdle {
			e.handleRelease(now)
			e.state = StateIdle
			e.clearOutput()
		}
		// The wake-trap disarms once the waking touch sequence ends.
		e.ignoreNextRelease = false
		return
	}

	// Single-touch design: only the first contact is consulted.
	raw := touches[0]

	if e.debugRaw {
		e.log.WithFields(logrus.Fields{"x": raw.X, "y": raw.Y}).Debug("raw touch")
	}

	if e.sleeping {
		e.sleeping = false
		e.lastActivity = now
		e.log.Info("waking up")
		e.fire(Wake)

		if e.suppressWake {
			// Swallow the waking touch through its release.
			e.ignoreNextRelease = true
			return
		}
	}

	e.lastActivity = now

	if e.ignoreNextRelease {
		return
	}

	p := e.calib.Apply(raw)
	e.processGesture(p, now)
	e.emit(p)
}

// processGesture advances the classifier state machine by one sample.
func (e *Engine) processGesture(p Sample, now time.Time) {
	switch e.state {
	case StateIdle:
		e.state = StateStart
		e.startX = p.X
		e.startY = p.Y
		e.gestureStart = now

	case StateStart:
		// Only horizontal displacement is classified.
		dx := p.X - e.startX
		if dx > SwipeThreshold || dx < -SwipeThreshold {
			e.state = StateDragging
			if dx > 0 {
				e.fire(SwipeRight)
			} else {
				e.fire(SwipeLeft)
			}
		}

	case StateDragging:
		// Swipe already fired; wait for release.
	}
}

// handleRelease classifies a finished gesture. Only a session still in
// StateStart is evaluated: a dragging session already consumed its gesture
// when the swipe fired.
func (e *Engine) handleRelease(now time.Time) {
	prev := e.state
	e.state = StateReleased

	if prev != StateStart {
		return
	}

	duration := now.Sub(e.gestureStart)

	if duration < e.debounce {
		// Ghost touch: too short to be a finger. Drop the trace so
		// the consumer never sees it.
		e.log.WithField("duration", duration).Debug("ignored noise pulse")
		e.clearOutput()
		return
	}

	if duration < MaxTapTime {
		e.fire(Tap)
	}
	// Longer is a hold: deliberately no event.
}

func (e *Engine) emit(p Sample) {
	e.buf[0] = p
	e.touches = e.buf[:1]
	e.trail.Push(p)
	if e.sink != nil {
		e.sink.Forward(p.ID, p.X, p.Y, p.Pressure)
	}
}

func (e *Engine) clearOutput() {
	e.touches = e.buf[:0]
	e.trail.Reset()
}

func (e *Engine) fire(k Kind) {
	if t := e.triggers[k]; t != nil {
		t.Fire()
	}
}

// Touches returns the current calibrated output, at most one point. The
// Engine itself satisfies Source, so it can sit in front of another
// consumer exactly like a panel driver would.
func (e *Engine) Touches() []Sample { return e.touches }

// State returns the classifier state.
func (e *Engine) State() State { return e.state }

// Sleeping reports whether the engine is in sleep mode.
func (e *Engine) Sleeping() bool { return e.sleeping }

// Trail returns the retained calibrated points for diagnostics.
func (e *Engine) Trail() *Trail { return e.trail }
