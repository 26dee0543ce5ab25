// Package gesture turns a stream of raw single-point touch samples into
// calibrated coordinates and discrete gesture events: tap, swipe left,
// swipe right, wake, and sleep. The engine is driven by an external
// polling loop that calls Tick once per scheduler cycle with a single
// clock reading; nothing here blocks and no goroutines are spawned.
package gesture

// Sample is one raw touch reading from a panel driver.
type Sample struct {
	ID       int
	X        int
	Y        int
	Pressure int
}

// Source supplies the current touch contacts. An empty slice means no
// finger is on the panel. The engine consults only the first element.
type Source interface {
	Touches() []Sample
}

// Sink receives calibrated coordinates for rendering. It is called once
// per tick that survives the wake-trap and noise filters.
type Sink interface {
	Forward(id, x, y, pressure int)
}

// State is the gesture classifier state.
type State int

const (
	// StateIdle means no finger is down.
	StateIdle State = iota
	// StateStart means a finger is down and the gesture is undecided.
	StateStart
	// StateDragging means a swipe has fired and the engine is waiting
	// for the finger to lift.
	StateDragging
	// StateReleased is a momentary bookkeeping value set inside release
	// handling; it is folded back to StateIdle before Tick returns.
	StateReleased
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateStart:
		return "start"
	case StateDragging:
		return "dragging"
	case StateReleased:
		return "released"
	}
	return "unknown"
}
