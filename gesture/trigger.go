package gesture

// Kind identifies a gesture or lifecycle event a Trigger can be bound to.
type Kind int

const (
	SwipeLeft Kind = iota
	SwipeRight
	Tap
	Wake
	Sleep

	numKinds
)

var kindNames = [numKinds]string{
	SwipeLeft:  "on_swipe_left",
	SwipeRight: "on_swipe_right",
	Tap:        "on_tap",
	Wake:       "on_wake",
	Sleep:      "on_sleep",
}

// String returns the symbolic configuration name of the kind.
func (k Kind) String() string {
	if k < 0 || k >= numKinds {
		return "unknown"
	}
	return kindNames[k]
}

// ParseKind resolves a symbolic configuration name ("on_tap", "on_wake",
// ...) to its Kind. The second result is false for unrecognized names.
// Intended for the configuration layer; the engine itself dispatches on
// Kind values only.
func ParseKind(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), true
		}
	}
	return 0, false
}

// Kinds returns every bindable kind, in a stable order.
func Kinds() []Kind {
	ks := make([]Kind, numKinds)
	for i := range ks {
		ks[i] = Kind(i)
	}
	return ks
}

// Trigger is an externally owned callback fired at most once per matching
// gesture or transition. The engine never retains ownership beyond the
// non-owning binding set at configuration time.
type Trigger interface {
	Fire()
}

// TriggerFunc adapts a plain function to the Trigger interface.
type TriggerFunc func()

// Fire calls f.
func (f TriggerFunc) Fire() { f() }
