package gesture

// Trail is a fixed-capacity ring buffer of calibrated touch points. The
// engine pushes every point it forwards and resets the trail whenever the
// output buffer is cleared, so the trail never shows suppressed input.
type Trail struct {
	data []Sample
	pos  int
	full bool
	cap  int
}

// NewTrail creates a Trail with the given capacity.
func NewTrail(cap int) *Trail {
	return &Trail{
		data: make([]Sample, cap),
		cap:  cap,
	}
}

// Push adds a point to the trail.
func (t *Trail) Push(p Sample) {
	t.data[t.pos] = p
	t.pos++
	if t.pos >= t.cap {
		t.pos = 0
		t.full = true
	}
}

// Len returns the number of points in the trail.
func (t *Trail) Len() int {
	if t.full {
		return t.cap
	}
	return t.pos
}

// Slice returns the trail contents in insertion order.
func (t *Trail) Slice() []Sample {
	n := t.Len()
	out := make([]Sample, n)
	if t.full {
		copy(out, t.data[t.pos:])
		copy(out[t.cap-t.pos:], t.data[:t.pos])
	} else {
		copy(out, t.data[:t.pos])
	}
	return out
}

// Reset empties the trail without releasing its backing storage.
func (t *Trail) Reset() {
	t.pos = 0
	t.full = false
}
