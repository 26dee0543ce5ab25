// Package source provides touch sample sources for the gesture engine:
// a Linux evdev touchscreen reader and a deterministic scripted source
// for tests and demos.
package source

import "github.com/effelle/SentIO/gesture"

// Script replays a fixed sequence of touch frames, one frame per call.
// Past the end it reports no touch, or starts over when looping.
type Script struct {
	frames [][]gesture.Sample
	pos    int
	loop   bool
}

// NewScript creates a Script over frames.
func NewScript(frames [][]gesture.Sample) *Script {
	return &Script{frames: frames}
}

// Loop makes the script start over instead of going quiet at the end.
func (s *Script) Loop() *Script {
	s.loop = true
	return s
}

// Touches returns the next frame.
func (s *Script) Touches() []gesture.Sample {
	if s.pos >= len(s.frames) {
		if !s.loop {
			return nil
		}
		s.pos = 0
	}
	f := s.frames[s.pos]
	s.pos++
	return f
}

// Done reports whether a non-looping script has been fully replayed.
func (s *Script) Done() bool {
	return !s.loop && s.pos >= len(s.frames)
}

// Demo builds a canned gesture sequence sized for a width x height panel:
// a tap, a swipe right, a swipe left, then a stretch of idle frames long
// enough to trip short sleep timeouts. Frame counts assume a 10ms tick.
func Demo(width, height int) *Script {
	cx, cy := width/2, height/2
	var frames [][]gesture.Sample

	press := func(x, y, n int) {
		for range n {
			frames = append(frames, []gesture.Sample{{ID: 1, X: x, Y: y, Pressure: 120}})
		}
	}
	idle := func(n int) {
		for range n {
			frames = append(frames, nil)
		}
	}

	// Tap: 120ms press.
	press(cx, cy, 12)
	idle(30)

	// Swipe right: five frames stepping past the threshold.
	for i := range 5 {
		press(cx+i*15, cy, 1)
	}
	idle(30)

	// Swipe left.
	for i := range 5 {
		press(cx-i*15, cy, 1)
	}
	idle(400)

	return NewScript(frames)
}
