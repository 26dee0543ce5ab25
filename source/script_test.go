package source

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/effelle/SentIO/gesture"
)

func TestScriptReplaysFramesOnce(t *testing.T) {
	assert := assert.New(t)

	frames := [][]gesture.Sample{
		{{ID: 1, X: 10, Y: 20, Pressure: 50}},
		nil,
	}
	s := NewScript(frames)

	assert.Len(s.Touches(), 1)
	assert.Empty(s.Touches())
	assert.True(s.Done())
	assert.Empty(s.Touches())
}

func TestScriptLoopStartsOver(t *testing.T) {
	assert := assert.New(t)

	s := NewScript([][]gesture.Sample{
		{{ID: 1, X: 1, Y: 1, Pressure: 1}},
	}).Loop()

	for range 5 {
		assert.Len(s.Touches(), 1)
	}
	assert.False(s.Done())
}

// TestDemoDrivesFullGestureCycle replays the canned demo through a real
// engine at the nominal 10ms tick and checks that every scripted gesture
// is recognized, plus a sleep at the idle tail.
func TestDemoDrivesFullGestureCycle(t *testing.T) {
	assert := assert.New(t)

	script := Demo(320, 240)
	e := gesture.New(gesture.Config{
		Source:       script,
		Width:        320,
		Height:       240,
		SleepTimeout: 2 * time.Second,
		Debounce:     20 * time.Millisecond,
	})

	var taps, left, right, sleeps int
	e.Bind(gesture.Tap, gesture.TriggerFunc(func() { taps++ }))
	e.Bind(gesture.SwipeLeft, gesture.TriggerFunc(func() { left++ }))
	e.Bind(gesture.SwipeRight, gesture.TriggerFunc(func() { right++ }))
	e.Bind(gesture.Sleep, gesture.TriggerFunc(func() { sleeps++ }))

	now := time.Unix(0, 0)
	e.Start(now)
	for !script.Done() {
		now = now.Add(10 * time.Millisecond)
		e.Tick(now)
	}
	// One extra tick to observe the final release.
	e.Tick(now.Add(10 * time.Millisecond))

	assert.Equal(1, taps)
	assert.Equal(1, right)
	assert.Equal(1, left)
	assert.Equal(1, sleeps)
}
