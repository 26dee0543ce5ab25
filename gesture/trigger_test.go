package gesture

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseKindRoundTrip(t *testing.T) {
	assert := assert.New(t)

	for _, k := range Kinds() {
		got, ok := ParseKind(k.String())
		assert.True(ok)
		assert.Equal(k, got)
	}
}

func TestParseKindUnknown(t *testing.T) {
	assert := assert.New(t)

	_, ok := ParseKind("on_pinch")
	assert.False(ok)

	_, ok = ParseKind("")
	assert.False(ok)
}

func TestBindAndLookup(t *testing.T) {
	assert := assert.New(t)

	e := New(Config{})
	assert.Nil(e.Trigger(Tap))

	fired := 0
	e.Bind(Tap, TriggerFunc(func() { fired++ }))

	tr := e.Trigger(Tap)
	assert.NotNil(tr)
	tr.Fire()
	assert.Equal(1, fired)

	e.Bind(Tap, nil)
	assert.Nil(e.Trigger(Tap))
}

func TestTrailWrapAndReset(t *testing.T) {
	assert := assert.New(t)

	tr := NewTrail(3)
	for i := 1; i <= 5; i++ {
		tr.Push(Sample{X: i})
	}

	assert.Equal(3, tr.Len())
	got := tr.Slice()
	assert.Equal([]Sample{{X: 3}, {X: 4}, {X: 5}}, got)

	tr.Reset()
	assert.Equal(0, tr.Len())
	assert.Empty(tr.Slice())
}
