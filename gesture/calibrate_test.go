package gesture

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalibrationIdentity(t *testing.T) {
	assert := assert.New(t)

	c := Calibration{Width: 320, Height: 240}
	p := Sample{ID: 3, X: 17, Y: 42, Pressure: 9}

	assert.Equal(p, c.Apply(p))
}

func TestCalibrationSwapInvertComposition(t *testing.T) {
	assert := assert.New(t)

	// swap first, then invert-x against the swapped-frame width (the
	// display height): (10,300) -> (300,10) -> x = 240-300 = -60 -> 0.
	c := Calibration{SwapXY: true, InvertX: true, Width: 320, Height: 240}
	got := c.Apply(Sample{X: 10, Y: 300})

	assert.Equal(0, got.X)
	assert.Equal(10, got.Y)
}

func TestCalibrationInvertBoth(t *testing.T) {
	assert := assert.New(t)

	c := Calibration{InvertX: true, InvertY: true, Width: 320, Height: 240}
	got := c.Apply(Sample{X: 20, Y: 30})

	assert.Equal(300, got.X)
	assert.Equal(210, got.Y)
}

func TestCalibrationClampsToZeroOnly(t *testing.T) {
	assert := assert.New(t)

	c := Calibration{InvertX: true, Width: 320, Height: 240}

	// Past the inverted origin clamps to zero.
	assert.Equal(0, c.Apply(Sample{X: 400, Y: 10}).X)

	// There is no upper clamp: out-of-range maxima pass through.
	c = Calibration{Width: 320, Height: 240}
	assert.Equal(9999, c.Apply(Sample{X: 9999, Y: 10}).X)
}

func TestCalibrationIsPure(t *testing.T) {
	assert := assert.New(t)

	c := Calibration{SwapXY: true, InvertY: true, Width: 320, Height: 240}
	p := Sample{ID: 1, X: 55, Y: 66, Pressure: 7}

	first := c.Apply(p)
	second := c.Apply(p)

	assert.Equal(first, second)
	assert.Equal(Sample{ID: 1, X: 55, Y: 66, Pressure: 7}, p)
}
