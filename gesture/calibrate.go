package gesture

// Calibration maps driver-native coordinates into the consumer coordinate
// space: optional axis swap, per-axis inversion, and a lower clamp at zero.
// There is intentionally no upper clamp; consumers tolerate out-of-range
// maxima.
type Calibration struct {
	SwapXY  bool
	InvertX bool
	InvertY bool
	Width   int
	Height  int
}

// Apply transforms one sample. It is a pure function of its input and the
// calibration values, so it can be exercised independently of any engine.
func (c Calibration) Apply(p Sample) Sample {
	x, y := p.X, p.Y

	if c.SwapXY {
		x, y = y, x
	}

	// Inversion acts in the already-swapped frame: after a swap, x runs
	// along the display's height dimension.
	w, h := c.Width, c.Height
	if c.SwapXY {
		w, h = h, w
	}

	if c.InvertX {
		x = w - x
	}
	if c.InvertY {
		y = h - y
	}

	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}

	p.X, p.Y = x, y
	return p
}
