//go:build linux

package sink

import (
	"fmt"

	"github.com/bendahl/uinput"
)

// Pointer forwards calibrated points to a virtual uinput touchpad so the
// rest of the system sees an ordinary absolute pointer device.
type Pointer struct {
	pad uinput.TouchPad
}

// NewPointer creates the virtual device. Width and height bound the
// absolute axes; they should match the engine's display dimensions.
func NewPointer(name string, width, height int) (*Pointer, error) {
	pad, err := uinput.CreateTouchPad("/dev/uinput", []byte(name), 0, int32(width), 0, int32(height))
	if err != nil {
		return nil, fmt.Errorf("creating uinput touchpad: %w", err)
	}
	return &Pointer{pad: pad}, nil
}

// Forward moves the virtual pointer to the calibrated position.
func (p *Pointer) Forward(id, x, y, pressure int) {
	p.pad.MoveTo(int32(x), int32(y))
}

// LeftClick emits a click; bound to the tap trigger by the daemon.
func (p *Pointer) LeftClick() error {
	return p.pad.LeftClick()
}

// Close destroys the virtual device.
func (p *Pointer) Close() error {
	return p.pad.Close()
}
