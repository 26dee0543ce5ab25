//go:build !linux

package sink

import "errors"

// Pointer is unavailable off Linux; NewPointer always fails there.
type Pointer struct{}

// NewPointer returns an error on non-Linux platforms.
func NewPointer(name string, width, height int) (*Pointer, error) {
	return nil, errors.New("uinput pointer requires linux")
}

// Forward is a no-op.
func (p *Pointer) Forward(id, x, y, pressure int) {}

// LeftClick is a no-op.
func (p *Pointer) LeftClick() error { return nil }

// Close is a no-op.
func (p *Pointer) Close() error { return nil }
