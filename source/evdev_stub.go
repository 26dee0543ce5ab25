//go:build !linux

package source

import (
	"errors"

	"github.com/effelle/SentIO/gesture"
)

// Evdev is unavailable off Linux; OpenEvdev always fails there.
type Evdev struct{}

// OpenEvdev returns an error on non-Linux platforms.
func OpenEvdev(keyword string) (*Evdev, error) {
	return nil, errors.New("evdev touch input requires linux")
}

// Device returns an empty path.
func (e *Evdev) Device() string { return "" }

// Touches reports no contact.
func (e *Evdev) Touches() []gesture.Sample { return nil }

// Close is a no-op.
func (e *Evdev) Close() error { return nil }
