//go:build linux

package source

import (
	"fmt"
	"strings"
	"sync"

	evdev "github.com/gvalkov/golang-evdev"

	"github.com/effelle/SentIO/gesture"
)

// Evdev reads a Linux evdev touchscreen and exposes the latest contact as
// a per-tick Source. A background goroutine drains the event stream and
// folds ABS/KEY events into the current sample; Touches only inspects that
// state, so the engine's tick never blocks on the device.
type Evdev struct {
	dev *evdev.InputDevice

	mu   sync.Mutex
	cur  gesture.Sample
	down bool
}

// OpenEvdev opens the first input device whose name contains keyword
// (case-insensitive) and grabs it for exclusive access.
func OpenEvdev(keyword string) (*Evdev, error) {
	devices, err := evdev.ListInputDevices()
	if err != nil {
		return nil, fmt.Errorf("listing input devices: %w", err)
	}

	var path string
	for _, dev := range devices {
		if strings.Contains(strings.ToLower(dev.Name), strings.ToLower(keyword)) {
			path = dev.Fn
			break
		}
	}
	if path == "" {
		return nil, fmt.Errorf("no input device matching %q", keyword)
	}

	dev, err := evdev.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	dev.Grab()

	e := &Evdev{dev: dev}
	go e.readLoop()
	return e, nil
}

// Device returns the path of the opened device node.
func (e *Evdev) Device() string { return e.dev.Fn }

func (e *Evdev) readLoop() {
	for {
		events, err := e.dev.Read()
		if err != nil {
			return
		}

		e.mu.Lock()
		for _, ev := range events {
			switch ev.Type {
			case evdev.EV_ABS:
				switch ev.Code {
				case evdev.ABS_X, evdev.ABS_MT_POSITION_X:
					e.cur.X = int(ev.Value)
				case evdev.ABS_Y, evdev.ABS_MT_POSITION_Y:
					e.cur.Y = int(ev.Value)
				case evdev.ABS_PRESSURE, evdev.ABS_MT_PRESSURE:
					// Resistive panels signal contact through
					// pressure alone.
					e.cur.Pressure = int(ev.Value)
					e.down = ev.Value > 0
				case evdev.ABS_MT_TRACKING_ID:
					if ev.Value < 0 {
						e.down = false
					} else {
						e.cur.ID = int(ev.Value)
						e.down = true
					}
				}
			case evdev.EV_KEY:
				if ev.Code == evdev.BTN_TOUCH {
					e.down = ev.Value != 0
				}
			}
		}
		e.mu.Unlock()
	}
}

// Touches returns the latest contact, or nothing when the finger is up.
func (e *Evdev) Touches() []gesture.Sample {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.down {
		return nil
	}
	return []gesture.Sample{e.cur}
}

// Close releases the grab and closes the device node.
func (e *Evdev) Close() error {
	e.dev.Release()
	return e.dev.File.Close()
}
