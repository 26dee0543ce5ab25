// Package backlight controls display backlight brightness through the
// Linux sysfs interface, so the daemon can blank the panel on sleep and
// restore it on wake.
package backlight

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const sysClass = "/sys/class/backlight"

// Device is one sysfs backlight device.
type Device struct {
	dir   string
	max   int
	saved int
}

// Open opens the first device under /sys/class/backlight.
func Open() (*Device, error) {
	entries, err := os.ReadDir(sysClass)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", sysClass, err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("no backlight device under %s", sysClass)
	}
	return OpenPath(filepath.Join(sysClass, entries[0].Name()))
}

// OpenPath opens the backlight device rooted at dir.
func OpenPath(dir string) (*Device, error) {
	max, err := readInt(filepath.Join(dir, "max_brightness"))
	if err != nil {
		return nil, fmt.Errorf("reading max_brightness: %w", err)
	}
	return &Device{dir: dir, max: max}, nil
}

// Max returns the device's maximum brightness value.
func (d *Device) Max() int { return d.max }

// Brightness returns the current brightness value.
func (d *Device) Brightness() (int, error) {
	return readInt(filepath.Join(d.dir, "brightness"))
}

// Set writes a brightness value, clamped to [0, max].
func (d *Device) Set(level int) error {
	if level < 0 {
		level = 0
	}
	if level > d.max {
		level = d.max
	}
	return os.WriteFile(filepath.Join(d.dir, "brightness"), []byte(strconv.Itoa(level)), 0o644)
}

// Off saves the current brightness and blanks the panel.
func (d *Device) Off() error {
	cur, err := d.Brightness()
	if err != nil {
		return err
	}
	if cur > 0 {
		d.saved = cur
	}
	return d.Set(0)
}

// Restore brings back the brightness saved by Off. If nothing was saved,
// the panel comes back at full brightness.
func (d *Device) Restore() error {
	level := d.saved
	if level == 0 {
		level = d.max
	}
	return d.Set(level)
}

func readInt(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(strings.TrimSpace(string(data)))
}
