package backlight

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func fakeDevice(t *testing.T, brightness, max string) string {
	t.Helper()
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "brightness"), []byte(brightness), 0o644)
	assert.NoError(t, err)
	err = os.WriteFile(filepath.Join(dir, "max_brightness"), []byte(max), 0o644)
	assert.NoError(t, err)
	return dir
}

func TestOpenPathReadsMax(t *testing.T) {
	assert := assert.New(t)

	d, err := OpenPath(fakeDevice(t, "120\n", "255\n"))
	assert.NoError(err)
	assert.Equal(255, d.Max())

	cur, err := d.Brightness()
	assert.NoError(err)
	assert.Equal(120, cur)
}

func TestSetClamps(t *testing.T) {
	assert := assert.New(t)

	d, err := OpenPath(fakeDevice(t, "0", "255"))
	assert.NoError(err)

	assert.NoError(d.Set(999))
	cur, _ := d.Brightness()
	assert.Equal(255, cur)

	assert.NoError(d.Set(-5))
	cur, _ = d.Brightness()
	assert.Equal(0, cur)
}

func TestOffAndRestore(t *testing.T) {
	assert := assert.New(t)

	d, err := OpenPath(fakeDevice(t, "120", "255"))
	assert.NoError(err)

	assert.NoError(d.Off())
	cur, _ := d.Brightness()
	assert.Equal(0, cur)

	assert.NoError(d.Restore())
	cur, _ = d.Brightness()
	assert.Equal(120, cur)
}

func TestRestoreWithoutSavedGoesFull(t *testing.T) {
	assert := assert.New(t)

	d, err := OpenPath(fakeDevice(t, "0", "200"))
	assert.NoError(err)

	assert.NoError(d.Restore())
	cur, _ := d.Brightness()
	assert.Equal(200, cur)
}
