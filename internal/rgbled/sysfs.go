package rgbled

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gerranmora/iron-man-repulsor-glove/internal/logic"
)

// SysfsDriver writes channel brightness to Linux LED class entries, e.g.
// /sys/class/leds/button:red/brightness. Channel values are scaled from
// 0-255 to the entry's max_brightness.
type SysfsDriver struct {
	paths [3]string // red, green, blue brightness files
	max   [3]int
}

// NewSysfsDriver opens the three LED entries under dir with the given
// names (e.g. "button:red").
func NewSysfsDriver(dir, red, green, blue string) (*SysfsDriver, error) {
	d := &SysfsDriver{}
	for i, name := range []string{red, green, blue} {
		base := filepath.Join(dir, name)
		maxRaw, err := os.ReadFile(filepath.Join(base, "max_brightness"))
		if err != nil {
			return nil, fmt.Errorf("read max_brightness for %s: %w", name, err)
		}
		max, err := strconv.Atoi(trimNewline(string(maxRaw)))
		if err != nil || max <= 0 {
			return nil, fmt.Errorf("bad max_brightness for %s: %q", name, maxRaw)
		}
		d.paths[i] = filepath.Join(base, "brightness")
		d.max[i] = max
	}
	return d, nil
}

// SetColor shows the given color.
func (d *SysfsDriver) SetColor(c logic.Color) error {
	channels := [3]uint8{c.R, c.G, c.B}
	for i, v := range channels {
		scaled := int(v) * d.max[i] / 255
		data := []byte(strconv.Itoa(scaled))
		if err := os.WriteFile(d.paths[i], data, 0644); err != nil {
			return fmt.Errorf("write brightness: %w", err)
		}
	}
	return nil
}

// Close turns the LED off.
func (d *SysfsDriver) Close() error {
	return d.SetColor(logic.Color{})
}

func trimNewline(s string) string {
	for len(s) > 0 && (s[len(s)-1] == '\n' || s[len(s)-1] == '\r') {
		s = s[:len(s)-1]
	}
	return s
}
