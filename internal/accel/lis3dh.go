//go:build linux

package accel

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// LIS3DH register map (the subset this driver touches).
const (
	regWhoAmI   = 0x0F
	regCtrl1    = 0x20
	regCtrl4    = 0x23
	regOutXL    = 0x28
	autoIncr    = 0x80 // set MSB of the register address for burst reads
	whoAmIValue = 0x33

	// CTRL_REG1: 100 Hz data rate, normal mode, X/Y/Z enabled.
	ctrl1Value = 0x57
	// CTRL_REG4: block data update, +/-2g, high resolution.
	ctrl4Value = 0x88
)

// At +/-2g in high-resolution mode the 12-bit reading is 1 mg/LSB.
const mgPerLSB = 1.0
const gravity = 9.80665

// i2cSlave is the I2C_SLAVE ioctl request on Linux.
const i2cSlave = 0x0703

// LIS3DH reads acceleration from an LIS3DH over the I2C character device.
type LIS3DH struct {
	f *os.File
}

// NewLIS3DH opens /dev/i2c-<bus>, binds the device address, verifies the
// chip identity, and configures 100 Hz sampling at +/-2g.
func NewLIS3DH(bus int, addr uint16) (*LIS3DH, error) {
	path := fmt.Sprintf("/dev/i2c-%d", bus)
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("open i2c bus: %w", err)
	}

	if err := unix.IoctlSetInt(int(f.Fd()), i2cSlave, int(addr)); err != nil {
		f.Close()
		return nil, fmt.Errorf("bind i2c address %#x: %w", addr, err)
	}

	d := &LIS3DH{f: f}

	id, err := d.readReg(regWhoAmI)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("read WHO_AM_I: %w", err)
	}
	if id != whoAmIValue {
		f.Close()
		return nil, fmt.Errorf("unexpected WHO_AM_I %#x (want %#x)", id, whoAmIValue)
	}

	if err := d.writeReg(regCtrl1, ctrl1Value); err != nil {
		f.Close()
		return nil, fmt.Errorf("configure CTRL_REG1: %w", err)
	}
	if err := d.writeReg(regCtrl4, ctrl4Value); err != nil {
		f.Close()
		return nil, fmt.Errorf("configure CTRL_REG4: %w", err)
	}

	return d, nil
}

// Read returns one sample in m/s^2.
func (d *LIS3DH) Read() (x, y, z float64, err error) {
	// Burst-read OUT_X_L..OUT_Z_H with the auto-increment bit set.
	if _, err := d.f.Write([]byte{regOutXL | autoIncr}); err != nil {
		return 0, 0, 0, fmt.Errorf("select OUT_X_L: %w", err)
	}
	buf := make([]byte, 6)
	if _, err := d.f.Read(buf); err != nil {
		return 0, 0, 0, fmt.Errorf("read sample: %w", err)
	}

	x = countsToMS2(buf[0], buf[1])
	y = countsToMS2(buf[2], buf[3])
	z = countsToMS2(buf[4], buf[5])
	return x, y, z, nil
}

// Close releases the bus file descriptor.
func (d *LIS3DH) Close() error {
	return d.f.Close()
}

func (d *LIS3DH) readReg(reg byte) (byte, error) {
	if _, err := d.f.Write([]byte{reg}); err != nil {
		return 0, err
	}
	buf := make([]byte, 1)
	if _, err := d.f.Read(buf); err != nil {
		return 0, err
	}
	return buf[0], nil
}

func (d *LIS3DH) writeReg(reg, val byte) error {
	_, err := d.f.Write([]byte{reg, val})
	return err
}

// countsToMS2 converts a left-justified 12-bit little-endian reading to
// m/s^2.
func countsToMS2(lo, hi byte) float64 {
	raw := int16(uint16(hi)<<8 | uint16(lo))
	counts := raw >> 4
	return float64(counts) * mgPerLSB / 1000 * gravity
}
