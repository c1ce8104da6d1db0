// Package serial opens the host serial port an MCU is attached to.
package serial

import (
	"fmt"
	"time"

	"github.com/tarm/serial"
)

// Config holds serial port settings.
type Config struct {
	// Device path, e.g. /dev/ttyACM0 or COM3.
	Device string
	// Baud rate. USB CDC devices ignore it.
	Baud int
	// ReadTimeout bounds a single Read. Zero blocks.
	ReadTimeout time.Duration
}

// DefaultConfig returns the settings Klipper uses.
func DefaultConfig(device string) Config {
	return Config{
		Device:      device,
		Baud:        250000,
		ReadTimeout: 100 * time.Millisecond,
	}
}

// Port is an open serial port.
type Port struct {
	*serial.Port
	cfg Config
}

// Open opens the port described by cfg.
func Open(cfg Config) (*Port, error) {
	if cfg.Device == "" {
		return nil, fmt.Errorf("no serial device given")
	}
	p, err := serial.OpenPort(&serial.Config{
		Name:        cfg.Device,
		Baud:        cfg.Baud,
		ReadTimeout: cfg.ReadTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open serial port %s: %w", cfg.Device, err)
	}
	return &Port{Port: p, cfg: cfg}, nil
}

// Device returns the device path.
func (p *Port) Device() string { return p.cfg.Device }
