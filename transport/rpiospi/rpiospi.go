// Package rpiospi runs driver transactions on a Raspberry Pi SPI controller
// through go-rpio.
package rpiospi

import (
	"fmt"

	logger "github.com/d2r2/go-logger"
	rpio "github.com/stianeikeland/go-rpio/v4"
)

var lg = logger.NewPackageLogger("rpiospi", logger.InfoLevel)

// Config selects the controller and bus settings.
type Config struct {
	// Bus is the controller: 0 for SPI0, 1 and 2 for the auxiliary ones.
	Bus        int
	ChipSelect uint8
	SpeedHz    int
	// Mode is the SPI mode, 0 to 3.
	Mode uint8
}

// DefaultConfig returns SPI0, CE0, mode 3 at 4 MHz.
func DefaultConfig() Config {
	return Config{
		SpeedHz: 4000000,
		Mode:    3,
	}
}

// Device is an open SPI controller.
type Device struct {
	cfg      Config
	frame    []byte
	exchange func([]byte)
	end      func()
}

func spiDev(bus int) (rpio.SpiDev, error) {
	switch bus {
	case 0:
		return rpio.Spi0, nil
	case 1:
		return rpio.Spi1, nil
	case 2:
		return rpio.Spi2, nil
	}
	return rpio.Spi0, fmt.Errorf("no SPI controller %d", bus)
}

// Open maps the GPIO memory and claims the controller's pins.
func Open(cfg Config) (*Device, error) {
	if cfg.Mode > 3 {
		return nil, fmt.Errorf("invalid SPI mode %d", cfg.Mode)
	}
	dev, err := spiDev(cfg.Bus)
	if err != nil {
		return nil, err
	}
	if err := rpio.Open(); err != nil {
		return nil, fmt.Errorf("failed to open GPIO: %w", err)
	}
	if err := rpio.SpiBegin(dev); err != nil {
		rpio.Close()
		return nil, fmt.Errorf("failed to start SPI%d: %w", cfg.Bus, err)
	}
	rpio.SpiSpeed(cfg.SpeedHz)
	rpio.SpiChipSelect(cfg.ChipSelect)
	rpio.SpiMode(cfg.Mode>>1, cfg.Mode&1)
	lg.Infof("SPI%d CE%d mode %d at %d Hz", cfg.Bus, cfg.ChipSelect, cfg.Mode, cfg.SpeedHz)

	return newDevice(cfg, rpio.SpiExchange, func() {
		rpio.SpiEnd(dev)
		rpio.Close()
	}), nil
}

func newDevice(cfg Config, exchange func([]byte), end func()) *Device {
	return &Device{cfg: cfg, exchange: exchange, end: end}
}

// Transaction implements driver.Transport. The buffers go out as one
// exchange so chip select stays asserted between them.
func (d *Device) Transaction(bufs ...[]byte) error {
	if d.exchange == nil {
		return fmt.Errorf("rpiospi: device closed")
	}
	d.frame = d.frame[:0]
	for _, b := range bufs {
		d.frame = append(d.frame, b...)
	}
	d.exchange(d.frame)
	rx := d.frame
	for _, b := range bufs {
		rx = rx[copy(b, rx):]
	}
	return nil
}

// Close releases the controller and unmaps GPIO memory.
func (d *Device) Close() error {
	if d.end != nil {
		d.end()
	}
	d.exchange, d.end = nil, nil
	return nil
}
