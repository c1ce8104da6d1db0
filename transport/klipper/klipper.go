// Package klipper reaches the chip through the SPI bus of a Klipper
// compatible MCU. Each transaction becomes one spi_transfer command, answered
// by spi_transfer_response.
package klipper

import (
	"fmt"

	logger "github.com/d2r2/go-logger"

	"tmc5130/host/mcu"
)

var lg = logger.NewPackageLogger("klipper", logger.InfoLevel)

// Config selects the MCU SPI device.
type Config struct {
	// OID is the object id used for the SPI device.
	OID uint8
	// Configure sends allocate_oids, config_spi, spi_set_bus and
	// finalize_config. Leave it off when the MCU is already configured.
	Configure    bool
	Bus          uint32
	Pin          uint32
	CSActiveHigh bool
	Mode         uint8
	Rate         uint32
}

// DefaultConfig uses SPI mode 3 at 4 MHz, which the TMC5130 supports.
func DefaultConfig() Config {
	return Config{
		Configure: true,
		Mode:      3,
		Rate:      4000000,
	}
}

// Bridge is a driver.Transport over an MCU connection.
type Bridge struct {
	mcu      *mcu.MCU
	cfg      Config
	transfer mcu.Format
	response mcu.Format
	tx       []byte
}

// New prepares a bridge on m, identifying the MCU first if needed.
func New(m *mcu.MCU, cfg Config) (*Bridge, error) {
	if m.Dictionary() == nil {
		if _, err := m.Identify(); err != nil {
			return nil, err
		}
	}
	transfer, response, err := m.Lookup("spi_transfer", "spi_transfer_response")
	if err != nil {
		return nil, err
	}
	b := &Bridge{mcu: m, cfg: cfg, transfer: transfer, response: response}
	if cfg.Configure {
		if err := b.configure(); err != nil {
			return nil, fmt.Errorf("configure spi oid %d: %w", cfg.OID, err)
		}
	}
	return b, nil
}

func (b *Bridge) configure() error {
	c := b.cfg
	steps := []struct {
		name string
		args []interface{}
	}{
		{"allocate_oids", []interface{}{c.OID + 1}},
		{"config_spi", []interface{}{c.OID, c.Pin, c.CSActiveHigh}},
		{"spi_set_bus", []interface{}{c.OID, c.Bus, c.Mode, c.Rate}},
		{"finalize_config", []interface{}{uint32(0)}},
	}
	for _, s := range steps {
		if err := b.mcu.Send(s.name, s.args...); err != nil {
			return err
		}
	}
	lg.Infof("spi oid %d on bus %d, mode %d, %d Hz", c.OID, c.Bus, c.Mode, c.Rate)
	return nil
}

// Transaction implements driver.Transport.
func (b *Bridge) Transaction(bufs ...[]byte) error {
	b.tx = b.tx[:0]
	for _, buf := range bufs {
		b.tx = append(b.tx, buf...)
	}
	oid := int64(b.cfg.OID)
	vals, err := b.mcu.Call(b.transfer, b.response, func(v []interface{}) bool {
		return v[0].(int64) == oid
	}, b.cfg.OID, b.tx)
	if err != nil {
		return err
	}
	rx := vals[1].([]byte)
	if len(rx) != len(b.tx) {
		return fmt.Errorf("spi_transfer: %d bytes back for %d sent", len(rx), len(b.tx))
	}
	for _, buf := range bufs {
		rx = rx[copy(buf, rx):]
	}
	return nil
}
