package main

import (
	"fmt"

	"tmc5130/driver"
	"tmc5130/host/mcu"
	"tmc5130/host/serial"
	"tmc5130/protocol"
	"tmc5130/transport/fake"
	"tmc5130/transport/klipper"
	"tmc5130/transport/rpiospi"
)

func openBackend(name string) (driver.Transport, func(), error) {
	switch name {
	case "sim":
		return fake.NewChip(), func() {}, nil

	case "rpio":
		cfg := rpiospi.DefaultConfig()
		cfg.Bus = int(*spiBus)
		cfg.ChipSelect = uint8(*spiCS)
		cfg.SpeedHz = *spiSpeed
		dev, err := rpiospi.Open(cfg)
		if err != nil {
			return nil, nil, err
		}
		return dev, func() { dev.Close() }, nil

	case "klipper":
		scfg := serial.DefaultConfig(*device)
		scfg.Baud = *baud
		port, err := serial.Open(scfg)
		if err != nil {
			return nil, nil, err
		}
		m := mcu.New(port, protocol.DefaultLinkConfig())
		cfg := klipper.DefaultConfig()
		cfg.OID = uint8(*oid)
		cfg.Bus = uint32(*spiBus)
		cfg.Pin = uint32(*spiCS)
		cfg.Rate = uint32(*spiSpeed)
		cfg.Configure = !*noConfigure
		b, err := klipper.New(m, cfg)
		if err != nil {
			port.Close()
			return nil, nil, err
		}
		return b, func() { port.Close() }, nil
	}
	return nil, nil, fmt.Errorf("unknown backend %q", name)
}
