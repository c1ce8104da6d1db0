package serial

import (
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig("/dev/ttyACM0")
	if cfg.Baud != 250000 || cfg.ReadTimeout != 100*time.Millisecond || cfg.Device != "/dev/ttyACM0" {
		t.Errorf("DefaultConfig = %+v", cfg)
	}
}

func TestOpenWithoutDevice(t *testing.T) {
	if _, err := Open(Config{}); err == nil {
		t.Error("Open accepted an empty device")
	}
}

func TestOpenMissingDevice(t *testing.T) {
	if _, err := Open(DefaultConfig("/dev/this-port-does-not-exist")); err == nil {
		t.Error("Open succeeded on a missing device")
	}
}
