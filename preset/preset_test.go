package preset

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"tmc5130/driver"
	"tmc5130/reg"
	"tmc5130/transport/fake"
)

const tomlPreset = `
name = "quiet"

[[registers]]
register = "GCONF"
value = 0x4

[[registers]]
register = "ihold_irun"
fields = { ihold = 10, irun = 31, ihold_delay = 6 }

[[registers]]
register = "CHOPCONF"
value = "0x00010000"
fields = { toff = 3, hstrt = 4, hend = 1 }
`

const jsonPreset = `{
  "name": "quiet",
  "registers": [
    {"register": "GCONF", "value": 4},
    {"register": "ihold_irun", "fields": {"ihold": 10, "irun": 31, "ihold_delay": 6}},
    {"register": "CHOPCONF", "value": "0x00010000", "fields": {"toff": 3, "hstrt": 4, "hend": 1}}
  ]
}`

func wantStates() []reg.State {
	return []reg.State{
		reg.FromAddrAndData(reg.AddrGConf, 0x4),
		reg.FromAddrAndData(reg.AddrIHoldIRun, 0x00061F0A),
		reg.FromAddrAndData(reg.AddrChopConf, 0x000100C3),
	}
}

func TestParseFormats(t *testing.T) {
	for _, tc := range []struct {
		name   string
		data   string
		format Format
	}{
		{"toml", tomlPreset, TOML},
		{"json", jsonPreset, JSON},
	} {
		t.Run(tc.name, func(t *testing.T) {
			p, err := Parse([]byte(tc.data), tc.format)
			if err != nil {
				t.Fatal(err)
			}
			if p.Name != "quiet" {
				t.Errorf("name = %q", p.Name)
			}
			got, err := p.States()
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(wantStates(), got, cmp.AllowUnexported(reg.State{})); diff != "" {
				t.Errorf("states (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEntryErrors(t *testing.T) {
	w := Word(1)
	tests := []struct {
		entry Entry
		want  error
	}{
		{Entry{Register: "DRV_STATUS", Value: &w}, ErrNotWritable},
		{Entry{Register: "NOPE"}, reg.ErrUnknownAddress},
		{Entry{Register: "CHOPCONF", Fields: map[string]int64{"bogus": 1}}, reg.ErrUnknownField},
		{Entry{Register: "RAMP_STAT", Fields: map[string]int64{"status_stop_l": 1}}, reg.ErrReadOnlyField},
	}
	for _, tt := range tests {
		if _, err := tt.entry.State(); !errors.Is(err, tt.want) {
			t.Errorf("%s: err = %v, want %v", tt.entry.Register, err, tt.want)
		}
	}
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	if _, err := Parse([]byte(`{"registers": [], "extra": 1}`), JSON); err == nil {
		t.Error("JSON with unknown key accepted")
	}
	if _, err := Parse([]byte("extra = 1\n"), TOML); err == nil {
		t.Error("TOML with unknown key accepted")
	}
	if _, err := Parse([]byte(`{"registers": [{"register": "GCONF", "value": "zz"}]}`), JSON); err == nil {
		t.Error("bad word accepted")
	}
}

func TestApply(t *testing.T) {
	p, err := Parse([]byte(tomlPreset), TOML)
	if err != nil {
		t.Fatal(err)
	}
	chip := fake.NewChip()
	if _, err := p.Apply(driver.New(chip)); err != nil {
		t.Fatal(err)
	}
	if chip.Attempts() != 3 {
		t.Errorf("%d transactions, want one per register", chip.Attempts())
	}
	for _, s := range wantStates() {
		if got := chip.Regs.State(s.Addr()).Word(); got != s.Word() {
			t.Errorf("%s = %#x, want %#x", s.Addr(), got, s.Word())
		}
	}

	bad := &Preset{Registers: []Entry{{Register: "GCONF"}, {Register: "TSTEP"}}}
	chip = fake.NewChip()
	if _, err := bad.Apply(driver.New(chip)); !errors.Is(err, ErrNotWritable) {
		t.Errorf("err = %v, want ErrNotWritable", err)
	}
	if chip.Attempts() != 0 {
		t.Error("partial preset was sent")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	m := reg.NewMap()
	m.Set(reg.ChopConf(0x000100C3))
	m.Set(reg.VMax(51200))
	src := Capture("snap", m, reg.AddrChopConf, reg.AddrVMax, reg.AddrTStep)
	if len(src.Registers) != 2 {
		t.Fatalf("captured %d registers, want TSTEP skipped", len(src.Registers))
	}

	dir := t.TempDir()
	for _, name := range []string{"snap.json", "snap.toml"} {
		path := filepath.Join(dir, name)
		if err := src.Save(path); err != nil {
			t.Fatal(err)
		}
		got, err := Load(path)
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(src, got); diff != "" {
			t.Errorf("%s round trip (-want +got):\n%s", name, diff)
		}
	}
	data, _ := os.ReadFile(filepath.Join(dir, "snap.toml"))
	if !strings.Contains(string(data), `value = "0x000100c3"`) {
		t.Errorf("TOML output:\n%s", data)
	}
}

func TestCaptureAll(t *testing.T) {
	p := Capture("all", reg.NewMap())
	for _, e := range p.Registers {
		a, _ := reg.LookupName(e.Register)
		if !a.Readable() || !a.Writable() {
			t.Errorf("captured %s", e.Register)
		}
	}
	if len(p.Registers) == 0 {
		t.Error("nothing captured")
	}
	for _, e := range p.Registers {
		switch e.Register {
		case "GSTAT", "XACTUAL", "RAMP_STAT", "X_ENC", "ENC_STATUS":
			t.Errorf("captured position or flag register %s", e.Register)
		}
	}
	explicit := Capture("xactual", reg.NewMap(), reg.AddrXActual)
	if len(explicit.Registers) != 1 {
		t.Errorf("explicit capture of XACTUAL kept %d registers", len(explicit.Registers))
	}
}

func TestFormatOf(t *testing.T) {
	if f, err := FormatOf("a/b.TOML"); err != nil || f != TOML {
		t.Errorf("FormatOf(.TOML) = %v, %v", f, err)
	}
	if _, err := FormatOf("x.yaml"); err == nil {
		t.Error("yaml accepted")
	}
}
