// Command regen writes zz_registers.go for package reg.
//
// The register table below is the only place a register is declared. The
// address constants, All, the descriptor catalog and every typed register
// with its field accessors are generated from it, so they cannot drift apart.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"log"
	"os"
	"strings"
)

type field struct {
	name     string
	offset   uint
	width    uint
	signed   bool
	readOnly bool
}

func bit(name string, offset uint) field { return field{name: name, offset: offset, width: 1} }

func bits(name string, offset, width uint) field {
	return field{name: name, offset: offset, width: width}
}

func sbits(name string, offset, width uint) field {
	return field{name: name, offset: offset, width: width, signed: true}
}

// value is a field spanning the low bits of a single-quantity register.
func value(width uint) field  { return bits("value", 0, width) }
func svalue(width uint) field { return sbits("value", 0, width) }

func ro(f field) field {
	f.readOnly = true
	return f
}

type register struct {
	access string // R, W or RW
	addr   uint8
	name   string // datasheet name
	goName string
	def    uint32 // documented reset value
	fields []field
}

// TMC5130 datasheet, section 6. Encoder block added at 0x38-0x3C.
var registers = []register{
	{"RW", 0x00, "GCONF", "GConf", 0x00000041, []field{
		bit("i_scale_analog", 0),
		bit("internal_rsense", 1),
		bit("en_spread_cycle", 2),
		bit("enc_commutation", 3),
		bit("shaft", 4),
		bit("diag0_error", 5),
		bit("diag0_otpw", 6),
		bit("diag0_stall_step", 7),
		bit("diag1_stall_dir", 8),
		bit("diag1_index", 9),
		bit("diag1_onstate", 10),
		bit("diag1_steps_skipped", 11),
		bit("diag0_int_pushpull", 12),
		bit("diag1_poscomp_pushpull", 13),
		bit("small_hysteresis", 14),
		bit("stop_enable", 15),
		bit("direct_mode", 16),
		bit("test_mode", 17),
	}},
	{"RW", 0x01, "GSTAT", "GStat", 0x00000000, []field{
		ro(bit("reset", 0)),
		ro(bit("drv_err", 1)),
		ro(bit("uv_cp", 2)),
	}},
	{"R", 0x02, "IFCNT", "IfCnt", 0x00000000, []field{
		value(32),
	}},
	{"W", 0x03, "SLAVECONF", "SlaveConf", 0x00000000, []field{
		bits("slaveaddr", 0, 8),
		bits("senddelay", 8, 4),
	}},
	{"R", 0x04, "IOIN", "IOIn", 0x00000000, []field{
		bit("refl_step", 0),
		bit("refr_dir", 1),
		bit("encb_dcen_cfg4", 2),
		bit("enca_dcen_cfg5", 3),
		bit("drv_enn_cfg6", 4),
		bit("enc_n_dco", 5),
		bit("sd_mode", 6),
		bit("swcomp_in", 7),
		bits("version", 24, 8),
	}},
	{"W", 0x05, "X_COMPARE", "XCompare", 0x00000000, []field{
		value(32),
	}},
	{"W", 0x10, "IHOLD_IRUN", "IHoldIRun", 0x00001F00, []field{
		bits("ihold", 0, 5),
		bits("irun", 8, 5),
		bits("ihold_delay", 16, 4),
	}},
	{"W", 0x11, "TPOWERDOWN", "TPowerDown", 0x00000000, []field{
		value(8),
	}},
	{"R", 0x12, "TSTEP", "TStep", 0x00000000, []field{
		value(20),
	}},
	{"W", 0x13, "TPWMTHRS", "TPwmThrs", 0x00000000, []field{
		value(20),
	}},
	{"W", 0x14, "TCOOLTHRS", "TCoolThrs", 0x00000000, []field{
		value(20),
	}},
	{"W", 0x15, "THIGH", "THigh", 0x00000000, []field{
		value(20),
	}},
	{"RW", 0x20, "RAMPMODE", "RampMode", 0x00000000, []field{
		value(2),
	}},
	{"RW", 0x21, "XACTUAL", "XActual", 0x00000000, []field{
		svalue(32),
	}},
	{"R", 0x22, "VACTUAL", "VActual", 0x00000000, []field{
		svalue(24),
	}},
	{"W", 0x23, "VSTART", "VStart", 0x00000000, []field{
		value(18),
	}},
	{"W", 0x24, "A1", "A1", 0x00000000, []field{
		value(16),
	}},
	{"W", 0x25, "V1", "V1", 0x00000000, []field{
		value(20),
	}},
	{"W", 0x26, "AMAX", "AMax", 0x00000000, []field{
		value(16),
	}},
	{"W", 0x27, "VMAX", "VMax", 0x00000000, []field{
		value(23),
	}},
	{"W", 0x28, "DMAX", "DMax", 0x00000000, []field{
		value(16),
	}},
	{"W", 0x2A, "D1", "D1", 0x00000000, []field{
		value(16),
	}},
	{"W", 0x2B, "VSTOP", "VStop", 0x00000000, []field{
		value(18),
	}},
	{"W", 0x2C, "TZEROWAIT", "TZeroWait", 0x00000000, []field{
		value(16),
	}},
	{"RW", 0x2D, "XTARGET", "XTarget", 0x00000000, []field{
		svalue(32),
	}},
	{"W", 0x33, "VDCMIN", "VDcMin", 0x00000000, []field{
		value(23),
	}},
	{"RW", 0x34, "SW_MODE", "SwMode", 0x00000000, []field{
		bit("stop_l_enable", 0),
		bit("stop_r_enable", 1),
		bit("pol_stop_l", 2),
		bit("pol_stop_r", 3),
		bit("swap_lr", 4),
		bit("latch_l_active", 5),
		bit("latch_l_inactive", 6),
		bit("latch_r_active", 7),
		bit("latch_r_inactive", 8),
		bit("en_latch_encoder", 9),
		bit("sg_stop", 10),
		bit("en_softstop", 11),
	}},
	{"RW", 0x35, "RAMP_STAT", "RampStat", 0x00000000, []field{
		ro(bit("status_stop_l", 0)),
		ro(bit("status_stop_r", 1)),
		bit("status_latch_l", 2),
		bit("status_latch_r", 3),
		ro(bit("event_stop_l", 4)),
		ro(bit("event_stop_r", 5)),
		bit("event_stop_sg", 6),
		bit("event_pos_reached", 7),
		ro(bit("velocity_reached", 8)),
		ro(bit("position_reached", 9)),
		ro(bit("vzero", 10)),
		ro(bit("t_zerowait_active", 11)),
		bit("second_move", 12),
		ro(bit("status_sg", 13)),
	}},
	{"R", 0x36, "XLATCH", "XLatch", 0x00000000, []field{
		value(32),
	}},
	{"RW", 0x38, "ENCMODE", "EncMode", 0x00000000, []field{
		bit("pol_a", 0),
		bit("pol_b", 1),
		bit("pol_n", 2),
		bit("ignore_ab", 3),
		bit("clr_cont", 4),
		bit("clr_once", 5),
		bit("pos_edge", 6),
		bit("neg_edge", 7),
		bit("clr_enc_x", 8),
		bit("latch_x_act", 9),
		bit("enc_sel_decimal", 10),
	}},
	{"RW", 0x39, "X_ENC", "XEnc", 0x00000000, []field{
		svalue(32),
	}},
	{"W", 0x3A, "ENC_CONST", "EncConst", 0x00000000, []field{
		value(32),
	}},
	{"RW", 0x3B, "ENC_STATUS", "EncStatus", 0x00000000, []field{
		bit("n_event", 0),
	}},
	{"R", 0x3C, "ENC_LATCH", "EncLatch", 0x00000000, []field{
		value(32),
	}},
	{"W", 0x60, "MSLUT0", "MsLut0", 0x00000000, []field{
		value(32),
	}},
	{"W", 0x61, "MSLUT1", "MsLut1", 0x00000000, []field{
		value(32),
	}},
	{"W", 0x62, "MSLUT2", "MsLut2", 0x00000000, []field{
		value(32),
	}},
	{"W", 0x63, "MSLUT3", "MsLut3", 0x00000000, []field{
		value(32),
	}},
	{"W", 0x64, "MSLUT4", "MsLut4", 0x00000000, []field{
		value(32),
	}},
	{"W", 0x65, "MSLUT5", "MsLut5", 0x00000000, []field{
		value(32),
	}},
	{"W", 0x66, "MSLUT6", "MsLut6", 0x00000000, []field{
		value(32),
	}},
	{"W", 0x67, "MSLUT7", "MsLut7", 0x00000000, []field{
		value(32),
	}},
	{"W", 0x68, "MSLUTSEL", "MsLutSel", 0x00000000, []field{
		bits("w0", 0, 2),
		bits("w1", 2, 2),
		bits("w2", 4, 2),
		bits("w3", 6, 2),
		bits("x1", 8, 8),
		bits("x2", 16, 8),
		bits("x3", 24, 8),
	}},
	{"W", 0x69, "MSLUTSTART", "MsLutStart", 0x00000000, []field{
		bits("start_sin", 0, 8),
		bits("start_sin90", 16, 8),
	}},
	{"R", 0x6A, "MSCNT", "MsCnt", 0x00000000, []field{
		value(10),
	}},
	{"R", 0x6B, "MSCURACT", "MsCurAct", 0x00000000, []field{
		sbits("cur_a", 0, 9),
		sbits("cur_b", 16, 9),
	}},
	{"RW", 0x6C, "CHOPCONF", "ChopConf", 0x00000000, []field{
		bits("toff", 0, 4),
		bits("hstrt", 4, 3),
		bits("hend", 7, 4),
		bit("fd3", 11),
		bit("disfdcc", 12),
		bit("rndtf", 13),
		bit("chm", 14),
		bits("tbl", 15, 2),
		bit("vsense", 17),
		bit("vhighfs", 18),
		bit("vhighchm", 19),
		bits("sync", 20, 4),
		bits("mres", 24, 4),
		bit("intpol", 28),
		bit("dedge", 29),
		bit("diss2g", 30),
	}},
	{"W", 0x6D, "COOLCONF", "CoolConf", 0x00000000, []field{
		bits("semin", 0, 4),
		bits("seup", 5, 2),
		bits("semax", 8, 4),
		bits("sedn", 13, 2),
		bit("seimin", 15),
		sbits("sgt", 16, 7),
		bit("sfilt", 24),
	}},
	{"W", 0x6E, "DCCTRL", "DcCtrl", 0x00000000, []field{
		bits("dc_time", 0, 10),
		bits("dc_sg", 16, 8),
	}},
	{"R", 0x6F, "DRV_STATUS", "DrvStatus", 0x00000000, []field{
		bits("sg_result", 0, 10),
		bit("fsactive", 15),
		bits("cs_actual", 16, 5),
		bit("stallguard", 24),
		bit("ot", 25),
		bit("otpw", 26),
		bit("s2ga", 27),
		bit("s2gb", 28),
		bit("ola", 29),
		bit("olb", 30),
		bit("stst", 31),
	}},
	{"W", 0x70, "PWMCONF", "PwmConf", 0xC10D0024, []field{
		bits("pwm_ampl", 0, 8),
		bits("pwm_grad", 8, 8),
		bits("pwm_freq", 16, 2),
		bit("pwm_autoscale", 18),
		bit("pwm_symmetric", 19),
		bits("freewheel", 20, 2),
	}},
	{"R", 0x71, "PWM_SCALE", "PwmScale", 0x00000000, []field{
		value(8),
	}},
	{"W", 0x72, "ENCM_CTRL", "EncmCtrl", 0x00000000, []field{
		bit("inv", 0),
		bit("maxspeed", 1),
	}},
	{"R", 0x73, "LOST_STEPS", "LostSteps", 0x00000000, []field{
		value(20),
	}},
}

func main() {
	out := flag.String("o", "zz_registers.go", "output file")
	flag.Parse()

	var b bytes.Buffer
	generate(&b)

	src, err := format.Source(b.Bytes())
	if err != nil {
		log.Fatalf("regen: formatting output: %v", err)
	}
	if err := os.WriteFile(*out, src, 0o644); err != nil {
		log.Fatalf("regen: %v", err)
	}
}

var accessConst = map[string]string{"R": "ReadOnly", "W": "WriteOnly", "RW": "ReadWrite"}
var accessDoc = map[string]string{"R": "read-only", "W": "write-only", "RW": "read/write"}

func generate(b *bytes.Buffer) {
	p := func(format string, args ...any) { fmt.Fprintf(b, format, args...) }

	p("// Code generated by regen; DO NOT EDIT.\n\npackage reg\n\n")

	p("// Register addresses, one per catalog entry.\nconst (\n")
	for _, r := range registers {
		p("\tAddr%s Address = 0x%02X\n", r.goName, r.addr)
	}
	p(")\n\n")

	p("// Count is the number of registers in the catalog.\nconst Count = %d\n\n", len(registers))

	p("// All lists every register address in catalog order.\nvar All = [Count]Address{\n")
	for _, r := range registers {
		p("\tAddr%s,\n", r.goName)
	}
	p("}\n\n")

	p("var catalog = [Count]Descriptor{\n")
	for _, r := range registers {
		p("\t{Addr: Addr%s, Name: %q, Access: %s, Default: 0x%08X, Fields: []Field{\n",
			r.goName, r.name, accessConst[r.access], r.def)
		for _, f := range r.fields {
			lit := fmt.Sprintf("Name: %q, Offset: %d, Width: %d", f.name, f.offset, f.width)
			if f.signed {
				lit += ", Signed: true"
			}
			if r.fieldReadOnly(f) {
				lit += ", ReadOnly: true"
			}
			p("\t\t{%s},\n", lit)
		}
		p("\t}},\n")
	}
	p("}\n")

	p("\n// Register returns the state as its concrete register type, or nil for an\n// address outside the catalog.\nfunc (s State) Register() Register {\n\tswitch s.addr {\n")
	for _, r := range registers {
		p("\tcase Addr%s:\n\t\treturn %s(s.word)\n", r.goName, r.goName)
	}
	p("\t}\n\treturn nil\n}\n")

	for _, r := range registers {
		r.generate(p)
	}
}

func (r register) fieldReadOnly(f field) bool { return f.readOnly || r.access == "R" }

func (r register) generate(p func(string, ...any)) {
	t := r.goName
	p("\n// %s is the %s register at 0x%02X (%s).\ntype %s uint32\n", t, r.name, r.addr, accessDoc[r.access], t)
	p("\n// Addr returns Addr%s.\nfunc (%s) Addr() Address { return Addr%s }\n", t, t, t)
	p("\n// Word returns the raw register word.\nfunc (r %s) Word() uint32 { return uint32(r) }\n", t)
	p("\n")
	if strings.Contains(r.access, "R") {
		p("func (%s) readable() {}\n", t)
	}
	if strings.Contains(r.access, "W") {
		p("func (%s) writable() {}\n", t)
	}

	for _, f := range r.fields {
		m, typ := camel(f.name), f.goType()

		get := fmt.Sprintf("bits(uint32(r), %d, %d)", f.offset, f.width)
		var expr string
		switch {
		case typ == "bool":
			expr = get + " != 0"
		case f.signed:
			expr = fmt.Sprintf("signExtend(%s, %d)", get, f.width)
			if typ != "int32" {
				expr = fmt.Sprintf("%s(%s)", typ, expr)
			}
		case typ == "uint32":
			expr = get
		default:
			expr = fmt.Sprintf("%s(%s)", typ, get)
		}
		p("\n// %s returns %s.\nfunc (r %s) %s() %s { return %s }\n", m, f.where(), t, m, typ, expr)

		if r.fieldReadOnly(f) {
			continue
		}
		arg := "uint32(v)"
		switch typ {
		case "bool":
			arg = "boolBit(v)"
		case "uint32":
			arg = "v"
		}
		p("\n// Set%s sets %s.\nfunc (r *%s) Set%s(v %s) { *r = %s(withBits(uint32(*r), %d, %d, %s)) }\n",
			m, f.where(), t, m, typ, t, f.offset, f.width, arg)
	}
}

func (f field) goType() string {
	switch {
	case f.width == 1 && !f.signed:
		return "bool"
	case f.signed && f.width <= 8:
		return "int8"
	case f.signed && f.width <= 16:
		return "int16"
	case f.signed:
		return "int32"
	case f.width <= 8:
		return "uint8"
	case f.width <= 16:
		return "uint16"
	}
	return "uint32"
}

func (f field) where() string {
	if f.width == 1 {
		return fmt.Sprintf("%s (bit %d)", f.name, f.offset)
	}
	signed := ""
	if f.signed {
		signed = ", signed"
	}
	return fmt.Sprintf("%s (bits %d-%d%s)", f.name, f.offset, f.offset+f.width-1, signed)
}

// camel turns a datasheet field name into an exported Go identifier.
func camel(s string) string {
	parts := strings.Split(s, "_")
	for i, part := range parts {
		if part != "" {
			parts[i] = strings.ToUpper(part[:1]) + part[1:]
		}
	}
	return strings.Join(parts, "")
}
