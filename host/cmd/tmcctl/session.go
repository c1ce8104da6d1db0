package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/shlex"

	"tmc5130/driver"
	"tmc5130/preset"
	"tmc5130/reg"
)

var errQuit = errors.New("quit")

// session runs commands against one driver. m caches the last known word of
// every register, which is the base for field writes to registers that
// cannot be read back.
type session struct {
	d   *driver.Driver
	m   *reg.Map
	out io.Writer
}

func newSession(d *driver.Driver, out io.Writer) *session {
	return &session{d: d, m: reg.NewMap(), out: out}
}

func printHelp(w io.Writer) {
	fmt.Fprintln(w, "commands:")
	fmt.Fprintln(w, "  read NAME...                  read registers and decode their fields")
	fmt.Fprintln(w, "  write NAME 0xWORD             write a raw word")
	fmt.Fprintln(w, "  write NAME field=value...     change fields, keeping the others")
	fmt.Fprintln(w, "  dump [FILE]                   read every readable register, optionally save a preset")
	fmt.Fprintln(w, "  apply FILE                    write a .json or .toml preset")
	fmt.Fprintln(w, "  list                          list registers")
	fmt.Fprintln(w, "  shell                         interactive prompt")
}

func (s *session) run(args []string) error {
	if len(args) == 0 {
		return nil
	}
	cmd, args := args[0], args[1:]
	switch cmd {
	case "read":
		return s.read(args)
	case "write":
		return s.write(args)
	case "dump":
		return s.dump(args)
	case "apply":
		return s.apply(args)
	case "list":
		return s.list()
	case "help", "?":
		printHelp(s.out)
		return nil
	case "quit", "exit", "q":
		return errQuit
	}
	return fmt.Errorf("unknown command %q (try help)", cmd)
}

// shell reads commands line by line until EOF or quit. Errors are printed
// and do not stop the loop.
func (s *session) shell(in io.Reader) error {
	sc := bufio.NewScanner(in)
	for {
		fmt.Fprint(s.out, "tmc> ")
		if !sc.Scan() {
			fmt.Fprintln(s.out)
			return sc.Err()
		}
		args, err := shlex.Split(sc.Text())
		if err != nil {
			fmt.Fprintf(s.out, "error: %v\n", err)
			continue
		}
		if len(args) > 0 && args[0] == "shell" {
			continue
		}
		switch err := s.run(args); {
		case errors.Is(err, errQuit):
			return nil
		case err != nil:
			fmt.Fprintf(s.out, "error: %v\n", err)
		}
	}
}

// lookup resolves a register by name or by address, e.g. 0x6c.
func lookup(name string) (reg.Address, error) {
	if v, err := strconv.ParseUint(name, 0, 8); err == nil {
		return reg.ParseAddress(uint8(v))
	}
	return reg.LookupName(name)
}

func (s *session) read(names []string) error {
	if len(names) == 0 {
		return fmt.Errorf("read: no register given")
	}
	for _, n := range names {
		a, err := lookup(n)
		if err != nil {
			return err
		}
		if !a.Readable() {
			return fmt.Errorf("%s is write-only", a)
		}
		status, st, err := s.d.ReadState(a)
		if err != nil {
			return err
		}
		if err := s.m.SetState(st); err != nil {
			return err
		}
		fmt.Fprintf(s.out, "[%s] %s\n", status, st)
	}
	return nil
}

func (s *session) write(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("write: want NAME 0xWORD or NAME field=value...")
	}
	a, err := lookup(args[0])
	if err != nil {
		return err
	}
	if !a.Writable() {
		return fmt.Errorf("%s: %w", a, preset.ErrNotWritable)
	}
	d, _ := reg.Describe(a)

	var word uint32
	if len(args) == 2 && !strings.Contains(args[1], "=") {
		v, err := strconv.ParseUint(args[1], 0, 32)
		if err != nil {
			return fmt.Errorf("bad word %q: %w", args[1], err)
		}
		word = uint32(v)
	} else {
		values := make(map[string]int64, len(args)-1)
		for _, kv := range args[1:] {
			k, v, ok := strings.Cut(kv, "=")
			if !ok {
				return fmt.Errorf("bad field assignment %q", kv)
			}
			n, err := strconv.ParseInt(v, 0, 64)
			if err != nil {
				return fmt.Errorf("bad value for %s: %w", k, err)
			}
			values[k] = n
		}
		base, err := s.current(a)
		if err != nil {
			return err
		}
		if word, err = d.Encode(base, values); err != nil {
			return err
		}
	}

	st := reg.FromAddrAndData(a, word)
	status, err := s.d.WriteState(st)
	if err != nil {
		return err
	}
	if err := s.m.SetState(st); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "[%s] %s\n", status, st)
	return nil
}

// current reads a back from the chip when it can, else returns the cached word.
func (s *session) current(a reg.Address) (uint32, error) {
	if !a.Readable() {
		return s.m.State(a).Word(), nil
	}
	_, st, err := s.d.ReadState(a)
	if err != nil {
		return 0, err
	}
	return st.Word(), nil
}

func (s *session) dump(args []string) error {
	status, err := s.d.Refresh(s.m)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "status %s\n", status)
	for _, a := range reg.All {
		if a.Readable() {
			fmt.Fprintf(s.out, "0x%02x %s\n", uint8(a), s.m.State(a))
		}
	}
	if len(args) > 0 {
		p := preset.Capture("dump", s.m)
		if err := p.Save(args[0]); err != nil {
			return err
		}
		fmt.Fprintf(s.out, "saved %d registers to %s\n", len(p.Registers), args[0])
	}
	return nil
}

func (s *session) apply(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("apply: want one preset file")
	}
	p, err := preset.Load(args[0])
	if err != nil {
		return err
	}
	states, err := p.States()
	if err != nil {
		return err
	}
	status, err := p.Apply(s.d)
	if err != nil {
		return err
	}
	for _, st := range states {
		if err := s.m.SetState(st); err != nil {
			return err
		}
	}
	fmt.Fprintf(s.out, "[%s] wrote %d registers\n", status, len(states))
	return nil
}

func (s *session) list() error {
	for _, a := range reg.All {
		d, _ := reg.Describe(a)
		fmt.Fprintf(s.out, "0x%02x %-12s %-2s %d fields\n", uint8(a), d.Name, d.Access, len(d.Fields))
	}
	return nil
}
