// Command tmcctl reads and writes TMC5130 registers over a simulated chip,
// a Raspberry Pi SPI controller or a Klipper MCU.
//
//	tmcctl [flags] read NAME...
//	tmcctl [flags] write NAME 0xWORD | NAME field=value...
//	tmcctl [flags] dump [FILE]
//	tmcctl [flags] apply FILE
//	tmcctl [flags] list
//	tmcctl [flags] shell
package main

import (
	"flag"
	"fmt"
	"os"

	logger "github.com/d2r2/go-logger"

	"tmc5130/driver"
)

var (
	backend     = flag.String("backend", "sim", "Transport: sim, rpio or klipper")
	device      = flag.String("device", "/dev/ttyACM0", "Serial device of the Klipper MCU")
	baud        = flag.Int("baud", 250000, "Baud rate (ignored for USB CDC)")
	oid         = flag.Uint("oid", 0, "Klipper SPI object id")
	spiBus      = flag.Uint("spi-bus", 0, "SPI bus number")
	spiCS       = flag.Uint("spi-cs", 0, "Chip select (rpio) or CS pin (klipper)")
	spiSpeed    = flag.Int("spi-speed", 4000000, "SPI clock in Hz")
	noConfigure = flag.Bool("no-configure", false, "Skip Klipper SPI configuration")
	verbose     = flag.Bool("verbose", false, "Log every SPI transaction")
)

var packages = []string{"driver", "protocol", "mcu", "klipper", "rpiospi"}

func main() {
	flag.Usage = usage
	flag.Parse()
	os.Exit(run())
}

func run() int {
	defer logger.FinalizeLogger()
	if *verbose {
		for _, p := range packages {
			logger.ChangePackageLogLevel(p, logger.DebugLevel)
		}
	}
	if flag.NArg() == 0 {
		usage()
		return 2
	}

	t, closer, err := openBackend(*backend)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer closer()

	s := newSession(driver.New(t), os.Stdout)
	if flag.Arg(0) == "shell" {
		err = s.shell(os.Stdin)
	} else {
		err = s.run(flag.Args())
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: %s [flags] command [args]\n\n", os.Args[0])
	printHelp(os.Stderr)
	fmt.Fprintln(os.Stderr, "\nflags:")
	flag.PrintDefaults()
}
