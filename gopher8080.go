// This file is part of Gopher8080.
//
// Gopher8080 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8080 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8080.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/gopher8080/curated"
	"github.com/jetsetilly/gopher8080/debugger"
	"github.com/jetsetilly/gopher8080/debugger/terminal"
	"github.com/jetsetilly/gopher8080/debugger/terminal/colorterm"
	"github.com/jetsetilly/gopher8080/debugger/terminal/plainterm"
	"github.com/jetsetilly/gopher8080/disassembly"
	"github.com/jetsetilly/gopher8080/hardware"
	"github.com/jetsetilly/gopher8080/hardware/instance"
	"github.com/jetsetilly/gopher8080/hardware/memory"
	"github.com/jetsetilly/gopher8080/logger"
	"github.com/jetsetilly/gopher8080/modalflag"
	"github.com/jetsetilly/gopher8080/paths"
	"github.com/jetsetilly/gopher8080/performance"
	"github.com/jetsetilly/gopher8080/performance/limiter"
	"github.com/jetsetilly/gopher8080/prefs"
	"github.com/jetsetilly/gopher8080/statsview"
	"github.com/jetsetilly/gopher8080/version"
	"github.com/jetsetilly/gopher8080/wavwriter"
)

const defaultRunCycles = 1000000

// number of times per second the emulation is paced against the wall clock
// when running in real time
const pacingRate = 100

func main() {
	os.Exit(launch(os.Args[1:], os.Stdout))
}

// launch the mode selected by the command line arguments. returns the exit
// code for the program.
func launch(args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "MONITOR", "DISASM", "PERFORMANCE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0
	case modalflag.ParseError:
		fmt.Fprintf(output, "* %s\n", err)
		return 10
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, output)
	case "MONITOR":
		err = monitor(md, output)
	case "DISASM":
		err = disasm(md, output)
	case "PERFORMANCE":
		err = perform(md, output)
	case "VERSION":
		err = showVersion(md, output)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md, err)
		return 20
	}

	return 0
}

// flags common to every mode that creates a machine
type machineFlags struct {
	at        *string
	log       *bool
	prefs     *string
	statsview *bool
}

func addMachineFlags(md *modalflag.Modes) machineFlags {
	f := machineFlags{
		at:    md.AddString("at", "", "load address. HEX files are relocated if this is given"),
		log:   md.AddBool("log", false, "echo debugging log to stdout"),
		prefs: md.AddString("prefs", "", "preferences for this session. eg. \"machine.clock::4000000\""),
	}
	if statsview.Available() {
		f.statsview = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}
	return f
}

// createMachine with the preferences and ambient services requested by the
// command line. the named file is loaded if filename is not empty.
func createMachine(flags machineFlags, filename string, output io.Writer) (*hardware.Machine, memory.Info, error) {
	var inf memory.Info

	dest := -1
	if *flags.at != "" {
		a, err := modalflag.ParseAddress(*flags.at)
		if err != nil {
			return nil, inf, err
		}
		dest = int(a)
	}

	if *flags.log {
		logger.SetEcho(output)
	}

	if flags.statsview != nil && *flags.statsview {
		statsview.Launch(output)
	}

	prefs.PushCommandLineStack(*flags.prefs)
	defer func() {
		if s := prefs.PopCommandLineStack(); s != "" {
			logger.Logf(logger.Allow, "gopher8080", "unused preferences: %s", s)
		}
	}()

	ins, err := instance.NewInstance(instance.Main, nil)
	if err != nil {
		return nil, inf, err
	}

	m := hardware.NewMachine(ins)

	if filename != "" {
		inf, err = m.Load(filename, dest)
		if err != nil {
			return nil, inf, err
		}
	}

	return m, inf, nil
}

func run(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	flags := addMachineFlags(md)
	cycles := md.AddInt64("cycles", defaultRunCycles, "number of CPU cycles to run for")
	wav := md.AddString("wav", "", "record the counter 0 output to a WAV file. use AUTO for a generated filename")
	paced := md.AddBool("paced", false, "run at the speed of the clock preference rather than as fast as possible")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return curated.Errorf("one program file required")
	}
	filename := md.GetArg(0)

	if *cycles <= 0 {
		return curated.Errorf("cycles must be greater than zero")
	}

	m, _, err := createMachine(flags, filename, output)
	if err != nil {
		return err
	}

	var rec *wavwriter.WavWriter
	if *wav != "" {
		fn := *wav
		if strings.ToUpper(fn) == "AUTO" {
			short := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
			fn = fmt.Sprintf("%s.wav", paths.UniqueFilename("wav", short))
		}
		rec, err = wavwriter.New(m.Instance, fn, m.Probe, wavwriter.SampleRate)
		if err != nil {
			return err
		}
	}

	var elapsed int64
	var halt hardware.Halt

	if *paced {
		elapsed, halt = runPaced(m, *cycles)
	} else {
		elapsed, halt = m.Run(*cycles)
	}
	fmt.Fprintf(output, "%d cycles: %s\n", elapsed, halt)
	fmt.Fprintln(output, m.CPU.Regs)

	if rec != nil {
		if err := rec.Close(); err != nil {
			return err
		}
		fmt.Fprintf(output, "%d samples recorded\n", rec.Samples())
	}

	return nil
}

// runPaced runs the machine in quanta, waiting for the limiter between each
// quantum so that the emulation keeps to the clock preference.
func runPaced(m *hardware.Machine, cycles int64) (int64, hardware.Halt) {
	quantum := max(int64(m.Instance.Prefs.Clock.Get().(int)/pacingRate), 1)

	lim := limiter.NewLimiter(pacingRate)
	defer lim.Stop()

	var elapsed int64
	for elapsed < cycles {
		lim.Wait()
		n, halt := m.Run(min(quantum, cycles-elapsed))
		elapsed += n
		if halt != hardware.Completed {
			return elapsed, halt
		}
	}
	return elapsed, hardware.Completed
}

func monitor(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	flags := addMachineFlags(md)
	termType := md.AddString("term", "COLOR", "terminal type to use: COLOR or PLAIN")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	var filename string
	switch len(md.RemainingArgs()) {
	case 0:
	case 1:
		filename = md.GetArg(0)
	default:
		return curated.Errorf("too many arguments")
	}

	var term terminal.Terminal
	switch strings.ToUpper(*termType) {
	case "COLOR":
		term = &colorterm.ColorTerminal{}
	case "PLAIN":
		term = &plainterm.PlainTerminal{}
	default:
		return curated.Errorf("unknown terminal type: %s", *termType)
	}

	m, _, err := createMachine(flags, filename, output)
	if err != nil {
		return err
	}

	return debugger.NewDebugger(m, term).Start()
}

func disasm(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	flags := addMachineFlags(md)
	from := md.AddAddress("from", 0x0000, "first address to disassemble. defaults to the lowest loaded address")
	to := md.AddAddress("to", 0x0000, "last address to disassemble. defaults to the highest loaded address")
	bytecode := md.AddBool("bytecode", false, "include bytecode in disassembly")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return curated.Errorf("one program file required")
	}

	m, inf, err := createMachine(flags, md.GetArg(0), output)
	if err != nil {
		return err
	}

	var fromSet, toSet bool
	md.Visit(func(flag string) {
		switch flag {
		case "from":
			fromSet = true
		case "to":
			toSet = true
		}
	})

	if !fromSet {
		*from = inf.Min
	}
	if !toSet {
		*to = inf.Max
	}

	if *from > *to {
		return curated.Errorf("from address (%04x) is after to address (%04x)", *from, *to)
	}

	return disassembly.Write(output, disassembly.Range(m.Mem, *from, *to), disassembly.WriteAttr{
		ByteCode: *bytecode,
	})
}

func perform(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	flags := addMachineFlags(md)
	duration := md.AddString("duration", "5s", "run duration (note: there is a 2s overhead)")
	profile := md.AddString("profile", "none", "run performance check with profiling: comma separated CPU, MEM, TRACE")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return curated.Errorf("one program file required")
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	m, _, err := createMachine(flags, md.GetArg(0), output)
	if err != nil {
		return err
	}

	return performance.Check(output, prf, m, *duration)
}

func showVersion(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	revision := md.AddBool("revision", false, "display revision information")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	if *revision {
		fmt.Fprintln(output, version.String())
		return nil
	}

	v, _, _ := version.Version()
	fmt.Fprintf(output, "%s %s\n", version.ApplicationName, v)
	return nil
}
