// This file is part of Faultline.
//
// Faultline is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Faultline is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Faultline.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/jetsetilly/faultline/curated"
	"github.com/jetsetilly/faultline/dump"
	"github.com/jetsetilly/faultline/frame"
	"github.com/jetsetilly/faultline/logger"
	"github.com/jetsetilly/faultline/mapfile"
	"github.com/jetsetilly/faultline/modalflag"
	"github.com/jetsetilly/faultline/report"
	"github.com/jetsetilly/faultline/scenario"
	"github.com/jetsetilly/faultline/serial"
	"github.com/jetsetilly/faultline/statsview"
	"github.com/jetsetilly/faultline/version"
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("DECODE", "LISTEN", "EXAMPLE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "DECODE":
		err = decode(md)

	case "LISTEN":
		err = listen(md)

	case "EXAMPLE":
		err = example(md)

	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		os.Exit(20)
	}
}

// symbolise builds a reporting hook that looks up the best-guess fault
// address in a GCC map file and names the probable function.
func symbolise(path string, output io.Writer) (func(frame.Frame), error) {
	mf, err := mapfile.Load(path)
	if err != nil {
		return nil, err
	}

	return func(stack frame.Frame) {
		fn, ok := mf.FindFunction(stack.BestGuess())
		if !ok {
			io.WriteString(output, "address not covered by map file\n")
			return
		}
		fmt.Fprintf(output, "probable function: %s (%s)\n", fn.Name, fn.ObjFile)
	}, nil
}

func decode(md *modalflag.Modes) error {
	md.NewMode()

	mapFile := md.AddString("map", "", "GCC map file for function lookup")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	// set debugging log echo
	if *log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	var input io.Reader

	switch len(md.RemainingArgs()) {
	case 0:
		input = os.Stdin
	case 1:
		f, err := os.Open(md.GetArg(0))
		if err != nil {
			return err
		}
		defer f.Close()
		input = f
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	regs, stack, err := dump.Parse(input)
	if err != nil {
		return err
	}

	rep := report.NewReporter(regs, os.Stdout)
	if *mapFile != "" {
		rep.UserHook, err = symbolise(*mapFile, os.Stdout)
		if err != nil {
			return err
		}
	}
	rep.HardFault(stack)

	return nil
}

func listen(md *modalflag.Modes) error {
	md.NewMode()

	mapFile := md.AddString("map", "", "GCC map file for function lookup")
	stats := md.AddBool("stats", false, "launch stats server")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	if *stats {
		statsview.Launch(os.Stderr)
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("serial device required for %s mode", md)
	}

	port, err := serial.Open(md.GetArg(0))
	if err != nil {
		return err
	}
	defer port.Close()

	// close the port on ctrl-c. the pending read fails and the decode loop
	// ends
	interrupted := make(chan struct{})
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	go func() {
		<-intChan
		close(interrupted)
		port.Close()
	}()

	var hook func(frame.Frame)
	if *mapFile != "" {
		hook, err = symbolise(*mapFile, os.Stdout)
		if err != nil {
			return err
		}
	}

	dec := dump.NewDecoder(port)
	for {
		regs, stack, err := dec.Decode()
		if err != nil {
			select {
			case <-interrupted:
				return nil
			default:
			}
			if curated.Is(err, dump.NoDump) {
				return nil
			}
			return err
		}

		rep := report.NewReporter(regs, os.Stdout)
		rep.UserHook = hook
		rep.HardFault(stack)
	}
}

func example(md *modalflag.Modes) error {
	md.NewMode()

	list := md.AddBool("list", false, "list available fault scenarios")
	asDump := md.AddBool("dump", false, "write the scenario as a dump rather than a report")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *list {
		for _, s := range scenario.List() {
			fmt.Printf("%-10s %s\n", s.Name, s.Description)
		}
		return nil
	}

	if len(md.RemainingArgs()) != 1 {
		names := make([]string, 0, len(scenario.List()))
		for _, s := range scenario.List() {
			names = append(names, s.Name)
		}
		return fmt.Errorf("scenario name required for %s mode: %s", md, strings.Join(names, ", "))
	}

	s, ok := scenario.Lookup(md.GetArg(0))
	if !ok {
		return fmt.Errorf("unrecognised scenario: %s", md.GetArg(0))
	}

	if *asDump {
		return dump.Write(os.Stdout, s.Regs, s.Stack)
	}

	rep := report.NewReporter(s.Regs, os.Stdout)
	rep.HardFault(s.Stack)

	return nil
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	revision := md.AddBool("v", false, "display revision information")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	vers, rev, _ := version.Version()
	fmt.Printf("%s (%s)\n", version.ApplicationName, vers)
	if *revision {
		fmt.Println(rev)
	}

	return nil
}
