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

// Package dump reads and writes the textual format used to move a fault
// occurrence off-target. A dump is a sequence of "name value" lines, one per
// register, with hex values:
//
//	hfsr 40000000
//	cfsr 02000000
//	r1 00000004
//	lr 08000931
//	pc 080002a6
//	end
//
// Values may carry an 0x prefix. Lines starting with '#' and blank lines are
// ignored. Registers that aren't mentioned default to zero. The "end" line
// terminates a dump, which allows several dumps to share a stream; a dump
// ended by EOF is also accepted.
package dump

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/jetsetilly/faultline/curated"
	"github.com/jetsetilly/faultline/frame"
	"github.com/jetsetilly/faultline/scb"
)

// sentinal errors returned by the dump package
const (
	UnknownField = "dump: unknown field: %s"
	BadValue     = "dump: bad value for %s: %v"
	NoDump       = "dump: no dump in stream"
)

// the frame words by dump field name, in canonical emission order
var frameFields = []struct {
	name string
	word int
}{
	{"r0", frame.R0},
	{"r1", frame.R1},
	{"r2", frame.R2},
	{"r3", frame.R3},
	{"r12", frame.R12},
	{"lr", frame.LR},
	{"pc", frame.PC},
	{"psr", frame.PSR},
}

// Decoder reads successive dumps from a stream. A Decoder must be used,
// rather than repeated calls to Parse(), when more than one dump shares the
// stream: the underlying scanner reads ahead of the current line.
type Decoder struct {
	scanner *bufio.Scanner
}

// NewDecoder is the preferred method of initialisation for the Decoder type.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{
		scanner: bufio.NewScanner(r),
	}
}

// Parse one dump from an io.Reader. Reading stops at the "end" line or at
// EOF. If the stream ends before any field has been seen then the NoDump
// error is returned: callers reading a stream of dumps can treat it as a
// clean end-of-stream.
func Parse(r io.Reader) (scb.Static, frame.Frame, error) {
	return NewDecoder(r).Decode()
}

// Decode the next dump in the stream. Returns the NoDump error at the clean
// end of the stream.
func (dec *Decoder) Decode() (scb.Static, frame.Frame, error) {
	var regs scb.Static
	var stack frame.Frame

	seen := false

	scanner := dec.scanner
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue // for loop
		}
		if line == "end" {
			seen = true
			break // for loop
		}

		flds := strings.Fields(line)
		if len(flds) != 2 {
			return regs, stack, curated.Errorf(UnknownField, line)
		}

		name := strings.ToLower(flds[0])
		v, err := strconv.ParseUint(strings.TrimPrefix(flds[1], "0x"), 16, 32)
		if err != nil {
			return regs, stack, curated.Errorf(BadValue, name, err)
		}
		val := uint32(v)

		switch name {
		case "hfsr":
			regs.HardFaultStatus = val
		case "cfsr":
			regs.FaultStatus = val
		case "mmfar":
			regs.MemManageAddr = val
		case "bfar":
			regs.BusFaultAddr = val
		default:
			word := -1
			for _, f := range frameFields {
				if f.name == name {
					word = f.word
					break // inner for loop
				}
			}
			if word == -1 {
				return regs, stack, curated.Errorf(UnknownField, name)
			}
			stack[word] = val
		}

		seen = true
	}

	if err := scanner.Err(); err != nil {
		return regs, stack, curated.Errorf("dump: %v", err)
	}

	if !seen {
		return regs, stack, curated.Errorf(NoDump)
	}

	return regs, stack, nil
}

// Write one dump in the canonical format, including the terminating "end"
// line.
func Write(w io.Writer, regs scb.Static, stack frame.Frame) error {
	write := func(name string, val uint32) error {
		_, err := io.WriteString(w, name+" "+strconv.FormatUint(uint64(val), 16)+"\n")
		return err
	}

	if err := write("hfsr", regs.HardFaultStatus); err != nil {
		return curated.Errorf("dump: %v", err)
	}
	if err := write("cfsr", regs.FaultStatus); err != nil {
		return curated.Errorf("dump: %v", err)
	}
	if err := write("mmfar", regs.MemManageAddr); err != nil {
		return curated.Errorf("dump: %v", err)
	}
	if err := write("bfar", regs.BusFaultAddr); err != nil {
		return curated.Errorf("dump: %v", err)
	}

	for _, f := range frameFields {
		if err := write(f.name, stack[f.word]); err != nil {
			return curated.Errorf("dump: %v", err)
		}
	}

	if _, err := io.WriteString(w, "end\n"); err != nil {
		return curated.Errorf("dump: %v", err)
	}

	return nil
}
