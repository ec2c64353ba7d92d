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

// Package report sequences the full hard fault report: the banner, the hard
// fault status, the decoded fault categories, the register dump and the
// trailer with the best-guess fault address.
//
// The report is written through a Sink, one logical message per Write() call,
// in emission order. The package does no other I/O. On a real target the sink
// would be a UART or semihosting writer; host-side it is any io.Writer.
//
// The reporting sequence itself must not fault. It never dereferences
// anything gated on a validity bit without checking the bit first and the
// formatting path avoids the fmt package entirely: lines are assembled in a
// fixed scratch buffer with hex tokens appended by hand. Constant strings go
// through io.WriteString, which uses the sink's WriteString method when one
// is available.
package report

import (
	"io"

	"github.com/jetsetilly/faultline/decode"
	"github.com/jetsetilly/faultline/frame"
	"github.com/jetsetilly/faultline/scb"
)

// Sink is where the formatted report lines are sent. Each call to Write() is
// one logical message. The sink is assumed to be synchronous; if it blocks
// then the report stalls with it.
type Sink interface {
	io.Writer
}

// Reporter renders a hard fault occurrence as text.
type Reporter struct {
	Regs scb.Registers
	Sink Sink

	// UserHook, if set, is called once the report is complete. application
	// specific handling of the fault frame can happen here
	UserHook func(frame.Frame)
}

// NewReporter is the preferred method of initialisation for the Reporter
// type.
func NewReporter(regs scb.Registers, sink Sink) *Reporter {
	return &Reporter{
		Regs: regs,
		Sink: sink,
	}
}

// fixed texts of the report. the wording is relied on by operators and by the
// tests, change with care.
const (
	banner    = "Hard Fault!!!\n"
	forced    = "Forced Hard Fault\n"
	hfsrLabel = "SCB->HFSR = 0x"
	cfsrLabel = "SCB->CFSR = 0x"

	busAddrValid = "Bus Fault Address Register address valid flag\n"
	busAddrLabel = "BFAR value = 0x"
	memAddrValid = "Memory Manage Address Register address valid flag\n"
	memAddrLabel = "MMFAR value = 0x"

	rule          = "\n--\t--\t--\n"
	faultAtLabel  = "Hard fault occurred at address 0x"
	trailerAdvice = "Find high-level function with\nDisassembly window or Map file\n"
	trailerEnd    = "--\t--\t--\n"
)

// HardFault writes the full report for the supplied fault frame.
//
// The status registers are sampled exactly once, up front. Every sub-field
// test works from that sample so that the report stays consistent even if the
// hardware state changes mid-report.
//
// The CFSR is decoded only when the FORCED bit of the HFSR is set. A hard
// fault that was not escalated reports the top-level status only; the CFSR
// would hold stale or irrelevant bits.
func (r *Reporter) HardFault(stack frame.Frame) {
	regs := scb.Read(r.Regs)

	r.print(banner)
	r.printHexLine(hfsrLabel, regs.HardFaultStatus)

	if regs.HardFaultStatus&scb.FORCED != 0 {
		r.print(forced)
		r.printHexLine(cfsrLabel, regs.FaultStatus)

		rep := decode.Decode(regs.FaultStatus,
			decode.Address{Value: regs.MemManageAddr, Valid: regs.FaultStatus&scb.MMARVALID != 0},
			decode.Address{Value: regs.BusFaultAddr, Valid: regs.FaultStatus&scb.BFARVALID != 0},
		)
		for _, e := range rep {
			r.category(e)
		}
	}

	r.dumpStack(stack)

	if r.UserHook != nil {
		r.UserHook(stack)
	}
}

// category writes one decoded category block. the usage fault category has no
// sub-field token; the bus and memory categories lead with the masked
// sub-field value and optionally end with the fault address.
func (r *Reporter) category(e decode.Entry) {
	var buf [96]byte

	line := append(buf[:0], string(e.Category)...)
	line = append(line, ':', ' ')
	if e.Category != decode.UsageFault {
		line = appendHexShort(line, e.Field)
		line = append(line, '\n')
	}
	r.Sink.Write(line)

	for _, reason := range e.Reasons {
		line = append(buf[:0], string(reason)...)
		line = append(line, '\n')
		r.Sink.Write(line)
	}

	if e.AddrValid {
		switch e.Category {
		case decode.BusFault:
			r.print(busAddrValid)
			r.printHexLine(busAddrLabel, e.Addr)
		case decode.MemFault:
			r.print(memAddrValid)
			r.printHexLine(memAddrLabel, e.Addr)
		}
	}
}

// the register dump labels, in frame order. padded so the '=' signs line up.
var dumpLabels = [frame.NumWords]string{
	"r0  = 0x",
	"r1  = 0x",
	"r2  = 0x",
	"r3  = 0x",
	"r12 = 0x",
	"lr  = 0x",
	"pc  = 0x",
	"psr = 0x",
}

// dumpStack writes the eight register lines, preceded by a blank line, and
// the trailer with the best-guess fault address.
func (r *Reporter) dumpStack(stack frame.Frame) {
	r.print("\n")
	for i, label := range dumpLabels {
		r.printHexLine(label, stack[i])
	}

	r.print(rule)
	r.printHexLine2(faultAtLabel, stack.BestGuess(), ".")
	r.print(trailerAdvice)
	r.print(trailerEnd)
}

func (r *Reporter) print(s string) {
	io.WriteString(r.Sink, s)
}

// printHexLine writes label, an eight digit hex token and a newline as a
// single message.
func (r *Reporter) printHexLine(label string, num uint32) {
	var buf [64]byte
	line := append(buf[:0], label...)
	line = appendHex32(line, num)
	line = append(line, '\n')
	r.Sink.Write(line)
}

// printHexLine2 is printHexLine with a suffix between the hex token and the
// newline.
func (r *Reporter) printHexLine2(label string, num uint32, suffix string) {
	var buf [64]byte
	line := append(buf[:0], label...)
	line = appendHex32(line, num)
	line = append(line, suffix...)
	line = append(line, '\n')
	r.Sink.Write(line)
}
