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

// Package scenario provides canned fault occurrences for demonstration and
// testing. Each scenario is the register and frame state a real ARMv7-M
// target would present after one of the classic ways of crashing: dividing
// by zero, calling through a null function pointer, running off the end of a
// buffer, writing through a wild pointer.
//
// The scenarios stand in for the deliberately buggy trigger functions that
// would be flashed to a real board. They let the full reporting path be
// exercised host-side, without hardware.
package scenario

import (
	"github.com/jetsetilly/faultline/frame"
	"github.com/jetsetilly/faultline/scb"
)

// Scenario is a single canned fault occurrence.
type Scenario struct {
	Name        string
	Description string

	Regs  scb.Static
	Stack frame.Frame
}

var scenarios = []Scenario{
	{
		Name:        "divzero",
		Description: "SDIV instruction with a divisor of zero (divide-by-zero trap enabled)",
		Regs: scb.Static{
			HardFaultStatus: scb.FORCED,
			FaultStatus:     scb.DIVBYZERO,
		},
		Stack: stack(0x00000004, 0x00000000, 0x00000000, 0x00000000, 0x0000000c, 0x08000415, 0x080003c2, 0x21000000),
	},
	{
		Name:        "nullcall",
		Description: "call through a null function pointer. the pc is clobbered but the lr still points at the caller",
		Regs: scb.Static{
			HardFaultStatus: scb.FORCED,
			FaultStatus:     scb.INVSTATE,
		},
		Stack: stack(0x00000000, 0x20000400, 0x00000000, 0x00000000, 0x0000000c, 0x08000931, 0x00000000, 0x61000000),
	},
	{
		Name:        "overflow",
		Description: "buffer overflow marching a store loop off the end of SRAM",
		Regs: scb.Static{
			HardFaultStatus: scb.FORCED,
			FaultStatus:     scb.PRECISERR | scb.BFARVALID,
			BusFaultAddr:    0x20024000,
		},
		Stack: stack(0x00002710, 0x20023ffc, 0x00000000, 0x00000000, 0x00000000, 0x080004a9, 0x08000466, 0x21000000),
	},
	{
		Name:        "wildwrite",
		Description: "write through a wild pointer. the store is buffered so the fault is imprecise and no address is valid",
		Regs: scb.Static{
			HardFaultStatus: scb.FORCED,
			FaultStatus:     scb.IMPRECISERR,

			// the address register still holds a value from an earlier fault
			// but BFARVALID is clear so it must never be reported
			BusFaultAddr: 0x20200190,
		},
		Stack: stack(0xa56765ae, 0x20200190, 0x00000000, 0x00000000, 0x00000000, 0x080004f5, 0x080004d0, 0x21000000),
	},
	{
		Name:        "wildread",
		Description: "read through a null pointer with the MPU trapping accesses below the null boundary",
		Regs: scb.Static{
			HardFaultStatus: scb.FORCED,
			FaultStatus:     scb.DACCVIOL | scb.MMARVALID,
			MemManageAddr:   0x00000064,
		},
		Stack: stack(0x00000000, 0x00000064, 0x00000000, 0x00000000, 0x00000000, 0x08000529, 0x08000504, 0x21000000),
	},
	{
		Name:        "unforced",
		Description: "hard fault without escalation (vector table read error). the CFSR holds stale bits that must not be reported",
		Regs: scb.Static{
			HardFaultStatus: 0x00000002,
			FaultStatus:     scb.DIVBYZERO,
		},
		Stack: stack(0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0xfffffff9, 0x08000200, 0x01000000),
	},
}

func stack(r0, r1, r2, r3, r12, lr, pc, psr uint32) frame.Frame {
	var f frame.Frame
	f[frame.R0] = r0
	f[frame.R1] = r1
	f[frame.R2] = r2
	f[frame.R3] = r3
	f[frame.R12] = r12
	f[frame.LR] = lr
	f[frame.PC] = pc
	f[frame.PSR] = psr
	return f
}

// List returns every scenario, in a fixed order.
func List() []Scenario {
	return scenarios
}

// Lookup a scenario by name.
func Lookup(name string) (Scenario, bool) {
	for _, s := range scenarios {
		if s.Name == name {
			return s, true
		}
	}
	return Scenario{}, false
}
