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

package report_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/jetsetilly/faultline/frame"
	"github.com/jetsetilly/faultline/report"
	"github.com/jetsetilly/faultline/scb"
	"github.com/jetsetilly/faultline/test"
)

func TestDivideByZeroReport(t *testing.T) {
	regs := scb.Static{
		HardFaultStatus: 0x40000000,
		FaultStatus:     0x02000000,
	}

	stack := frame.Frame{}
	stack[frame.R1] = 0x00000004
	stack[frame.R12] = 0x0000000c
	stack[frame.LR] = 0x08000931
	stack[frame.PC] = 0x080002a6
	stack[frame.PSR] = 0x21000000

	w := &test.CompareWriter{}
	report.NewReporter(regs, w).HardFault(stack)

	expected := "Hard Fault!!!\n" +
		"SCB->HFSR = 0x40000000\n" +
		"Forced Hard Fault\n" +
		"SCB->CFSR = 0x02000000\n" +
		"Usage fault: Divide by zero\n" +
		"\n" +
		"r0  = 0x00000000\n" +
		"r1  = 0x00000004\n" +
		"r2  = 0x00000000\n" +
		"r3  = 0x00000000\n" +
		"r12 = 0x0000000c\n" +
		"lr  = 0x08000931\n" +
		"pc  = 0x080002a6\n" +
		"psr = 0x21000000\n" +
		"\n--\t--\t--\n" +
		"Hard fault occurred at address 0x080002a6.\n" +
		"Find high-level function with\n" +
		"Disassembly window or Map file\n" +
		"--\t--\t--\n"

	if diff := cmp.Diff(expected, w.String()); diff != "" {
		t.Errorf("report mismatch (-want +got):\n%s", diff)
	}
}

func TestBusFaultWithAddress(t *testing.T) {
	regs := scb.Static{
		HardFaultStatus: 0x40000000,
		FaultStatus:     0x00008100,
		BusFaultAddr:    0x20000010,
	}

	w := &test.CompareWriter{}
	report.NewReporter(regs, w).HardFault(frame.Frame{})

	s := w.String()
	test.ExpectSuccess(t, strings.Contains(s, "Bus fault: 8100\n"))
	test.ExpectSuccess(t, strings.Contains(s, "Instruction bus error\n"))
	test.ExpectSuccess(t, strings.Contains(s, "Bus Fault Address Register address valid flag\n"))
	test.ExpectSuccess(t, strings.Contains(s, "BFAR value = 0x20000010\n"))

	// no other category should have been reported
	test.ExpectFailure(t, strings.Contains(s, "Usage fault"))
	test.ExpectFailure(t, strings.Contains(s, "Memory Management"))
}

func TestMemManageFaultWithAddress(t *testing.T) {
	regs := scb.Static{
		HardFaultStatus: 0x40000000,
		FaultStatus:     scb.DACCVIOL | scb.MMARVALID,
		MemManageAddr:   0x00000064,
	}

	w := &test.CompareWriter{}
	report.NewReporter(regs, w).HardFault(frame.Frame{})

	s := w.String()
	test.ExpectSuccess(t, strings.Contains(s, "Memory Management (MPU) fault: 82\n"))
	test.ExpectSuccess(t, strings.Contains(s, "Data access violation\n"))
	test.ExpectSuccess(t, strings.Contains(s, "Memory Manage Address Register address valid flag\n"))
	test.ExpectSuccess(t, strings.Contains(s, "MMFAR value = 0x00000064\n"))
}

func TestUnforcedHardFault(t *testing.T) {
	// without the FORCED bit the CFSR is never consulted, regardless of its
	// contents
	regs := scb.Static{
		HardFaultStatus: 0x00000002,
		FaultStatus:     0x02000000,
	}

	w := &test.CompareWriter{}
	report.NewReporter(regs, w).HardFault(frame.Frame{})

	s := w.String()
	test.ExpectSuccess(t, strings.Contains(s, "Hard Fault!!!\n"))
	test.ExpectSuccess(t, strings.Contains(s, "SCB->HFSR = 0x00000002\n"))
	test.ExpectFailure(t, strings.Contains(s, "Forced Hard Fault"))
	test.ExpectFailure(t, strings.Contains(s, "SCB->CFSR"))
	test.ExpectFailure(t, strings.Contains(s, "Usage fault"))
}

func TestBestGuessFromLinkRegister(t *testing.T) {
	regs := scb.Static{
		HardFaultStatus: 0x40000000,
		FaultStatus:     scb.INVSTATE,
	}

	// a null function pointer call. the program counter is zero so the link
	// register is the best guess
	stack := frame.Frame{}
	stack[frame.LR] = 0x08001234
	stack[frame.PC] = 0x00000000

	w := &test.CompareWriter{}
	report.NewReporter(regs, w).HardFault(stack)

	test.ExpectSuccess(t, strings.Contains(w.String(), "Hard fault occurred at address 0x08001234.\n"))
}

func TestUserHook(t *testing.T) {
	regs := scb.Static{HardFaultStatus: 0x40000000, FaultStatus: scb.DIVBYZERO}

	stack := frame.Frame{}
	stack[frame.PC] = 0x080002a6

	w := &test.CompareWriter{}
	r := report.NewReporter(regs, w)

	var hooked bool
	r.UserHook = func(f frame.Frame) {
		hooked = true

		// the hook runs after the report is complete
		test.ExpectSuccess(t, strings.Contains(w.String(), "--\t--\t--\n"))
		test.ExpectEquality(t, f[frame.PC], 0x080002a6)
	}

	r.HardFault(stack)
	test.ExpectSuccess(t, hooked)
}

func TestRegistersSampledOnce(t *testing.T) {
	regs := &recordingRegisters{
		Static: scb.Static{
			HardFaultStatus: 0x40000000,
			FaultStatus:     scb.DIVBYZERO | scb.IBUSERR | scb.IACCVIOL,
		},
	}

	w := &test.CompareWriter{}
	report.NewReporter(regs, w).HardFault(frame.Frame{})

	// three sub-fields were decoded but the CFSR was read only once
	test.ExpectEquality(t, regs.cfsr, 1)
	test.ExpectEquality(t, regs.hfsr, 1)
}

type recordingRegisters struct {
	scb.Static
	hfsr, cfsr int
}

func (r *recordingRegisters) HFSR() uint32 {
	r.hfsr++
	return r.Static.HFSR()
}

func (r *recordingRegisters) CFSR() uint32 {
	r.cfsr++
	return r.Static.CFSR()
}
