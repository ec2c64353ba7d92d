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

package scb

// Registers is the read-only view of the fault status registers. The rest of
// the project only ever reads the registers through this interface, meaning
// that nothing outside this package needs to know about physical addresses.
type Registers interface {
	HFSR() uint32
	CFSR() uint32
	MMFAR() uint32
	BFAR() uint32
}

// Static is an in-memory implementation of the Registers interface with
// settable fields. It is used as the testing replacement for the MMIO type
// and as the snapshot type returned by the Read() function.
type Static struct {
	HardFaultStatus uint32
	FaultStatus     uint32
	MemManageAddr   uint32
	BusFaultAddr    uint32
}

func (s Static) HFSR() uint32 {
	return s.HardFaultStatus
}

func (s Static) CFSR() uint32 {
	return s.FaultStatus
}

func (s Static) MMFAR() uint32 {
	return s.MemManageAddr
}

func (s Static) BFAR() uint32 {
	return s.BusFaultAddr
}

// Read samples every fault status register exactly once and returns the
// sampled values as a Static. Hardware registers are memory-mapped and in
// principle can change between reads, so all sub-field tests during the
// reporting of a single fault must work from the same snapshot. Reading more
// than once per fault occurrence risks an inconsistent report.
func Read(regs Registers) Static {
	return Static{
		HardFaultStatus: regs.HFSR(),
		FaultStatus:     regs.CFSR(),
		MemManageAddr:   regs.MMFAR(),
		BusFaultAddr:    regs.BFAR(),
	}
}
