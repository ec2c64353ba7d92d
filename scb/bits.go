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

// Masks for the three CFSR sub-fields. The sub-fields never overlap and
// decoding of one sub-field must never read bits from another.
const (
	MemFaultMask   uint32 = 0x000000ff
	BusFaultMask   uint32 = 0x0000ff00
	UsageFaultMask uint32 = 0xffff0000
)

// Memory management status bits (MMFSR, bits 0 to 7 of the CFSR).
const (
	IACCVIOL  uint32 = 0x00000001 // instruction access violation
	DACCVIOL  uint32 = 0x00000002 // data access violation
	MUNSTKERR uint32 = 0x00000008 // fault while unstacking on exception return
	MSTKERR   uint32 = 0x00000010 // fault while stacking on exception entry
	MMARVALID uint32 = 0x00000080 // MMFAR holds a valid fault address
)

// Bus fault status bits (BFSR, bits 8 to 15 of the CFSR).
const (
	IBUSERR     uint32 = 0x00000100 // instruction bus error
	PRECISERR   uint32 = 0x00000200 // precise data bus error
	IMPRECISERR uint32 = 0x00000400 // imprecise data bus error
	UNSTKERR    uint32 = 0x00000800 // fault while unstacking on exception return
	STKERR      uint32 = 0x00001000 // fault while stacking on exception entry
	BFARVALID   uint32 = 0x00008000 // BFAR holds a valid fault address
)

// Usage fault status bits (UFSR, bits 16 to 31 of the CFSR).
const (
	UNDEFINSTR uint32 = 0x00010000 // undefined instruction
	INVSTATE   uint32 = 0x00020000 // invalid combination of EPSR and instruction
	INVPC      uint32 = 0x00040000 // illegal load of EXC_RETURN into the PC
	NOCP       uint32 = 0x00080000 // coprocessor instruction with no coprocessor
	UNALIGNED  uint32 = 0x01000000 // unaligned memory access
	DIVBYZERO  uint32 = 0x02000000 // SDIV or UDIV with a divisor of zero
)

// FORCED indicates that the hard fault was escalated from a configurable
// fault. Only when this bit of the HFSR is set does the CFSR describe the
// fault; when it is clear the CFSR must not be consulted at all.
const FORCED uint32 = 0x40000000
