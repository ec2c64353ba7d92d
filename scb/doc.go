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

// Package scb provides a read-only view of the ARMv7-M System Control Block
// registers that matter during a hard fault: the hard fault status register
// (HFSR), the configurable fault status register (CFSR) and the two fault
// address registers (MMFAR and BFAR).
//
// The Registers interface is the only way the rest of the project reads these
// registers. Two implementations are provided. The MMIO type reads from the
// physical addresses given by a Map and is only meaningful on a real ARMv7-M
// target. The Static type is an in-memory implementation with settable fields
// and is used both for testing and as the snapshot type returned by the Read()
// function.
//
// The CFSR is partitioned into three sub-fields that never alias: memory
// management status in bits 0 to 7, bus fault status in bits 8 to 15 and usage
// fault status in bits 16 to 31. The MemFaultMask, BusFaultMask and
// UsageFaultMask constants define those boundaries and should be used in
// preference to any freshly derived literal.
package scb
