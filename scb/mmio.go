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

import "unsafe"

// MMIO implements the Registers interface by reading the physical addresses
// in a Map. It is only meaningful when running on an actual ARMv7-M target.
// Host-side code should use the Static type instead.
type MMIO struct {
	mmap Map
}

// NewMMIO is the preferred method of initialisation for the MMIO type.
func NewMMIO(mmap Map) MMIO {
	return MMIO{mmap: mmap}
}

func (m MMIO) HFSR() uint32 {
	return read32(m.mmap.HFSR)
}

func (m MMIO) CFSR() uint32 {
	return read32(m.mmap.CFSR)
}

func (m MMIO) MMFAR() uint32 {
	return read32(m.mmap.MMFAR)
}

func (m MMIO) BFAR() uint32 {
	return read32(m.mmap.BFAR)
}

// read32 must not split the stack. it is called from the fault path where
// there is no guarantee of stack space beyond what is already in use.
//
//go:nosplit
func read32(addr uint32) uint32 {
	return *(*uint32)(unsafe.Pointer(uintptr(addr)))
}
