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

// Map of the physical addresses of the fault status registers. Only this
// package knows about addresses; everything else works through the Registers
// interface.
type Map struct {
	CFSR  uint32
	HFSR  uint32
	MMFAR uint32
	BFAR  uint32
}

// NewMap is the preferred method of initialisation for the Map type. The
// addresses are fixed by the ARMv7-M architecture, offsets from the system
// control block base of 0xe000ed00.
func NewMap() Map {
	return Map{
		CFSR:  0xe000ed28,
		HFSR:  0xe000ed2c,
		MMFAR: 0xe000ed34,
		BFAR:  0xe000ed38,
	}
}
