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

// Package frame defines the fault frame, the eight word register snapshot
// pushed by an ARMv7-M processor on exception entry. The frame is supplied to
// the reporting core by the architecture specific entry trampoline, or by
// host-side code constructing a synthetic frame. The core only ever reads a
// frame, it never mutates one.
package frame

import (
	"encoding/binary"

	"github.com/jetsetilly/faultline/curated"
)

// Enumeration of the words in a fault frame, in the order the hardware stacks
// them.
const (
	R0 int = iota
	R1
	R2
	R3
	R12
	LR
	PC
	PSR
	NumWords
)

// Frame is the eight word register snapshot saved by hardware at exception
// entry.
type Frame [NumWords]uint32

// sentinal error returned by FromBytes
const NotAFrame = "not a fault frame: %d bytes (expected %d)"

// FromBytes builds a Frame from a little-endian byte capture, as read from a
// target's stack memory. The capture must be exactly NumWords words long.
func FromBytes(b []byte) (Frame, error) {
	var f Frame

	if len(b) != NumWords*4 {
		return f, curated.Errorf(NotAFrame, len(b), NumWords*4)
	}

	for i := range f {
		f[i] = binary.LittleEndian.Uint32(b[i*4:])
	}

	return f, nil
}

// BestGuess returns the most plausible address of the faulting instruction. A
// program counter of zero is a strong signal that execution arrived through a
// corrupted or null function pointer. The stacked return address remains
// plausible in that case, so the link register word is used instead.
func (f Frame) BestGuess() uint32 {
	if f[PC] == 0 {
		return f[LR]
	}
	return f[PC]
}
