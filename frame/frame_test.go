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

package frame_test

import (
	"testing"

	"github.com/jetsetilly/faultline/curated"
	"github.com/jetsetilly/faultline/frame"
	"github.com/jetsetilly/faultline/test"
)

func TestBestGuess(t *testing.T) {
	var f frame.Frame

	// a zero program counter means the link register is the best guess
	f[frame.PC] = 0x00000000
	f[frame.LR] = 0x08001234
	test.ExpectEquality(t, f.BestGuess(), 0x08001234)

	// a nonzero program counter is used directly, regardless of the link
	// register
	f[frame.PC] = 0x08005678
	test.ExpectEquality(t, f.BestGuess(), 0x08005678)
}

func TestFromBytes(t *testing.T) {
	b := []byte{
		0x01, 0x00, 0x00, 0x00, // r0
		0x02, 0x00, 0x00, 0x00, // r1
		0x03, 0x00, 0x00, 0x00, // r2
		0x04, 0x00, 0x00, 0x00, // r3
		0x0c, 0x00, 0x00, 0x00, // r12
		0x31, 0x09, 0x00, 0x08, // lr
		0xa6, 0x02, 0x00, 0x08, // pc
		0x00, 0x00, 0x00, 0x21, // psr
	}

	f, err := frame.FromBytes(b)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, f[frame.R0], 0x00000001)
	test.ExpectEquality(t, f[frame.R12], 0x0000000c)
	test.ExpectEquality(t, f[frame.LR], 0x08000931)
	test.ExpectEquality(t, f[frame.PC], 0x080002a6)
	test.ExpectEquality(t, f[frame.PSR], 0x21000000)

	// captures of the wrong length are refused
	_, err = frame.FromBytes(b[:31])
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, frame.NotAFrame))
}
