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

package report

import (
	"testing"

	"github.com/jetsetilly/faultline/test"
)

func TestAppendHex32(t *testing.T) {
	var buf [8]byte

	test.ExpectEquality(t, string(appendHex32(buf[:0], 0x00000000)), "00000000")
	test.ExpectEquality(t, string(appendHex32(buf[:0], 0x080002a6)), "080002a6")
	test.ExpectEquality(t, string(appendHex32(buf[:0], 0xffffffff)), "ffffffff")
	test.ExpectEquality(t, string(appendHex32(buf[:0], 0x00000010)), "00000010")
}

func TestAppendHexShort(t *testing.T) {
	var buf [8]byte

	// never fewer than two digits
	test.ExpectEquality(t, string(appendHexShort(buf[:0], 0x00)), "00")
	test.ExpectEquality(t, string(appendHexShort(buf[:0], 0x02)), "02")
	test.ExpectEquality(t, string(appendHexShort(buf[:0], 0x82)), "82")

	// leading zeroes trimmed, value bits never shifted
	test.ExpectEquality(t, string(appendHexShort(buf[:0], 0x8100)), "8100")
	test.ExpectEquality(t, string(appendHexShort(buf[:0], 0x0100)), "100")
}
