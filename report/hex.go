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

// hex rendering without the fmt package. the fault path cannot assume the
// heap is usable so hex tokens are appended to a caller-supplied buffer.

const hexDigits = "0123456789abcdef"

// appendHex32 appends num as exactly eight zero-padded hex digits.
func appendHex32(buf []byte, num uint32) []byte {
	for i := 28; i >= 0; i -= 4 {
		buf = append(buf, hexDigits[num>>i&0xf])
	}
	return buf
}

// appendHexShort appends num with leading zeroes trimmed to a minimum of two
// digits. used for the masked sub-field tokens.
func appendHexShort(buf []byte, num uint32) []byte {
	started := false
	for i := 28; i >= 0; i -= 4 {
		d := num >> i & 0xf
		if !started && d == 0 && i > 4 {
			continue
		}
		started = true
		buf = append(buf, hexDigits[d])
	}
	return buf
}
