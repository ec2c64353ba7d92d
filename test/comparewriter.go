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

package test

// CompareWriter is an implementation of the io.Writer interface. It should be
// used to capture output and to compare with predefined strings.
type CompareWriter struct {
	buffer []byte

	// number of times the Write() function has been called since the last
	// Clear()
	writes int
}

func (cw *CompareWriter) Write(p []byte) (n int, err error) {
	cw.buffer = append(cw.buffer, p...)
	cw.writes++
	return len(p), nil
}

// Clear empties the buffer and resets the write counter.
func (cw *CompareWriter) Clear() {
	cw.buffer = cw.buffer[:0]
	cw.writes = 0
}

// Compare buffered output with predefined/example string.
func (cw *CompareWriter) Compare(s string) bool {
	return s == string(cw.buffer)
}

// Writes returns the number of times the Write() function has been called.
func (cw *CompareWriter) Writes() int {
	return cw.writes
}

// implements Stringer interface.
func (cw *CompareWriter) String() string {
	return string(cw.buffer)
}
