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

package modalflag

import (
	"fmt"
	"io"
	"strings"
)

// helpWriter captures the output of the flag package so it can be amended
// with sub-mode information before being shown to the user.
type helpWriter struct {
	buffer []byte
}

// Write buffers all output. Implements the io.Writer interface, which is how
// the flag package talks to us.
func (hw *helpWriter) Write(p []byte) (n int, err error) {
	hw.buffer = append(hw.buffer, p...)
	return len(p), nil
}

// Clear contents of output buffer.
func (hw *helpWriter) Clear() {
	hw.buffer = hw.buffer[:0]
}

// Help assembles the full help message from the buffered flag output, the
// mode path banner, the list of sub-modes and any additional help text. The
// assembled message is sent to output with a single Write().
func (hw *helpWriter) Help(output io.Writer, banner string, subModes []string, additionalHelp string) {
	flagHelp := string(hw.buffer)
	lines := strings.Split(flagHelp, "\n")

	s := strings.Builder{}

	// the flag package emits a bare "Usage:" line even when no flags have
	// been declared. with no sub-modes either there is nothing useful to say
	if flagHelp == "Usage:\n" && len(subModes) == 0 {
		s.WriteString("No help available")
		if banner != "" {
			s.WriteString(fmt.Sprintf(" for %s", banner))
		}
		s.WriteString("\n")
		output.Write([]byte(s.String()))
		return
	}

	// the usage line, qualified with the mode path when there is one
	if banner != "" {
		s.WriteString(fmt.Sprintf("%s for %s mode\n", lines[0], banner))
	} else {
		s.WriteString(lines[0])
		s.WriteString("\n")
	}

	// the per-flag help produced by the flag package
	if len(lines) > 1 {
		s.WriteString(strings.Join(lines[1:], "\n"))
	}

	if len(subModes) > 0 {
		// a separating line if flag help has been written above
		if len(lines) > 2 {
			s.WriteString("\n")
		}

		s.WriteString(fmt.Sprintf("  available sub-modes: %s\n", strings.Join(subModes, ", ")))
		s.WriteString(fmt.Sprintf("    default: %s\n", subModes[0]))
	}

	if additionalHelp != "" {
		s.WriteString("\n")
		s.WriteString(additionalHelp)
		s.WriteString("\n")
	}

	output.Write([]byte(s.String()))
}
