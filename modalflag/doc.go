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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (in the
// manner of the go command's build, test, doc, etc.) and allows different
// flags for each mode.
//
// Initialise with NewArgs() and a list of arguments, declare the available
// sub-modes and then Parse():
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("decode", "listen")
//	p, err := md.Parse()
//
// After parsing, Mode() says which sub-mode was selected (the first declared
// sub-mode is the default). Each mode then calls NewMode(), declares its own
// flags with the Add*() functions and calls Parse() again on the remaining
// arguments:
//
//	switch md.Mode() {
//	case "DECODE":
//		md.NewMode()
//		echo := md.AddBool("echo", false, "echo log entries")
//		p, err := md.Parse()
//		...
//	}
//
// Sub-mode comparison is case insensitive; the Mode() function always
// returns the upper-case form. Non-flag arguments left after parsing are
// available with RemainingArgs() and GetArg().
//
// Help messages (in response to -help etc.) are handled automatically and
// written to the Output field, which must be set for them to be seen. The
// ParseHelp result value indicates that this has happened and that the
// program should do nothing further.
package modalflag
