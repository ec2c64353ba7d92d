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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The ExpectEquality() and ExpectInequality() functions compare two values of
// the same comparable type. Literal number values are untyped constants and
// will convert to the type of the other argument, which keeps call sites free
// of casts.
//
// The ExpectSuccess() and ExpectFailure() functions test a value for a
// success or failure condition appropriate to its type. For error values, nil
// indicates success. For bool values, true indicates success.
//
// The CompareWriter type implements the io.Writer interface and should be
// used to capture output for comparison with predefined strings.
package test
