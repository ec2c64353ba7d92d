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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package: it takes a formatting pattern and
// placeholder values and returns an error. The pattern is also what
// differentiates curated errors. The Is() function checks whether an error
// was created with a specific pattern:
//
//	e := curated.Errorf("decode: value = %d", a)
//
//	if curated.Is(e, "decode: value = %d") {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks whether a pattern occurs anywhere
// in the error chain. The IsAny() function answers whether the error was
// created by Errorf() at all; errors that weren't can be thought of as
// 'unexpected' errors.
//
// The Error() implementation normalises the error chain so that it never
// contains duplicate adjacent parts. This alleviates the problem of when and
// how to wrap errors: wrapping the same message twice produces the message
// once.
//
// For the purposes of this package an error chain is composed of parts
// separated by the sub-string ': ', as suggested on p239 of "The Go
// Programming Language" (Donovan, Kernighan).
//
// Sentinal patterns should be stored as a const string, suitably named and
// commented.
package curated
