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

package curated_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/faultline/curated"
	"github.com/jetsetilly/faultline/test"
)

func TestIsAndHas(t *testing.T) {
	const base = "base error: %d"
	const wrap = "wrapping: %v"

	e := curated.Errorf(base, 10)
	test.ExpectSuccess(t, curated.IsAny(e))
	test.ExpectSuccess(t, curated.Is(e, base))
	test.ExpectFailure(t, curated.Is(e, wrap))

	f := curated.Errorf(wrap, e)
	test.ExpectSuccess(t, curated.Is(f, wrap))

	// the base pattern is no longer at the head of the chain but Has() can
	// still find it
	test.ExpectFailure(t, curated.Is(f, base))
	test.ExpectSuccess(t, curated.Has(f, base))

	// uncurated errors always answer false
	g := errors.New("plain error")
	test.ExpectFailure(t, curated.IsAny(g))
	test.ExpectFailure(t, curated.Is(g, base))
	test.ExpectFailure(t, curated.Has(g, base))
}

func TestNormalisation(t *testing.T) {
	// duplicate adjacent parts are removed from the message
	e := curated.Errorf("error: %v", curated.Errorf("error: %v", curated.Errorf("not yet implemented")))
	test.ExpectEquality(t, e.Error(), "error: not yet implemented")
}
