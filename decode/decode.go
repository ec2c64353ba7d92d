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

// Package decode translates a sampled CFSR value into an ordered list of
// fault categories and reasons.
//
// The Decode() function is pure: it reads nothing but its arguments and is
// therefore fully testable without hardware. Categories are emitted in the
// fixed order usage fault, bus fault, memory management fault. The order
// never depends on the numeric value of the sub-fields. Within a category the
// reasons also appear in a fixed order and every matching reason is reported,
// not just the first.
//
// Note that Decode() makes sense only for a fault that was escalated to a
// hard fault (the FORCED bit of the HFSR). That gating is the caller's
// responsibility; when the bit is clear the CFSR must not be consulted and
// Decode() should not be called.
package decode

import "github.com/jetsetilly/faultline/scb"

// Address is a fault address register paired with its validity bit. The value
// is meaningful only when Valid is set; a report must never print the value
// otherwise.
type Address struct {
	Value uint32
	Valid bool
}

// Entry is a single fault category and the reasons found in its sub-field.
type Entry struct {
	Category Category

	// the sub-field value masked to the category's bit range. bits from
	// adjacent sub-fields never appear here
	Field uint32

	// reasons in the mandated order for the category
	Reasons []Reason

	// the fault address for the category. AddrValid mirrors the validity bit
	// in the sub-field; Addr is zero when AddrValid is false
	Addr      uint32
	AddrValid bool
}

// Report is an ordered list of fault categories. It is created fresh by each
// call to Decode() and carries no state between fault occurrences.
type Report []Entry

// Category returns the entry for the named category and true if the category
// is present in the report.
func (rep Report) Category(cat Category) (Entry, bool) {
	for _, e := range rep {
		if e.Category == cat {
			return e, true
		}
	}
	return Entry{}, false
}

// the fixed order of reason tests for each category
var usageReasons = []struct {
	bit    uint32
	reason Reason
}{
	{scb.DIVBYZERO, DivideByZero},
	{scb.INVSTATE, InvalidState},
	{scb.UNDEFINSTR, UndefinedInstruction},
	{scb.INVPC, InvalidExcReturn},
	{scb.NOCP, NoCoprocessor},
	{scb.UNALIGNED, UnalignedAccess},
}

var busReasons = []struct {
	bit    uint32
	reason Reason
}{
	{scb.IBUSERR, InstructionBusError},
	{scb.PRECISERR, PreciseBusError},
	{scb.IMPRECISERR, ImpreciseBusError},
	{scb.UNSTKERR, UnstackingError},
	{scb.STKERR, StackingError},
}

var memReasons = []struct {
	bit    uint32
	reason Reason
}{
	{scb.IACCVIOL, InstructionAccessViolation},
	{scb.DACCVIOL, DataAccessViolation},
	{scb.MUNSTKERR, UnstackingError},
	{scb.MSTKERR, StackingError},
}

// Decode a sampled CFSR value. The mmfar and bfar arguments are the fault
// address registers paired with their validity bits; the caller derives the
// validity bits from the same CFSR sample (MMARVALID and BFARVALID).
func Decode(cfsr uint32, mmfar Address, bfar Address) Report {
	rep := make(Report, 0, 3)

	if field := cfsr & scb.UsageFaultMask; field != 0 {
		e := Entry{Category: UsageFault, Field: field}
		for _, r := range usageReasons {
			if field&r.bit != 0 {
				e.Reasons = append(e.Reasons, r.reason)
			}
		}
		rep = append(rep, e)
	}

	if field := cfsr & scb.BusFaultMask; field != 0 {
		e := Entry{Category: BusFault, Field: field}
		for _, r := range busReasons {
			if field&r.bit != 0 {
				e.Reasons = append(e.Reasons, r.reason)
			}
		}
		if field&scb.BFARVALID != 0 && bfar.Valid {
			e.Addr = bfar.Value
			e.AddrValid = true
		}
		rep = append(rep, e)
	}

	if field := cfsr & scb.MemFaultMask; field != 0 {
		e := Entry{Category: MemFault, Field: field}
		for _, r := range memReasons {
			if field&r.bit != 0 {
				e.Reasons = append(e.Reasons, r.reason)
			}
		}
		if field&scb.MMARVALID != 0 && mmfar.Valid {
			e.Addr = mmfar.Value
			e.AddrValid = true
		}
		rep = append(rep, e)
	}

	return rep
}
