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

package decode

// Category classifies a fault by the CFSR sub-field that raised it.
type Category string

// List of valid Category values. The value is the text used in the report.
const (
	UsageFault Category = "Usage fault"
	BusFault   Category = "Bus fault"
	MemFault   Category = "Memory Management (MPU) fault"
)

// Reason is the human-readable explanation of a single fault status bit.
type Reason string

// List of valid Reason values for the usage fault category.
const (
	DivideByZero         Reason = "Divide by zero"
	InvalidState         Reason = "Invalid combination of EPSR and instruction,\nsuch as calling a null pointer function"
	UndefinedInstruction Reason = "The processor attempted to execute an undefined instruction"
	InvalidExcReturn     Reason = "Attempt to load EXC_RETURN into pc illegally"
	NoCoprocessor        Reason = "Attempt to use a coprocessor instruction"
	UnalignedAccess      Reason = "Attempt to make an unaligned memory access"
)

// List of valid Reason values for the bus fault category.
const (
	InstructionBusError Reason = "Instruction bus error"
	PreciseBusError     Reason = "Precise data bus error"
	ImpreciseBusError   Reason = "Imprecise data bus error"
)

// List of valid Reason values for the memory management fault category.
const (
	InstructionAccessViolation Reason = "Instruction access violation"
	DataAccessViolation        Reason = "Data access violation"
)

// The stacking reasons are shared by the bus and memory management
// categories. The bits differ but the explanation is the same.
const (
	UnstackingError Reason = "Unstacking error"
	StackingError   Reason = "Stacking error"
)
