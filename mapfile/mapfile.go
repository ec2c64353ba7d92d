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

// Package mapfile parses the map file produced by the GCC linker and answers
// the question posed by the report trailer: which high-level function does
// the best-guess fault address fall in?
//
// Only the "Linker script and memory map" section of the map file is
// consulted. Function entries are recognised as a ".text.<function>" section
// followed by the line giving the load address and the object file.
package mapfile

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jetsetilly/faultline/curated"
	"github.com/jetsetilly/faultline/logger"
)

// Function is a single function entry parsed from the map file.
type Function struct {
	Name    string
	Address uint32
	ObjFile string
}

// MapFile contains the parsed function entries, in address order.
type MapFile struct {
	program []Function
}

// sentinal errors returned by the mapfile package
const (
	NotAMapFile    = "mapfile: not a gcc map file (no memory map section)"
	ProcessingLine = "mapfile: processing error: %v"
)

// NewMapFile parses map file data from an io.Reader. Returns a new instance
// of MapFile or any errors.
func NewMapFile(r io.Reader) (*MapFile, error) {
	mf := &MapFile{
		program: make([]Function, 0, 32),
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, curated.Errorf(ProcessingLine, err)
	}
	lines := strings.Split(string(data), "\n")

	// find the start of the section that we're interested in. everything
	// before it is of no interest or misleading
	section := -1
	for i, l := range lines {
		if l == "Linker script and memory map" {
			section = i
			break // for loop
		}
	}
	if section == -1 {
		return nil, curated.Errorf(NotAMapFile)
	}
	lines = lines[section:]

	var functionName string

	for _, l := range lines {
		flds := strings.Fields(l)
		if len(flds) == 0 {
			continue // for loop
		}

		if strings.HasSuffix(l, ".o") {
			// found an .o file. if a function name has been found recently
			// then add a new entry

			if functionName != "" {
				n := strings.LastIndex(l, " ")
				objFile := l[n+1:]

				address, err := strconv.ParseUint(flds[0], 0, 64)
				if err != nil {
					return nil, curated.Errorf(ProcessingLine, err)
				}

				mf.program = append(mf.program, Function{
					Name:    functionName,
					Address: uint32(address),
					ObjFile: objFile,
				})

				functionName = ""
			}
		} else if len(flds) == 1 && strings.HasPrefix(flds[0], ".text.") {
			functionName = flds[0][6:]

			// special condition for main function
			if functionName == "startup.main" {
				functionName = "main"
			}
		}
	}

	return mf, nil
}

// Load parses the map file at the given path.
func Load(path string) (*MapFile, error) {
	fl, err := os.Open(path)
	if err != nil {
		return nil, curated.Errorf("mapfile: %v", err)
	}
	defer fl.Close()

	mf, err := NewMapFile(fl)
	if err != nil {
		return nil, err
	}

	logger.Logf(logger.Allow, "mapfile", "%s: %d functions", path, len(mf.program))

	return mf, nil
}

// FindFunction returns the function the supplied address falls in. Returns
// false if the address is before the first function in the map.
func (mf *MapFile) FindFunction(addr uint32) (Function, bool) {
	var found Function
	var ok bool

	for _, e := range mf.program {
		if addr < e.Address {
			break // for loop
		}
		found = e
		ok = true
	}

	return found, ok
}
