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

// Package serial opens the serial device a target board is attached to and
// puts it into raw mode, so that fault dumps arriving from the board are not
// mangled by the line discipline. It is a thin wrapper for
// "github.com/pkg/term/termios".
//
// The package does not configure the line speed. The device is assumed to
// have been set up already (with stty or similar) to match the target's UART.
package serial

import (
	"os"

	"github.com/jetsetilly/faultline/curated"
	"github.com/jetsetilly/faultline/logger"
	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// sentinal errors returned by the serial package
const (
	CannotOpen = "serial: cannot open %s: %v"
	NotATTY    = "serial: %s is not a terminal device: %v"
)

// Port is an open serial device in raw mode. It implements the io.ReadCloser
// interface. Closing the port restores the attributes the device had when it
// was opened.
type Port struct {
	device string
	f      *os.File

	// device attributes as they were before raw mode was set
	saved unix.Termios
}

// Open a serial device and put it into raw mode.
func Open(device string) (*Port, error) {
	f, err := os.OpenFile(device, os.O_RDWR|unix.O_NOCTTY, 0)
	if err != nil {
		return nil, curated.Errorf(CannotOpen, device, err)
	}

	p := &Port{
		device: device,
		f:      f,
	}

	if err := termios.Tcgetattr(f.Fd(), &p.saved); err != nil {
		f.Close()
		return nil, curated.Errorf(NotATTY, device, err)
	}

	raw := p.saved
	termios.Cfmakeraw(&raw)

	// block until at least one byte is available, with no inter-byte timer
	raw.Cc[unix.VMIN] = 1
	raw.Cc[unix.VTIME] = 0

	if err := termios.Tcsetattr(f.Fd(), termios.TCSANOW, &raw); err != nil {
		f.Close()
		return nil, curated.Errorf(NotATTY, device, err)
	}

	logger.Logf(logger.Allow, "serial", "%s open in raw mode", device)

	return p, nil
}

// Read implements the io.Reader interface.
func (p *Port) Read(b []byte) (int, error) {
	return p.f.Read(b)
}

// Close the device, restoring its original attributes.
func (p *Port) Close() error {
	_ = termios.Tcsetattr(p.f.Fd(), termios.TCSANOW, &p.saved)
	logger.Logf(logger.Allow, "serial", "%s closed", p.device)
	return p.f.Close()
}
