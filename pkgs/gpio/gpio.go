// Package gpio defines the pin-driver contract the interpreter dispatches
// into, and the resolution of textual port/pin/direction/sense names to
// their domain values. The interpreter never touches hardware registers;
// everything physical lives behind the Driver interface.
package gpio

import (
	"github.com/marionette-io/fetch/pkgs/errors"
	"github.com/marionette-io/fetch/pkgs/terminals"
)

// Port identifies one GPIO bank, PortA through PortI.
type Port int

const (
	PortA Port = iota
	PortB
	PortC
	PortD
	PortE
	PortF
	PortG
	PortH
	PortI
)

func (p Port) String() string {
	if int(p) < 0 || int(p) >= terminals.Ports.Len() {
		return "port(invalid)"
	}
	return terminals.Ports.Entry(int(p))
}

// Pin identifies one pin within a port, Pin0 through Pin15.
type Pin int

const (
	Pin0 Pin = iota
	Pin1
	Pin2
	Pin3
	Pin4
	Pin5
	Pin6
	Pin7
	Pin8
	Pin9
	Pin10
	Pin11
	Pin12
	Pin13
	Pin14
	Pin15
)

func (p Pin) String() string {
	if int(p) < 0 || int(p) >= terminals.Pins.Len() {
		return "pin(invalid)"
	}
	return terminals.Pins.Entry(int(p))
}

// Direction configures a pin as an input or an output.
type Direction int

const (
	Input Direction = iota
	Output
)

func (d Direction) String() string {
	if int(d) < 0 || int(d) >= terminals.Directions.Len() {
		return "direction(invalid)"
	}
	return terminals.Directions.Entry(int(d))
}

// Sense configures the electrical sense of a pin.
type Sense int

const (
	PullUp Sense = iota
	PullDown
	Floating
	Analog
)

func (s Sense) String() string {
	if int(s) < 0 || int(s) >= terminals.Senses.Len() {
		return "sense(invalid)"
	}
	return terminals.Senses.Entry(int(s))
}

// Driver is the collaborator that performs the actual pin operations.
// Calls are synchronous and non-blocking; if the underlying hardware
// needs mutual exclusion across interpreter instances, the Driver owns
// that locking.
type Driver interface {
	Read(port Port, pin Pin) (int, error)
	Set(port Port, pin Pin) error
	Clear(port Port, pin Pin) error
	Configure(port Port, pin Pin, dir Direction, sense Sense) error
	ResetAll() error
}

// ParsePort resolves a port token ("porta".."porti") to its Port value.
// Terminal set order matches the constant order, so the match index is
// the domain value.
func ParsePort(tok string) (Port, error) {
	i, ok := terminals.Ports.Match(tok)
	if !ok {
		return 0, errors.Newf(errors.ErrUnknownPort, "unknown port %q", tok)
	}
	return Port(i), nil
}

// ParsePin resolves a pin token ("pin0".."pin15") to its Pin value.
func ParsePin(tok string) (Pin, error) {
	i, ok := terminals.Pins.Match(tok)
	if !ok {
		return 0, errors.Newf(errors.ErrUnknownPin, "unknown pin %q", tok)
	}
	return Pin(i), nil
}

// ParseDirection resolves "input" or "output".
func ParseDirection(tok string) (Direction, error) {
	i, ok := terminals.Directions.Match(tok)
	if !ok {
		return 0, errors.Newf(errors.ErrUnknownDirection, "unknown direction %q", tok)
	}
	return Direction(i), nil
}

// ParseSense resolves "pullup", "pulldown", "floating" or "analog".
func ParseSense(tok string) (Sense, error) {
	i, ok := terminals.Senses.Match(tok)
	if !ok {
		return 0, errors.Newf(errors.ErrUnknownSense, "unknown sense %q", tok)
	}
	return Sense(i), nil
}
