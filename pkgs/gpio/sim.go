package gpio

import (
	"fmt"
	"sync"

	"github.com/marionette-io/fetch/pkgs/terminals"
)

type pinKey struct {
	port Port
	pin  Pin
}

type pinState struct {
	value int
	dir   Direction
	sense Sense
}

// Simulator is an in-memory Driver. The CLI runs against it when no real
// hardware is attached, and tests use it to observe pin state. A pin that
// was never set or configured reads 0 and reports the zero configuration
// (input, pullup).
type Simulator struct {
	mu   sync.Mutex
	pins map[pinKey]pinState
}

// NewSimulator returns a Simulator with every pin in its reset state.
func NewSimulator() *Simulator {
	return &Simulator{pins: make(map[pinKey]pinState)}
}

func (s *Simulator) key(port Port, pin Pin) (pinKey, error) {
	if int(port) < 0 || int(port) >= terminals.Ports.Len() {
		return pinKey{}, fmt.Errorf("gpio: port %d out of range", int(port))
	}
	if int(pin) < 0 || int(pin) >= terminals.Pins.Len() {
		return pinKey{}, fmt.Errorf("gpio: pin %d out of range", int(pin))
	}
	return pinKey{port, pin}, nil
}

// Read returns the current value of the pin.
func (s *Simulator) Read(port Port, pin Pin) (int, error) {
	k, err := s.key(port, pin)
	if err != nil {
		return 0, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pins[k].value, nil
}

// Set drives the pin high.
func (s *Simulator) Set(port Port, pin Pin) error {
	return s.write(port, pin, 1)
}

// Clear drives the pin low.
func (s *Simulator) Clear(port Port, pin Pin) error {
	return s.write(port, pin, 0)
}

func (s *Simulator) write(port Port, pin Pin, value int) error {
	k, err := s.key(port, pin)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.pins[k]
	st.value = value
	s.pins[k] = st
	return nil
}

// Configure records the pin's direction and sense, preserving its value.
func (s *Simulator) Configure(port Port, pin Pin, dir Direction, sense Sense) error {
	k, err := s.key(port, pin)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.pins[k]
	st.dir = dir
	st.sense = sense
	s.pins[k] = st
	return nil
}

// ResetAll returns every pin to its reset state.
func (s *Simulator) ResetAll() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pins = make(map[pinKey]pinState)
	return nil
}

// PinConfig reports the recorded direction and sense of a pin. Test hook.
func (s *Simulator) PinConfig(port Port, pin Pin) (Direction, Sense) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.pins[pinKey{port, pin}]
	return st.dir, st.sense
}
