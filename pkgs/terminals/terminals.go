package terminals

import "strings"

// Set is an ordered, immutable collection of the valid terminal strings
// for one grammar slot. Sets are built once at startup and only read
// afterwards; the zero value is an empty set that matches nothing.
type Set struct {
	name    string
	entries []string
}

// NewSet builds a terminal set. The entries are copied so later mutation
// of the caller's slice cannot reach the set.
func NewSet(name string, entries ...string) Set {
	owned := make([]string, len(entries))
	copy(owned, entries)
	return Set{name: name, entries: owned}
}

// Name returns the grammar slot this set describes (e.g. "port").
func (s Set) Name() string { return s.name }

// Len returns the number of terminals in the set.
func (s Set) Len() int { return len(s.entries) }

// Entry returns the terminal at index i in its canonical spelling.
func (s Set) Entry(i int) string { return s.entries[i] }

// Entries returns a copy of the terminal list in order.
func (s Set) Entries() []string {
	out := make([]string, len(s.entries))
	copy(out, s.entries)
	return out
}

// Match scans the set for an entry equal to candidate under ASCII case
// folding and returns its index. Prefixes do not match: "config" is not
// "configure". A miss reports (-1, false) rather than an error.
func (s Set) Match(candidate string) (int, bool) {
	for i, entry := range s.entries {
		if strings.EqualFold(entry, candidate) {
			return i, true
		}
	}
	return -1, false
}

// Contains reports whether candidate names any terminal in the set.
func (s Set) Contains(candidate string) bool {
	_, ok := s.Match(candidate)
	return ok
}

// The Fetch grammar's terminal alphabet, one set per grammar position.
var (
	Commands = NewSet("command",
		"?", "help", "gpio", "adc", "spi", "i2c", "resetpins")

	GpioSubcommands = NewSet("gpio_subcommand",
		"get", "set", "clear", "configure")

	Directions = NewSet("direction", "input", "output")

	Senses = NewSet("sense", "pullup", "pulldown", "floating", "analog")

	Ports = NewSet("port",
		"porta", "portb", "portc", "portd", "porte",
		"portf", "portg", "porth", "porti")

	Pins = NewSet("pin",
		"pin0", "pin1", "pin2", "pin3", "pin4", "pin5", "pin6", "pin7",
		"pin8", "pin9", "pin10", "pin11", "pin12", "pin13", "pin14", "pin15")

	Digits = NewSet("digit",
		"0", "1", "2", "3", "4", "5", "6", "7", "8", "9",
		"a", "b", "c", "d", "e")
)
