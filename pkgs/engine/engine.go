// Package engine builds the Fetch dispatch table and evaluates input
// lines against a GPIO driver. The table is built once from the command
// terminal set and is read-only afterwards; evaluation is synchronous
// and run-to-completion per line.
package engine

import (
	"fmt"
	"io"

	"github.com/marionette-io/fetch/pkgs/errors"
	"github.com/marionette-io/fetch/pkgs/gpio"
	"github.com/marionette-io/fetch/pkgs/terminals"
	"github.com/marionette-io/fetch/pkgs/tokenizer"
)

// Token positions within a command segment.
const (
	posKeyword = iota
	posAction
	posPort
	posPin
	posDirection
	posSense
)

// Handler executes one command family with the tokenized command and
// data segments. A nil return means the line succeeded.
type Handler interface {
	Execute(e *Engine, cmd, data []string) error
}

// Descriptor describes one dispatchable command: its keyword, whether it
// is enabled, how many data bytes it accepts, its help text and the
// handler bound to it.
type Descriptor struct {
	Keyword      string
	Enabled      bool
	MaxDataBytes int
	Help         string
	Handler      Handler
}

// Engine holds the dispatch table, the GPIO collaborator and the sink
// diagnostics are written to.
type Engine struct {
	driver gpio.Driver
	out    io.Writer
	table  []Descriptor
}

// New builds an engine with the default command dictionary. The table
// has exactly one entry per command terminal, in terminal order.
func New(driver gpio.Driver, out io.Writer) *Engine {
	e := &Engine{driver: driver, out: out}
	for _, keyword := range terminals.Commands.Entries() {
		e.table = append(e.table, defaultDescriptor(keyword))
	}
	return e
}

func defaultDescriptor(keyword string) Descriptor {
	d := Descriptor{Keyword: keyword, Enabled: true, Handler: notImplementedHandler{}}
	switch keyword {
	case "?", "help":
		d.Handler = helpHandler{}
	case "gpio":
		d.Handler = gpioHandler{}
		d.Help = "GPIO:\tgpio:<get,set,clear,configure>:port:pin:<input,output>:<pullup,pulldown,floating,analog>"
	case "resetpins":
		d.Handler = resetHandler{}
		d.Help = "RESETPINS:\tresetpins"
	case "adc":
		d.Help = "ADC:\tadc:<conf_adc1,start,stop>:<profile,oneshot,continuous,reset,vref_mv>"
	}
	return d
}

// Eval tokenizes and dispatches one input line, writing diagnostics to
// the engine's sink. It reports whether the line succeeded. Blank lines
// succeed without dispatching.
func (e *Engine) Eval(line string) bool {
	st, err := tokenizer.Tokenize(line)
	if err != nil {
		e.report(err)
		return false
	}
	if st.Empty() {
		return true
	}
	if err := e.Dispatch(st); err != nil {
		e.report(err)
		return false
	}
	return true
}

// Dispatch resolves the command keyword against the command terminal set
// and invokes the bound handler. Data bytes are validated against the
// descriptor before the handler runs.
func (e *Engine) Dispatch(st *tokenizer.Statement) error {
	if st.Empty() {
		return nil
	}
	idx, ok := terminals.Commands.Match(st.Command[posKeyword])
	if !ok {
		return errors.Newf(errors.ErrUnknownCommand,
			"unrecognized command %q", st.Command[posKeyword])
	}
	d := &e.table[idx]
	if !d.Enabled {
		return errors.Newf(errors.ErrNotImplemented, "%s is disabled", d.Keyword)
	}
	if len(st.Data) > d.MaxDataBytes {
		return errors.Newf(errors.ErrTooManyTokens,
			"%s accepts at most %d data bytes, got %d",
			d.Keyword, d.MaxDataBytes, len(st.Data))
	}
	if err := validateData(st.Data); err != nil {
		return err
	}
	return d.Handler.Execute(e, st.Command, st.Data)
}

// validateData checks every data token is a two-character byte constant
// over the digit terminals.
func validateData(data []string) error {
	for _, b := range data {
		if len(b) != 2 || !terminals.Digits.Contains(b[:1]) || !terminals.Digits.Contains(b[1:]) {
			return errors.Newf(errors.ErrSyntax, "malformed byte constant %q", b)
		}
	}
	return nil
}

func (e *Engine) report(err error) {
	fmt.Fprintf(e.out, "error: %v\r\n", err)
}

// token returns the command token at pos, or "" when the segment is too
// short. Matching "" against a terminal set always misses, so absent
// tokens surface as the corresponding Unknown* failure.
func token(toks []string, pos int) string {
	if pos < len(toks) {
		return toks[pos]
	}
	return ""
}
