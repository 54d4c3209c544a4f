package engine

import (
	"fmt"

	"github.com/marionette-io/fetch/pkgs/errors"
	"github.com/marionette-io/fetch/pkgs/gpio"
	"github.com/marionette-io/fetch/pkgs/terminals"
)

// helpHandler serves "?" and "help": it ignores its tokens, prints the
// help text of every registered command and always succeeds.
type helpHandler struct{}

func (helpHandler) Execute(e *Engine, _, _ []string) error {
	fmt.Fprintf(e.out, "Fetch command help\r\n")
	for i := range e.table {
		if e.table[i].Help != "" {
			fmt.Fprintf(e.out, "%s\r\n", e.table[i].Help)
		}
	}
	return nil
}

// resetHandler serves "resetpins": it ignores its tokens and returns
// every pin to the reset configuration.
type resetHandler struct{}

func (resetHandler) Execute(e *Engine, _, _ []string) error {
	fmt.Fprintf(e.out, "resetting pins\r\n")
	return e.driver.ResetAll()
}

// notImplementedHandler serves the command families that are registered
// terminals but have no implementation yet (adc, spi, i2c).
type notImplementedHandler struct{}

func (notImplementedHandler) Execute(_ *Engine, cmd, _ []string) error {
	return errors.Newf(errors.ErrNotImplemented,
		"%s is not implemented", token(cmd, posKeyword))
}

// gpioHandler validates the gpio subcommand, port and pin tokens, then
// performs the requested pin operation through the driver.
type gpioHandler struct{}

func (gpioHandler) Execute(e *Engine, cmd, data []string) error {
	idx, ok := terminals.GpioSubcommands.Match(token(cmd, posAction))
	if !ok {
		return errors.Newf(errors.ErrUnknownSubcommand,
			"unknown gpio subcommand %q", token(cmd, posAction))
	}
	port, err := gpio.ParsePort(token(cmd, posPort))
	if err != nil {
		return err
	}
	pin, err := gpio.ParsePin(token(cmd, posPin))
	if err != nil {
		return err
	}

	switch terminals.GpioSubcommands.Entry(idx) {
	case "get":
		value, err := e.driver.Read(port, pin)
		if err != nil {
			return err
		}
		fmt.Fprintf(e.out, "%d\r\n", value)
		return nil
	case "set":
		return e.driver.Set(port, pin)
	case "clear":
		return e.driver.Clear(port, pin)
	case "configure":
		dirTok := token(cmd, posDirection)
		senseTok := token(cmd, posSense)
		if dirTok == "" || senseTok == "" {
			return errors.New(errors.ErrMissingArgument,
				"configure requires a direction and a sense")
		}
		dir, err := gpio.ParseDirection(dirTok)
		if err != nil {
			return err
		}
		sense, err := gpio.ParseSense(senseTok)
		if err != nil {
			return err
		}
		return e.driver.Configure(port, pin, dir, sense)
	}
	// Subcommands added to the terminal set before they grow a branch
	// here land in the same bucket as the unimplemented families.
	return errors.Newf(errors.ErrNotImplemented,
		"gpio %s is not implemented", terminals.GpioSubcommands.Entry(idx))
}
