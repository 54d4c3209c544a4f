package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/marionette-io/fetch/pkgs/engine"
	"github.com/marionette-io/fetch/pkgs/gpio"
	"github.com/marionette-io/fetch/pkgs/tokenizer"
)

func main() {
	var (
		file       string
		configFile string
	)

	rootCmd := &cobra.Command{
		Use:   "fetch",
		Short: "Line-oriented interpreter for the Fetch device-control language",
		Long: "Reads Fetch statements one line at a time (e.g. " +
			"\"gpio:set:portd:pin7\") and dispatches them to a GPIO driver. " +
			"Runs against an in-memory pin simulator.",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(file, configFile)
		},
	}

	rootCmd.Flags().StringVarP(&file, "file", "f", "-", "Script of Fetch statements, - for stdin")
	rootCmd.Flags().StringVarP(&configFile, "config", "c", "", "Command dictionary overrides (YAML)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(file, configFile string) error {
	reader, closeFunc, err := openInput(file)
	if err != nil {
		return err
	}
	defer func() { _ = closeFunc() }()

	eng := engine.New(gpio.NewSimulator(), os.Stdout)
	if configFile != "" {
		cfg, err := engine.LoadConfigFile(configFile)
		if err != nil {
			return err
		}
		if err := eng.Apply(cfg); err != nil {
			return err
		}
	}

	interactive := file == "-" && isatty.IsTerminal(os.Stdin.Fd())

	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, tokenizer.MaxLineChars*2), tokenizer.MaxLineChars*2)
	failures := 0
	for {
		if interactive {
			fmt.Print("fetch> ")
		}
		if !scanner.Scan() {
			break
		}
		if !eng.Eval(scanner.Text()) {
			failures++
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	if interactive {
		fmt.Println()
	}
	if failures > 0 && !interactive {
		return fmt.Errorf("%d statement(s) failed", failures)
	}
	return nil
}

// openInput handles the input modes: explicit stdin with -f -, or a
// script file.
func openInput(file string) (io.Reader, func() error, error) {
	if file == "-" {
		return os.Stdin, func() error { return nil }, nil
	}
	f, err := os.Open(file)
	if err != nil {
		return nil, nil, fmt.Errorf("error opening file %s: %w", file, err)
	}
	return f, f.Close, nil
}
