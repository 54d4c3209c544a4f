package engine

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config carries command-dictionary overrides: commands can be disabled,
// given different help text, or allowed a different data-byte budget.
type Config struct {
	Commands map[string]CommandConfig `yaml:"commands"`
}

// CommandConfig overrides one descriptor. Nil fields keep the default.
type CommandConfig struct {
	Enabled      *bool   `yaml:"enabled"`
	Help         *string `yaml:"help"`
	MaxDataBytes *int    `yaml:"max_data_bytes"`
}

// LoadConfig decodes a YAML command-dictionary config.
func LoadConfig(r io.Reader) (*Config, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var cfg Config
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// LoadConfigFile reads and decodes a YAML config file.
func LoadConfigFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening config: %w", err)
	}
	defer func() { _ = f.Close() }()
	return LoadConfig(f)
}

// Apply folds config overrides into the dispatch table. It must run
// before the first Eval; the table is read-only once evaluation starts.
// A config keyword that names no registered command is an error.
func (e *Engine) Apply(cfg *Config) error {
	for keyword, cc := range cfg.Commands {
		applied := false
		for i := range e.table {
			if e.table[i].Keyword != keyword {
				continue
			}
			if cc.Enabled != nil {
				e.table[i].Enabled = *cc.Enabled
			}
			if cc.Help != nil {
				e.table[i].Help = *cc.Help
			}
			if cc.MaxDataBytes != nil {
				e.table[i].MaxDataBytes = *cc.MaxDataBytes
			}
			applied = true
		}
		if !applied {
			return fmt.Errorf("config names unknown command %q", keyword)
		}
	}
	return nil
}
