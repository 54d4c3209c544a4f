package engine

import (
	"bytes"
	"strings"
	"testing"

	"github.com/marionette-io/fetch/pkgs/errors"
)

func TestLoadConfig(t *testing.T) {
	const doc = `
commands:
  gpio:
    enabled: false
  adc:
    help: "ADC:\tadc (disabled on this board)"
    max_data_bytes: 4
`
	cfg, err := LoadConfig(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cc, ok := cfg.Commands["gpio"]; !ok || cc.Enabled == nil || *cc.Enabled {
		t.Errorf("gpio override = %+v, want enabled=false", cfg.Commands["gpio"])
	}
	if cc, ok := cfg.Commands["adc"]; !ok || cc.MaxDataBytes == nil || *cc.MaxDataBytes != 4 {
		t.Errorf("adc override = %+v, want max_data_bytes=4", cfg.Commands["adc"])
	}
}

func TestLoadConfigRejectsUnknownFields(t *testing.T) {
	const doc = `
commands:
  gpio:
    enabld: false
`
	if _, err := LoadConfig(strings.NewReader(doc)); err == nil {
		t.Error("misspelled field accepted")
	}
}

func TestApplyDisablesCommand(t *testing.T) {
	e, driver, _ := newTestEngine()
	disabled := false
	if err := e.Apply(&Config{Commands: map[string]CommandConfig{
		"gpio": {Enabled: &disabled},
	}}); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	err := dispatchErr(t, e, "gpio:set:porta:pin0\n")
	if !errors.IsKind(err, errors.ErrNotImplemented) {
		t.Errorf("disabled command error = %v, want kind %s", err, errors.ErrNotImplemented)
	}
	if len(driver.calls) != 0 {
		t.Errorf("disabled command reached the collaborator: %+v", driver.calls)
	}
}

func TestApplyOverridesHelp(t *testing.T) {
	driver := &recordingDriver{}
	out := &bytes.Buffer{}
	e := New(driver, out)

	help := "GPIO:\tsee the board manual"
	if err := e.Apply(&Config{Commands: map[string]CommandConfig{
		"gpio": {Help: &help},
	}}); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if !e.Eval("help\n") {
		t.Fatal("help failed")
	}
	if !strings.Contains(out.String(), "see the board manual") {
		t.Errorf("help output missing override: %q", out.String())
	}
}

func TestApplyRejectsUnknownCommand(t *testing.T) {
	e, _, _ := newTestEngine()
	enabled := true
	err := e.Apply(&Config{Commands: map[string]CommandConfig{
		"warp": {Enabled: &enabled},
	}})
	if err == nil {
		t.Error("config naming unknown command accepted")
	}
}
