package tokenizer

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/marionette-io/fetch/pkgs/errors"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  *Statement
	}{
		{
			name:  "command only",
			input: "help\n",
			want:  &Statement{Command: []string{"help"}},
		},
		{
			name:  "gpio set",
			input: "gpio:set:portd:pin7\n",
			want:  &Statement{Command: []string{"gpio", "set", "portd", "pin7"}},
		},
		{
			name:  "gpio configure",
			input: "gpio:configure:portd:pin7:input:floating\n",
			want:  &Statement{Command: []string{"gpio", "configure", "portd", "pin7", "input", "floating"}},
		},
		{
			name:  "case preserved for downstream folding",
			input: "GPIO:SET:PORTD:PIN7\n",
			want:  &Statement{Command: []string{"GPIO", "SET", "PORTD", "PIN7"}},
		},
		{
			name:  "blank line",
			input: "",
			want:  &Statement{},
		},
		{
			name:  "newline only",
			input: "\r\n",
			want:  &Statement{},
		},
		{
			name:  "whitespace stripped from command segment",
			input: "gpio : set :\tportd : pin7\n",
			want:  &Statement{Command: []string{"gpio", "set", "portd", "pin7"}},
		},
		{
			name:  "consecutive colons collapse",
			input: "gpio::set\n",
			want:  &Statement{Command: []string{"gpio", "set"}},
		},
		{
			name:  "data segment",
			input: "adc:sample(0a 1b 2c)\n",
			want: &Statement{
				Command: []string{"adc", "sample"},
				Data:    []string{"0a", "1b", "2c"},
				HasData: true,
			},
		},
		{
			name:  "empty parenthesis is present but empty data",
			input: "gpio:get:porta:pin0()\n",
			want: &Statement{
				Command: []string{"gpio", "get", "porta", "pin0"},
				HasData: true,
			},
		},
		{
			name:  "data spaces collapse",
			input: "adc:sample(0a  1b)\n",
			want: &Statement{
				Command: []string{"adc", "sample"},
				Data:    []string{"0a", "1b"},
				HasData: true,
			},
		},
		{
			name:  "whitespace-only command segment is a no-op",
			input: "  (0a)\n",
			want:  &Statement{},
		},
		{
			name:  "maximum command tokens accepted",
			input: "a:b:c:d:e:f:g:h\n",
			want:  &Statement{Command: []string{"a", "b", "c", "d", "e", "f", "g", "h"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Tokenize(tt.input)
			if err != nil {
				t.Fatalf("Tokenize(%q) unexpected error: %v", tt.input, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Tokenize(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestTokenizeErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantKind string
	}{
		{
			name:     "line begins with data segment",
			input:    "(\n",
			wantKind: errors.ErrSyntax,
		},
		{
			name:     "data without command",
			input:    "(0a 1b)\n",
			wantKind: errors.ErrSyntax,
		},
		{
			name:     "too many command tokens",
			input:    "a:b:c:d:e:f:g:h:i\n",
			wantKind: errors.ErrTooManyTokens,
		},
		{
			name:     "too many data tokens",
			input:    "adc:sample(" + strings.TrimSpace(strings.Repeat("0a ", MaxDataTokens+1)) + ")\n",
			wantKind: errors.ErrTooManyTokens,
		},
		{
			name:     "line too long",
			input:    strings.Repeat("a", MaxLineChars+1) + "\n",
			wantKind: errors.ErrSyntax,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Tokenize(tt.input)
			if err == nil {
				t.Fatalf("Tokenize(%q) = %+v, want error", tt.input, got)
			}
			if kind := errors.KindOf(err); kind != tt.wantKind {
				t.Errorf("Tokenize(%q) error kind = %q, want %q (err: %v)",
					tt.input, kind, tt.wantKind, err)
			}
		})
	}
}

// The whole command segment is discarded on overflow, never truncated to
// the first MaxCommandTokens tokens.
func TestTokenizeOverflowDiscardsSegment(t *testing.T) {
	got, err := Tokenize("a:b:c:d:e:f:g:h:i\n")
	if err == nil {
		t.Fatalf("expected overflow error, got %+v", got)
	}
	if got != nil {
		t.Errorf("overflow returned partial statement %+v, want nil", got)
	}
}

func TestTokenizeIsDeterministic(t *testing.T) {
	const line = "gpio:configure:portd:pin7:input:floating\n"
	first, err := Tokenize(line)
	if err != nil {
		t.Fatalf("Tokenize(%q) unexpected error: %v", line, err)
	}
	second, err := Tokenize(line)
	if err != nil {
		t.Fatalf("Tokenize(%q) unexpected error: %v", line, err)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("repeated Tokenize disagreed (-first +second):\n%s", diff)
	}
}
