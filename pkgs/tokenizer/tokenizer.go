package tokenizer

import (
	"strings"

	"github.com/marionette-io/fetch/pkgs/errors"
)

// Bounds of the line protocol. A statement that exceeds any of them is
// rejected whole, never truncated.
const (
	MaxLineChars     = 256
	MaxCommandTokens = 8
	MaxDataTokens    = 50
)

// Statement is the tokenized form of one input line: the colon-delimited
// command tokens and the optional parenthesized data tokens.
//
// HasData distinguishes a present-but-empty data segment "()" from a line
// with no parenthesis at all; handlers that require data care about the
// difference.
type Statement struct {
	Command []string
	Data    []string
	HasData bool
}

// Empty reports whether the line carried no command at all. Blank lines
// tokenize to an empty statement and are treated as a no-op by callers.
func (s *Statement) Empty() bool { return len(s.Command) == 0 }

// Tokenize splits one input line into a Statement. Each call allocates
// its own token storage, so concurrent callers never share buffers.
func Tokenize(line string) (*Statement, error) {
	line = strings.TrimRight(line, "\r\n")

	if len(line) > MaxLineChars {
		return nil, errors.Newf(errors.ErrSyntax,
			"line exceeds %d characters", MaxLineChars)
	}
	if strings.HasPrefix(line, "(") {
		return nil, errors.New(errors.ErrSyntax, "no command before data segment")
	}

	colonPart := line
	parenPart := ""
	hasData := false
	if i := strings.IndexByte(line, '('); i >= 0 {
		colonPart = line[:i]
		parenPart = line[i+1:]
		hasData = true
		if j := strings.IndexByte(parenPart, ')'); j >= 0 {
			parenPart = parenPart[:j]
		}
	}

	colonPart = stripSpaces(colonPart)
	if colonPart == "" {
		// Blank line (or whitespace-only command segment): a no-op,
		// even when a data segment follows.
		return &Statement{}, nil
	}

	command, err := splitBounded(colonPart, ':', MaxCommandTokens, "command")
	if err != nil {
		return nil, err
	}

	st := &Statement{Command: command, HasData: hasData}
	if hasData {
		st.Data, err = splitBounded(parenPart, ' ', MaxDataTokens, "data")
		if err != nil {
			return nil, err
		}
	}
	return st, nil
}

// stripSpaces removes every ASCII blank from the command segment, so
// "gpio : set" and "gpio:set" tokenize identically.
func stripSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if r == ' ' || r == '\t' {
			return -1
		}
		return r
	}, s)
}

// splitBounded splits s on sep, skipping empty fields so runs of the
// separator never yield empty tokens. Exceeding max discards the whole
// segment: the caller gets an error and no partial token list.
func splitBounded(s string, sep byte, max int, segment string) ([]string, error) {
	var toks []string
	for len(s) > 0 {
		var field string
		if i := strings.IndexByte(s, sep); i >= 0 {
			field, s = s[:i], s[i+1:]
		} else {
			field, s = s, ""
		}
		if field == "" {
			continue
		}
		if len(toks) == max {
			return nil, errors.Newf(errors.ErrTooManyTokens,
				"too many %s tokens (max %d)", segment, max)
		}
		toks = append(toks, field)
	}
	return toks, nil
}
