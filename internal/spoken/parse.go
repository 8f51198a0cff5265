// Package spoken turns typed or transcribed quantities such as "forty two",
// "one hundred and five" or "17" into integers.
package spoken

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrNotANumber is the only failure Resolve reports.
var ErrNotANumber = errors.New("not a number")

// Resolve is Parse with an error instead of ok=false. The error wraps
// ErrNotANumber and quotes the input.
func Resolve(text string) (int, error) {
	if n, ok := Parse(text); ok {
		return n, nil
	}
	return 0, fmt.Errorf("parse %q: %w", text, ErrNotANumber)
}

// Parse returns the value of text and ok=true, or 0 and ok=false when text
// is not a number. Accepted forms:
//   - a plain run of ASCII digits ("0042")
//   - a single number word ("seventeen")
//   - a tens word plus a ones word, optionally joined by "and" ("twenty and one")
//   - a ones word, "hundred", and an optional remainder below 100 ("two hundred and six")
//
// Matching ignores case and extra whitespace. Any ',', '.' or '-' rejects the input.
func Parse(text string) (int, bool) {
	if strings.TrimSpace(text) == "" {
		return 0, false
	}
	if strings.ContainsAny(text, ",.-") {
		return 0, false
	}
	if isDigits(text) {
		n, err := strconv.Atoi(text)
		if err != nil {
			// overflows int
			return 0, false
		}
		return n, true
	}
	return parseWords(strings.Fields(strings.ToLower(text)))
}

func parseWords(tokens []string) (int, bool) {
	if len(tokens) == 1 && tokens[0] != Hundred {
		return Lookup(tokens[0])
	}

	for i, tok := range tokens {
		if tok == Hundred {
			return parseHundreds(tokens, i)
		}
	}

	var first, last string
	switch {
	case len(tokens) == 2:
		first, last = tokens[0], tokens[1]
	case len(tokens) == 3 && tokens[1] == And:
		first, last = tokens[0], tokens[2]
	default:
		return 0, false
	}
	tens, ok := inRange(first, 20, 90)
	if !ok || tens%10 != 0 {
		return 0, false
	}
	ones, ok := inRange(last, 1, 9)
	if !ok {
		return 0, false
	}
	return tens + ones, true
}

// parseHundreds handles "<ones> hundred [and] [remainder]" where at is the
// index of the first "hundred" token.
func parseHundreds(tokens []string, at int) (int, bool) {
	if at != 1 {
		return 0, false
	}
	mult, ok := inRange(tokens[0], 0, 9)
	if !ok {
		return 0, false
	}
	total := mult * 100

	rest := tokens[at+1:]
	if len(rest) == 0 {
		return total, true
	}
	if rest[0] == And {
		rest = rest[1:]
	}
	below, ok := Parse(strings.Join(rest, " "))
	if !ok || below >= 100 {
		return 0, false
	}
	return total + below, true
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return s != ""
}
