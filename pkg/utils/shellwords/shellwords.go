// Package shellwords splits argv-style field values into words, handling
// quotes and backslash escapes the way a POSIX shell tokenizes a command
// line. It is used for list-typed configuration overrides supplied as a
// single string.
package shellwords

import (
	"errors"
	"strings"
)

var (
	// ErrUnclosedQuote is returned when a quote is never closed
	ErrUnclosedQuote = errors.New("unclosed quote in value")

	// ErrTrailingEscape is returned when the value ends with a bare backslash
	ErrTrailingEscape = errors.New("trailing escape character in value")
)

// Split tokenizes a value into words.
//
// Rules:
//   - Words are separated by runs of spaces and tabs
//   - Single quotes preserve everything literally
//   - Double quotes preserve everything except backslash-escaped quotes
//   - A backslash outside single quotes escapes the next character
//   - Empty input yields no words; quoted empty strings yield empty words
func Split(value string) ([]string, error) {
	words := []string{}
	var current strings.Builder
	inWord := false
	quote := rune(0)

	runes := []rune(value)
	for i := 0; i < len(runes); i++ {
		ch := runes[i]

		if ch == '\\' && quote != '\'' {
			if i+1 >= len(runes) {
				return nil, ErrTrailingEscape
			}
			i++
			current.WriteRune(runes[i])
			inWord = true
			continue
		}

		switch {
		case quote != 0:
			if ch == quote {
				quote = 0
			} else {
				current.WriteRune(ch)
			}
		case ch == '\'' || ch == '"':
			quote = ch
			inWord = true
		case ch == ' ' || ch == '\t':
			if inWord {
				words = append(words, current.String())
				current.Reset()
				inWord = false
			}
		default:
			current.WriteRune(ch)
			inWord = true
		}
	}

	if quote != 0 {
		return nil, ErrUnclosedQuote
	}
	if inWord {
		words = append(words, current.String())
	}

	return words, nil
}

// Join renders words as a single value that Split parses back into the same
// words. Words containing whitespace, quotes, or backslashes are
// double-quoted with escapes.
func Join(words []string) string {
	parts := make([]string, len(words))
	for i, w := range words {
		parts[i] = quoteWord(w)
	}
	return strings.Join(parts, " ")
}

func quoteWord(w string) string {
	if w != "" && !strings.ContainsAny(w, " \t'\"\\") {
		return w
	}
	var b strings.Builder
	b.WriteByte('"')
	for _, ch := range w {
		if ch == '"' || ch == '\\' {
			b.WriteByte('\\')
		}
		b.WriteRune(ch)
	}
	b.WriteByte('"')
	return b.String()
}
