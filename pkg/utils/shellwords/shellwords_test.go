package shellwords

import (
	"errors"
	"reflect"
	"testing"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "empty string",
			input:    "",
			expected: []string{},
		},
		{
			name:     "single word",
			input:    "myapp",
			expected: []string{"myapp"},
		},
		{
			name:     "multiple words",
			input:    "myapp --flag value",
			expected: []string{"myapp", "--flag", "value"},
		},
		{
			name:     "extra whitespace",
			input:    "  myapp \t --flag  ",
			expected: []string{"myapp", "--flag"},
		},
		{
			name:     "double quotes",
			input:    `myapp "arg with spaces"`,
			expected: []string{"myapp", "arg with spaces"},
		},
		{
			name:     "single quotes",
			input:    `myapp 'arg with spaces'`,
			expected: []string{"myapp", "arg with spaces"},
		},
		{
			name:     "escaped space",
			input:    `arg\ with\ spaces`,
			expected: []string{"arg with spaces"},
		},
		{
			name:     "escaped quote in double quotes",
			input:    `"say \"hi\""`,
			expected: []string{`say "hi"`},
		},
		{
			name:     "backslash literal in single quotes",
			input:    `'a\b'`,
			expected: []string{`a\b`},
		},
		{
			name:     "quoted empty word",
			input:    `myapp ""`,
			expected: []string{"myapp", ""},
		},
		{
			name:     "adjacent quoted segments",
			input:    `pre"mid"post`,
			expected: []string{"premidpost"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Split(tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("Split(%q) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestSplitErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"unclosed double quote", `myapp "oops`, ErrUnclosedQuote},
		{"unclosed single quote", `myapp 'oops`, ErrUnclosedQuote},
		{"trailing escape", `myapp \`, ErrTrailingEscape},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Split(tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Split(%q) error = %v, want %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

// TestJoinRoundTrip verifies Split(Join(words)) == words for awkward inputs.
func TestJoinRoundTrip(t *testing.T) {
	tests := [][]string{
		{},
		{"myapp"},
		{"myapp", "--flag", "value"},
		{"arg with spaces"},
		{""},
		{`quote"inside`},
		{`back\slash`},
		{"tab\there"},
	}

	for _, words := range tests {
		joined := Join(words)
		got, err := Split(joined)
		if err != nil {
			t.Fatalf("Split(Join(%q)) = error %v", words, err)
		}
		if !reflect.DeepEqual(got, words) {
			t.Errorf("Split(Join(%q)) = %q (joined as %q)", words, got, joined)
		}
	}
}
