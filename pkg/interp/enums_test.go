package interp

import (
	"errors"
	"strings"
	"testing"
)

// TestEnumRoundTrip verifies parse(serialize(v)) == v for every variant of
// every enumeration, driven by the same token tables the codecs use.
func TestEnumRoundTrip(t *testing.T) {
	t.Run("interpreter profile", func(t *testing.T) {
		for token, want := range profileTokens {
			got, err := ParseInterpreterProfile(token)
			if err != nil {
				t.Fatalf("unexpected error for %q: %v", token, err)
			}
			if got != want {
				t.Errorf("ParseInterpreterProfile(%q) = %v, want %v", token, got, want)
			}
			if got.String() != token {
				t.Errorf("String() = %q, want %q", got.String(), token)
			}
		}
	})

	t.Run("allocator", func(t *testing.T) {
		for token, want := range allocatorTokens {
			got, err := ParseAllocator(token)
			if err != nil {
				t.Fatalf("unexpected error for %q: %v", token, err)
			}
			if got != want || got.String() != token {
				t.Errorf("round-trip failed for %q: got %v (%q)", token, got, got.String())
			}
		}
	})

	t.Run("coerce c locale", func(t *testing.T) {
		for token, want := range coerceCLocaleTokens {
			got, err := ParseCoerceCLocale(token)
			if err != nil {
				t.Fatalf("unexpected error for %q: %v", token, err)
			}
			if got != want || got.String() != token {
				t.Errorf("round-trip failed for %q: got %v (%q)", token, got, got.String())
			}
		}
	})

	t.Run("bytes warning", func(t *testing.T) {
		for token, want := range bytesWarningTokens {
			got, err := ParseBytesWarning(token)
			if err != nil {
				t.Fatalf("unexpected error for %q: %v", token, err)
			}
			if got != want || got.String() != token {
				t.Errorf("round-trip failed for %q: got %v (%q)", token, got, got.String())
			}
		}
	})

	t.Run("check hash pycs mode", func(t *testing.T) {
		for token, want := range checkHashPycsTokens {
			got, err := ParseCheckHashPycsMode(token)
			if err != nil {
				t.Fatalf("unexpected error for %q: %v", token, err)
			}
			if got != want || got.String() != token {
				t.Errorf("round-trip failed for %q: got %v (%q)", token, got, got.String())
			}
		}
	})

	t.Run("memory allocator backend", func(t *testing.T) {
		for token, want := range memoryBackendTokens {
			got, err := ParseMemoryAllocatorBackend(token)
			if err != nil {
				t.Fatalf("unexpected error for %q: %v", token, err)
			}
			if got != want || got.String() != token {
				t.Errorf("round-trip failed for %q: got %v (%q)", token, got, got.String())
			}
		}
	})

	t.Run("multiprocessing start method", func(t *testing.T) {
		for token, want := range mpStartTokens {
			got, err := ParseMultiprocessingStartMethod(token)
			if err != nil {
				t.Fatalf("unexpected error for %q: %v", token, err)
			}
			if got != want || got.String() != token {
				t.Errorf("round-trip failed for %q: got %v (%q)", token, got, got.String())
			}
		}
	})

	t.Run("optimization level", func(t *testing.T) {
		for token, want := range optimizationTokens {
			got, err := ParseOptimizationLevel(token)
			if err != nil {
				t.Fatalf("unexpected error for %q: %v", token, err)
			}
			if got != want || got.String() != token {
				t.Errorf("round-trip failed for %q: got %v (%q)", token, got, got.String())
			}
		}
	})
}

// TestEnumRejection verifies every parser rejects unknown tokens with an
// error that names the input and the accepted set.
func TestEnumRejection(t *testing.T) {
	tests := []struct {
		name      string
		parse     func(string) error
		input     string
		wantValid string
	}{
		{
			name:      "profile",
			parse:     func(s string) error { _, err := ParseInterpreterProfile(s); return err },
			input:     "bogus",
			wantValid: "isolated, python",
		},
		{
			name:      "profile case sensitive",
			parse:     func(s string) error { _, err := ParseInterpreterProfile(s); return err },
			input:     "Isolated",
			wantValid: "isolated, python",
		},
		{
			name:      "allocator",
			parse:     func(s string) error { _, err := ParseAllocator(s); return err },
			input:     "pymalloc",
			wantValid: "py-malloc",
		},
		{
			name:      "coerce c locale lowercase",
			parse:     func(s string) error { _, err := ParseCoerceCLocale(s); return err },
			input:     "lc_ctype",
			wantValid: "C, LC_CTYPE",
		},
		{
			name:      "bytes warning",
			parse:     func(s string) error { _, err := ParseBytesWarning(s); return err },
			input:     "error",
			wantValid: "none, raise, warn",
		},
		{
			name:      "check hash pycs mode",
			parse:     func(s string) error { _, err := ParseCheckHashPycsMode(s); return err },
			input:     "sometimes",
			wantValid: "always, default, never",
		},
		{
			name:      "memory allocator backend",
			parse:     func(s string) error { _, err := ParseMemoryAllocatorBackend(s); return err },
			input:     "tcmalloc",
			wantValid: "default, jemalloc, mimalloc, rust, snmalloc",
		},
		{
			name:      "multiprocessing start method",
			parse:     func(s string) error { _, err := ParseMultiprocessingStartMethod(s); return err },
			input:     "thread",
			wantValid: "auto, fork, forkserver, none, spawn",
		},
		{
			name:      "optimization level",
			parse:     func(s string) error { _, err := ParseOptimizationLevel(s); return err },
			input:     "3",
			wantValid: "0, 1, 2",
		},
		{
			name:      "empty string",
			parse:     func(s string) error { _, err := ParseAllocator(s); return err },
			input:     "",
			wantValid: "not-set",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.parse(tt.input)
			if err == nil {
				t.Fatalf("expected error for %q, got none", tt.input)
			}
			if !errors.Is(err, ErrInvalidToken) {
				t.Errorf("error is not ErrInvalidToken: %v", err)
			}
			if !strings.Contains(err.Error(), tt.input) {
				t.Errorf("error %q does not mention input %q", err, tt.input)
			}
			if !strings.Contains(err.Error(), tt.wantValid) {
				t.Errorf("error %q does not list valid tokens %q", err, tt.wantValid)
			}
		})
	}
}

// TestBytesWarningFromCode verifies the saturating code mapping: 0 and 1 map
// exactly, everything else (negative included) clamps to raise.
func TestBytesWarningFromCode(t *testing.T) {
	tests := []struct {
		code int
		want BytesWarning
	}{
		{0, BytesWarningNone},
		{1, BytesWarningWarn},
		{2, BytesWarningRaise},
		{-5, BytesWarningRaise},
		{-1, BytesWarningRaise},
		{3, BytesWarningRaise},
		{1 << 30, BytesWarningRaise},
	}

	for _, tt := range tests {
		if got := BytesWarningFromCode(tt.code); got != tt.want {
			t.Errorf("BytesWarningFromCode(%d) = %v, want %v", tt.code, got, tt.want)
		}
	}
}

func TestAllocatorCodes(t *testing.T) {
	for token, v := range allocatorTokens {
		got, err := AllocatorFromCode(v.Code())
		if err != nil {
			t.Fatalf("unexpected error for %q (code %d): %v", token, v.Code(), err)
		}
		if got != v {
			t.Errorf("AllocatorFromCode(%d) = %v, want %v", v.Code(), got, v)
		}
	}

	for _, code := range []int{-1, 7, 100} {
		if _, err := AllocatorFromCode(code); !errors.Is(err, ErrInvalidCode) {
			t.Errorf("AllocatorFromCode(%d): expected ErrInvalidCode, got %v", code, err)
		}
	}
}

func TestCheckHashPycsModeCodes(t *testing.T) {
	for token, v := range checkHashPycsTokens {
		got, err := CheckHashPycsModeFromCode(v.Code())
		if err != nil {
			t.Fatalf("unexpected error for %q (code %d): %v", token, v.Code(), err)
		}
		if got != v {
			t.Errorf("CheckHashPycsModeFromCode(%d) = %v, want %v", v.Code(), got, v)
		}
	}

	for _, code := range []int{-1, 3} {
		if _, err := CheckHashPycsModeFromCode(code); !errors.Is(err, ErrInvalidCode) {
			t.Errorf("CheckHashPycsModeFromCode(%d): expected ErrInvalidCode, got %v", code, err)
		}
	}
}

func TestOptimizationLevelCodes(t *testing.T) {
	for _, level := range []OptimizationLevel{OptimizationZero, OptimizationOne, OptimizationTwo} {
		got, err := OptimizationLevelFromCode(level.Code())
		if err != nil {
			t.Fatalf("unexpected error for code %d: %v", level.Code(), err)
		}
		if got != level {
			t.Errorf("OptimizationLevelFromCode(%d) = %v, want %v", level.Code(), got, level)
		}
	}

	if _, err := OptimizationLevelFromCode(3); !errors.Is(err, ErrInvalidCode) {
		t.Errorf("expected ErrInvalidCode for code 3, got %v", err)
	}
}
