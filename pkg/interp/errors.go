package interp

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// Token errors 🔤
	ErrInvalidToken = errors.New("❌ invalid token")

	// Code errors 🔢
	ErrInvalidCode = errors.New("❌ invalid code")
)

// invalidToken reports a string that matches no variant of an enumeration.
// The message always carries the offending input and the full accepted set
// so failures are self-explanatory.
func invalidToken(raw, what string, valid []string) error {
	return fmt.Errorf("%w: %q is not a valid %s (valid: %s)",
		ErrInvalidToken, raw, what, strings.Join(valid, ", "))
}

// invalidCode reports an integer with no corresponding variant.
func invalidCode(code int, what string) error {
	return fmt.Errorf("%w: %d is not a valid %s code", ErrInvalidCode, code, what)
}
