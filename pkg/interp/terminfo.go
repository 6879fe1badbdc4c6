package interp

import (
	"fmt"
	"strings"
)

type terminfoKind int

const (
	terminfoDynamic terminfoKind = iota
	terminfoNone
	terminfoStatic
)

// TerminfoResolution defines how the terminfo database is resolved for the
// embedded interpreter. It has three shapes: dynamic resolution appropriate
// for the current OS, a no-op, and a static TERMINFO_DIRS value carried as
// an opaque payload.
type TerminfoResolution struct {
	kind terminfoKind
	dirs string
}

// TerminfoDynamic resolves the terminfo database using OS-appropriate
// behavior.
func TerminfoDynamic() TerminfoResolution {
	return TerminfoResolution{kind: terminfoDynamic}
}

// TerminfoNone does not attempt terminfo resolution at all.
func TerminfoNone() TerminfoResolution {
	return TerminfoResolution{kind: terminfoNone}
}

// TerminfoStatic uses dirs verbatim as the TERMINFO_DIRS value. The payload
// is not validated; it may be empty or contain colons.
func TerminfoStatic(dirs string) TerminfoResolution {
	return TerminfoResolution{kind: terminfoStatic, dirs: dirs}
}

// IsDynamic reports whether this is the dynamic-resolution shape.
func (t TerminfoResolution) IsDynamic() bool { return t.kind == terminfoDynamic }

// IsNone reports whether this is the no-op shape.
func (t TerminfoResolution) IsNone() bool { return t.kind == terminfoNone }

// StaticDirs returns the TERMINFO_DIRS payload and whether this is the
// static shape.
func (t TerminfoResolution) StaticDirs() (string, bool) {
	return t.dirs, t.kind == terminfoStatic
}

// String returns the canonical token: "dynamic", "none", or
// "static:<dirs>".
func (t TerminfoResolution) String() string {
	switch t.kind {
	case terminfoNone:
		return "none"
	case terminfoStatic:
		return "static:" + t.dirs
	default:
		return "dynamic"
	}
}

// ParseTerminfoResolution converts a token into a terminfo resolution.
// Anything beginning with "static:" is accepted; the remainder of the string
// is the payload.
func ParseTerminfoResolution(s string) (TerminfoResolution, error) {
	switch {
	case s == "dynamic":
		return TerminfoDynamic(), nil
	case s == "none":
		return TerminfoNone(), nil
	default:
		if dirs, ok := strings.CutPrefix(s, "static:"); ok {
			return TerminfoStatic(dirs), nil
		}
		return TerminfoDynamic(), fmt.Errorf(
			"%w: %q is not a valid terminfo resolution (valid: dynamic, none, static:<dirs>)",
			ErrInvalidToken, s)
	}
}

func (t TerminfoResolution) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

func (t *TerminfoResolution) UnmarshalText(text []byte) error {
	v, err := ParseTerminfoResolution(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}
