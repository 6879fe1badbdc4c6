package interp

// InterpreterProfile selects the built-in default behavior set used to
// initialize the pre-config and config state of an interpreter.
type InterpreterProfile int

const (
	// ProfileIsolated isolates the interpreter from the system: environment
	// variables, site packages, and user configuration are ignored unless a
	// field explicitly re-enables them.
	ProfileIsolated InterpreterProfile = iota

	// ProfilePython mimics the behavior of the standard `python` executable.
	ProfilePython
)

var profileTokens = map[string]InterpreterProfile{
	"isolated": ProfileIsolated,
	"python":   ProfilePython,
}

// String returns the canonical token for the profile.
func (p InterpreterProfile) String() string {
	switch p {
	case ProfileIsolated:
		return "isolated"
	case ProfilePython:
		return "python"
	default:
		return "unknown"
	}
}

// ParseInterpreterProfile converts a token into a profile. Parsing is
// case-sensitive.
func ParseInterpreterProfile(s string) (InterpreterProfile, error) {
	if v, ok := profileTokens[s]; ok {
		return v, nil
	}
	return ProfileIsolated, invalidToken(s, "interpreter profile", tokensOf(profileTokens))
}

func (p InterpreterProfile) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *InterpreterProfile) UnmarshalText(text []byte) error {
	v, err := ParseInterpreterProfile(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}
