package interp

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func boolPtr(b bool) *bool               { return &b }
func strPtr(s string) *string            { return &s }
func seedPtr(v uint64) *uint64           { return &v }
func bwPtr(b BytesWarning) *BytesWarning { return &b }

func TestNewConfig(t *testing.T) {
	cfg := NewConfig(ProfilePython)
	if cfg.Profile != ProfilePython {
		t.Errorf("profile = %v, want python", cfg.Profile)
	}
	for _, state := range cfg.Fields() {
		if state.IsSet {
			t.Errorf("field %q set on a fresh config", state.Name)
		}
	}
}

func TestCloneIsDeep(t *testing.T) {
	orig := DefaultConfig()
	orig.UTF8Mode = boolPtr(true)
	orig.RunModule = strPtr("myapp.cli")
	orig.HashSeed = seedPtr(42)
	orig.BytesWarning = bwPtr(BytesWarningWarn)
	orig.Argv = []string{"myapp", "--flag"}

	clone := orig.Clone()
	if diff := cmp.Diff(orig, clone); diff != "" {
		t.Fatalf("clone differs from original (-orig +clone):\n%s", diff)
	}

	*clone.UTF8Mode = false
	*clone.RunModule = "other"
	*clone.HashSeed = 7
	*clone.BytesWarning = BytesWarningRaise
	clone.Argv[0] = "changed"
	clone.Quiet = boolPtr(true)

	if !*orig.UTF8Mode {
		t.Error("mutating clone changed original utf8_mode")
	}
	if *orig.RunModule != "myapp.cli" {
		t.Error("mutating clone changed original run_module")
	}
	if *orig.HashSeed != 42 {
		t.Error("mutating clone changed original hash_seed")
	}
	if *orig.BytesWarning != BytesWarningWarn {
		t.Error("mutating clone changed original bytes_warning")
	}
	if orig.Argv[0] != "myapp" {
		t.Error("mutating clone changed original argv")
	}
	if orig.Quiet != nil {
		t.Error("setting a field on the clone set it on the original")
	}
}

func TestClonePreservesAbsence(t *testing.T) {
	orig := DefaultConfig()
	orig.ModuleSearchPaths = []string{}

	clone := orig.Clone()
	if clone.ModuleSearchPaths == nil {
		t.Error("clone collapsed a set-but-empty list into unset")
	}
	if clone.WarnOptions != nil {
		t.Error("clone invented a value for an unset list")
	}
}
