package interp

import (
	"fmt"
	"strconv"

	"github.com/provide-io/pyembed/go/pyembed/pkg/utils/shellwords"
)

// Tier identifies which native initialization pass consumes a field.
type Tier int

const (
	// TierPreConfig fields must be applied before the runtime bootstraps.
	TierPreConfig Tier = iota
	// TierConfig fields are applied after bootstrap, before execution.
	TierConfig
)

func (t Tier) String() string {
	if t == TierPreConfig {
		return "pre-config"
	}
	return "config"
}

// FieldState is one entry of the ordered read-only field view. Value holds
// the serialized form and is empty when the field is unset.
type FieldState struct {
	Name  string
	Tier  Tier
	IsSet bool
	Value string
}

type fieldSpec struct {
	name  string
	tier  Tier
	get   func(*Config) (string, bool)
	set   func(*Config, string) error
	clear func(*Config)
	copy  func(dst, src *Config)
}

func boolField(name string, tier Tier, p func(*Config) **bool) fieldSpec {
	return fieldSpec{
		name: name,
		tier: tier,
		get: func(c *Config) (string, bool) {
			if v := *p(c); v != nil {
				return strconv.FormatBool(*v), true
			}
			return "", false
		},
		set: func(c *Config, raw string) error {
			var v bool
			switch raw {
			case "true":
				v = true
			case "false":
				v = false
			default:
				return invalidToken(raw, name+" value", []string{"false", "true"})
			}
			*p(c) = &v
			return nil
		},
		clear: func(c *Config) { *p(c) = nil },
		copy: func(dst, src *Config) {
			if v := *p(src); v != nil {
				nv := *v
				*p(dst) = &nv
			}
		},
	}
}

// stringField covers free-form strings and filesystem paths; any value is
// accepted.
func stringField(name string, tier Tier, p func(*Config) **string) fieldSpec {
	return fieldSpec{
		name: name,
		tier: tier,
		get: func(c *Config) (string, bool) {
			if v := *p(c); v != nil {
				return *v, true
			}
			return "", false
		},
		set: func(c *Config, raw string) error {
			v := raw
			*p(c) = &v
			return nil
		},
		clear: func(c *Config) { *p(c) = nil },
		copy: func(dst, src *Config) {
			if v := *p(src); v != nil {
				nv := *v
				*p(dst) = &nv
			}
		},
	}
}

// listField covers ordered sequences of strings/paths. String values are
// split into words shell-style; a set-but-empty list stays distinct from an
// unset one.
func listField(name string, tier Tier, p func(*Config) *[]string) fieldSpec {
	return fieldSpec{
		name: name,
		tier: tier,
		get: func(c *Config) (string, bool) {
			if v := *p(c); v != nil {
				return shellwords.Join(v), true
			}
			return "", false
		},
		set: func(c *Config, raw string) error {
			words, err := shellwords.Split(raw)
			if err != nil {
				return fmt.Errorf("%w: %q is not a valid %s value (%s)", ErrInvalidToken, raw, name, err)
			}
			*p(c) = words
			return nil
		},
		clear: func(c *Config) { *p(c) = nil },
		copy: func(dst, src *Config) {
			if v := *p(src); v != nil {
				nv := make([]string, len(v))
				copy(nv, v)
				*p(dst) = nv
			}
		},
	}
}

func uintField(name string, tier Tier, p func(*Config) **uint64) fieldSpec {
	return fieldSpec{
		name: name,
		tier: tier,
		get: func(c *Config) (string, bool) {
			if v := *p(c); v != nil {
				return strconv.FormatUint(*v, 10), true
			}
			return "", false
		},
		set: func(c *Config, raw string) error {
			v, err := strconv.ParseUint(raw, 10, 64)
			if err != nil {
				return fmt.Errorf("%w: %q is not a valid %s value (expected unsigned integer)", ErrInvalidToken, raw, name)
			}
			*p(c) = &v
			return nil
		},
		clear: func(c *Config) { *p(c) = nil },
		copy: func(dst, src *Config) {
			if v := *p(src); v != nil {
				nv := *v
				*p(dst) = &nv
			}
		},
	}
}

// enumField runs the enum's own parser, so string-based setting surfaces the
// same invalid-token errors as direct parsing.
func enumField[T fmt.Stringer](name string, tier Tier, p func(*Config) **T, parse func(string) (T, error)) fieldSpec {
	return fieldSpec{
		name: name,
		tier: tier,
		get: func(c *Config) (string, bool) {
			if v := *p(c); v != nil {
				return (*v).String(), true
			}
			return "", false
		},
		set: func(c *Config, raw string) error {
			v, err := parse(raw)
			if err != nil {
				return err
			}
			*p(c) = &v
			return nil
		},
		clear: func(c *Config) { *p(c) = nil },
		copy: func(dst, src *Config) {
			if v := *p(src); v != nil {
				nv := *v
				*p(dst) = &nv
			}
		},
	}
}

// fieldSpecs is the single source of truth for field order: pre-config tier
// first, then config tier, each in wire-name order of the record.
var fieldSpecs = []fieldSpec{
	enumField("allocator", TierPreConfig, func(c *Config) **Allocator { return &c.Allocator }, ParseAllocator),
	boolField("configure_locale", TierPreConfig, func(c *Config) **bool { return &c.ConfigureLocale }),
	enumField("coerce_c_locale", TierPreConfig, func(c *Config) **CoerceCLocale { return &c.CoerceCLocale }, ParseCoerceCLocale),
	boolField("coerce_c_locale_warn", TierPreConfig, func(c *Config) **bool { return &c.CoerceCLocaleWarn }),
	boolField("development_mode", TierPreConfig, func(c *Config) **bool { return &c.DevelopmentMode }),
	boolField("isolated", TierPreConfig, func(c *Config) **bool { return &c.Isolated }),
	boolField("legacy_windows_fs_encoding", TierPreConfig, func(c *Config) **bool { return &c.LegacyWindowsFSEncoding }),
	boolField("parse_argv", TierPreConfig, func(c *Config) **bool { return &c.ParseArgv }),
	boolField("use_environment", TierPreConfig, func(c *Config) **bool { return &c.UseEnvironment }),
	boolField("utf8_mode", TierPreConfig, func(c *Config) **bool { return &c.UTF8Mode }),

	listField("argv", TierConfig, func(c *Config) *[]string { return &c.Argv }),
	stringField("base_exec_prefix", TierConfig, func(c *Config) **string { return &c.BaseExecPrefix }),
	stringField("base_executable", TierConfig, func(c *Config) **string { return &c.BaseExecutable }),
	stringField("base_prefix", TierConfig, func(c *Config) **string { return &c.BasePrefix }),
	boolField("buffered_stdio", TierConfig, func(c *Config) **bool { return &c.BufferedStdio }),
	enumField("bytes_warning", TierConfig, func(c *Config) **BytesWarning { return &c.BytesWarning }, ParseBytesWarning),
	enumField("check_hash_pycs_mode", TierConfig, func(c *Config) **CheckHashPycsMode { return &c.CheckHashPycsMode }, ParseCheckHashPycsMode),
	boolField("configure_c_stdio", TierConfig, func(c *Config) **bool { return &c.ConfigureCStdio }),
	boolField("dump_refs", TierConfig, func(c *Config) **bool { return &c.DumpRefs }),
	stringField("exec_prefix", TierConfig, func(c *Config) **string { return &c.ExecPrefix }),
	stringField("executable", TierConfig, func(c *Config) **string { return &c.Executable }),
	boolField("fault_handler", TierConfig, func(c *Config) **bool { return &c.FaultHandler }),
	stringField("filesystem_encoding", TierConfig, func(c *Config) **string { return &c.FilesystemEncoding }),
	stringField("filesystem_errors", TierConfig, func(c *Config) **string { return &c.FilesystemErrors }),
	uintField("hash_seed", TierConfig, func(c *Config) **uint64 { return &c.HashSeed }),
	stringField("home", TierConfig, func(c *Config) **string { return &c.Home }),
	boolField("import_time", TierConfig, func(c *Config) **bool { return &c.ImportTime }),
	boolField("inspect", TierConfig, func(c *Config) **bool { return &c.Inspect }),
	boolField("install_signal_handlers", TierConfig, func(c *Config) **bool { return &c.InstallSignalHandlers }),
	boolField("interactive", TierConfig, func(c *Config) **bool { return &c.Interactive }),
	boolField("legacy_windows_stdio", TierConfig, func(c *Config) **bool { return &c.LegacyWindowsStdio }),
	boolField("malloc_stats", TierConfig, func(c *Config) **bool { return &c.MallocStats }),
	listField("module_search_paths", TierConfig, func(c *Config) *[]string { return &c.ModuleSearchPaths }),
	enumField("optimization_level", TierConfig, func(c *Config) **OptimizationLevel { return &c.OptimizationLevel }, ParseOptimizationLevel),
	boolField("parser_debug", TierConfig, func(c *Config) **bool { return &c.ParserDebug }),
	boolField("pathconfig_warnings", TierConfig, func(c *Config) **bool { return &c.PathconfigWarnings }),
	stringField("prefix", TierConfig, func(c *Config) **string { return &c.Prefix }),
	stringField("program_name", TierConfig, func(c *Config) **string { return &c.ProgramName }),
	stringField("pycache_prefix", TierConfig, func(c *Config) **string { return &c.PycachePrefix }),
	stringField("python_path_env", TierConfig, func(c *Config) **string { return &c.PythonPathEnv }),
	boolField("quiet", TierConfig, func(c *Config) **bool { return &c.Quiet }),
	stringField("run_command", TierConfig, func(c *Config) **string { return &c.RunCommand }),
	stringField("run_filename", TierConfig, func(c *Config) **string { return &c.RunFilename }),
	stringField("run_module", TierConfig, func(c *Config) **string { return &c.RunModule }),
	boolField("show_ref_count", TierConfig, func(c *Config) **bool { return &c.ShowRefCount }),
	boolField("site_import", TierConfig, func(c *Config) **bool { return &c.SiteImport }),
	boolField("skip_first_source_line", TierConfig, func(c *Config) **bool { return &c.SkipFirstSourceLine }),
	stringField("stdio_encoding", TierConfig, func(c *Config) **string { return &c.StdioEncoding }),
	stringField("stdio_errors", TierConfig, func(c *Config) **string { return &c.StdioErrors }),
	boolField("tracemalloc", TierConfig, func(c *Config) **bool { return &c.Tracemalloc }),
	boolField("user_site_directory", TierConfig, func(c *Config) **bool { return &c.UserSiteDirectory }),
	boolField("verbose", TierConfig, func(c *Config) **bool { return &c.Verbose }),
	listField("warn_options", TierConfig, func(c *Config) *[]string { return &c.WarnOptions }),
	boolField("write_bytecode", TierConfig, func(c *Config) **bool { return &c.WriteBytecode }),
	listField("x_options", TierConfig, func(c *Config) *[]string { return &c.XOptions }),
}

var fieldIndex = func() map[string]*fieldSpec {
	idx := make(map[string]*fieldSpec, len(fieldSpecs))
	for i := range fieldSpecs {
		idx[fieldSpecs[i].name] = &fieldSpecs[i]
	}
	return idx
}()

// FieldNames returns the wire names of all optional fields, pre-config tier
// first, then config tier.
func FieldNames() []string {
	names := make([]string, len(fieldSpecs))
	for i, spec := range fieldSpecs {
		names[i] = spec.name
	}
	return names
}

// Fields returns the ordered read-only view an initializer walks: pre-config
// tier fields first, then config tier fields. Unset fields are included with
// IsSet false so callers can skip them.
func (c *Config) Fields() []FieldState {
	states := make([]FieldState, len(fieldSpecs))
	for i, spec := range fieldSpecs {
		value, ok := spec.get(c)
		states[i] = FieldState{Name: spec.name, Tier: spec.tier, IsSet: ok, Value: value}
	}
	return states
}

// TierFields returns the ordered view restricted to one tier.
func (c *Config) TierFields(tier Tier) []FieldState {
	var states []FieldState
	for _, state := range c.Fields() {
		if state.Tier == tier {
			states = append(states, state)
		}
	}
	return states
}

// SetField sets one field from its serialized string form. Enum-typed fields
// run their enum's parser; the record is untouched when the value is
// rejected. The profile is addressable as "profile".
func (c *Config) SetField(name, raw string) error {
	if name == "profile" {
		v, err := ParseInterpreterProfile(raw)
		if err != nil {
			return err
		}
		c.Profile = v
		return nil
	}
	spec, ok := fieldIndex[name]
	if !ok {
		return fmt.Errorf("%w: %q is not a known configuration field", ErrInvalidToken, name)
	}
	return spec.set(c, raw)
}

// ClearField unsets one field so the profile default applies again.
func (c *Config) ClearField(name string) error {
	spec, ok := fieldIndex[name]
	if !ok {
		return fmt.Errorf("%w: %q is not a known configuration field", ErrInvalidToken, name)
	}
	spec.clear(c)
	return nil
}

// FieldValue returns the serialized value of one field and whether it is
// set.
func (c *Config) FieldValue(name string) (string, bool, error) {
	spec, ok := fieldIndex[name]
	if !ok {
		return "", false, fmt.Errorf("%w: %q is not a known configuration field", ErrInvalidToken, name)
	}
	value, set := spec.get(c)
	return value, set, nil
}
