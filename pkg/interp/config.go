// Package interp defines the typed configuration model for initializing an
// embedded Python interpreter.
//
// The model mirrors the native two-stage initialization protocol: a
// pre-configuration pass (locale, allocator, encoding) followed by a full
// configuration pass (paths, run mode, runtime flags). A Config is a pure
// value: the profile picks the built-in default behavior set, and every
// other field is independently optional. A nil field means "inherit the
// profile's default" and that absence survives serialization; consumers
// apply only the fields that are present, pre-config tier first.
package interp

// Config holds the configuration of a Python interpreter.
//
// Other than the profile, all fields are optional. Only non-nil fields
// override the defaults of the selected profile.
type Config struct {
	// Profile selects the built-in defaults for everything left unset.
	Profile InterpreterProfile `json:"profile" toml:"profile"`

	// Pre-configuration tier. Applied before the runtime bootstraps.

	Allocator               *Allocator     `json:"allocator,omitempty" toml:"allocator,omitempty"`
	ConfigureLocale         *bool          `json:"configure_locale,omitempty" toml:"configure_locale,omitempty"`
	CoerceCLocale           *CoerceCLocale `json:"coerce_c_locale,omitempty" toml:"coerce_c_locale,omitempty"`
	CoerceCLocaleWarn       *bool          `json:"coerce_c_locale_warn,omitempty" toml:"coerce_c_locale_warn,omitempty"`
	DevelopmentMode         *bool          `json:"development_mode,omitempty" toml:"development_mode,omitempty"`
	Isolated                *bool          `json:"isolated,omitempty" toml:"isolated,omitempty"`
	LegacyWindowsFSEncoding *bool          `json:"legacy_windows_fs_encoding,omitempty" toml:"legacy_windows_fs_encoding,omitempty"`
	ParseArgv               *bool          `json:"parse_argv,omitempty" toml:"parse_argv,omitempty"`
	UseEnvironment          *bool          `json:"use_environment,omitempty" toml:"use_environment,omitempty"`
	UTF8Mode                *bool          `json:"utf8_mode,omitempty" toml:"utf8_mode,omitempty"`

	// Configuration tier. Applied after bootstrap, before execution.

	Argv                  []string           `json:"argv,omitempty" toml:"argv,omitempty"`
	BaseExecPrefix        *string            `json:"base_exec_prefix,omitempty" toml:"base_exec_prefix,omitempty"`
	BaseExecutable        *string            `json:"base_executable,omitempty" toml:"base_executable,omitempty"`
	BasePrefix            *string            `json:"base_prefix,omitempty" toml:"base_prefix,omitempty"`
	BufferedStdio         *bool              `json:"buffered_stdio,omitempty" toml:"buffered_stdio,omitempty"`
	BytesWarning          *BytesWarning      `json:"bytes_warning,omitempty" toml:"bytes_warning,omitempty"`
	CheckHashPycsMode     *CheckHashPycsMode `json:"check_hash_pycs_mode,omitempty" toml:"check_hash_pycs_mode,omitempty"`
	ConfigureCStdio       *bool              `json:"configure_c_stdio,omitempty" toml:"configure_c_stdio,omitempty"`
	DumpRefs              *bool              `json:"dump_refs,omitempty" toml:"dump_refs,omitempty"`
	ExecPrefix            *string            `json:"exec_prefix,omitempty" toml:"exec_prefix,omitempty"`
	Executable            *string            `json:"executable,omitempty" toml:"executable,omitempty"`
	FaultHandler          *bool              `json:"fault_handler,omitempty" toml:"fault_handler,omitempty"`
	FilesystemEncoding    *string            `json:"filesystem_encoding,omitempty" toml:"filesystem_encoding,omitempty"`
	FilesystemErrors      *string            `json:"filesystem_errors,omitempty" toml:"filesystem_errors,omitempty"`
	HashSeed              *uint64            `json:"hash_seed,omitempty" toml:"hash_seed,omitempty"`
	Home                  *string            `json:"home,omitempty" toml:"home,omitempty"`
	ImportTime            *bool              `json:"import_time,omitempty" toml:"import_time,omitempty"`
	Inspect               *bool              `json:"inspect,omitempty" toml:"inspect,omitempty"`
	InstallSignalHandlers *bool              `json:"install_signal_handlers,omitempty" toml:"install_signal_handlers,omitempty"`
	Interactive           *bool              `json:"interactive,omitempty" toml:"interactive,omitempty"`
	LegacyWindowsStdio    *bool              `json:"legacy_windows_stdio,omitempty" toml:"legacy_windows_stdio,omitempty"`
	MallocStats           *bool              `json:"malloc_stats,omitempty" toml:"malloc_stats,omitempty"`
	ModuleSearchPaths     []string           `json:"module_search_paths,omitempty" toml:"module_search_paths,omitempty"`
	OptimizationLevel     *OptimizationLevel `json:"optimization_level,omitempty" toml:"optimization_level,omitempty"`
	ParserDebug           *bool              `json:"parser_debug,omitempty" toml:"parser_debug,omitempty"`
	PathconfigWarnings    *bool              `json:"pathconfig_warnings,omitempty" toml:"pathconfig_warnings,omitempty"`
	Prefix                *string            `json:"prefix,omitempty" toml:"prefix,omitempty"`
	ProgramName           *string            `json:"program_name,omitempty" toml:"program_name,omitempty"`
	PycachePrefix         *string            `json:"pycache_prefix,omitempty" toml:"pycache_prefix,omitempty"`
	PythonPathEnv         *string            `json:"python_path_env,omitempty" toml:"python_path_env,omitempty"`
	Quiet                 *bool              `json:"quiet,omitempty" toml:"quiet,omitempty"`
	RunCommand            *string            `json:"run_command,omitempty" toml:"run_command,omitempty"`
	RunFilename           *string            `json:"run_filename,omitempty" toml:"run_filename,omitempty"`
	RunModule             *string            `json:"run_module,omitempty" toml:"run_module,omitempty"`
	ShowRefCount          *bool              `json:"show_ref_count,omitempty" toml:"show_ref_count,omitempty"`
	SiteImport            *bool              `json:"site_import,omitempty" toml:"site_import,omitempty"`
	SkipFirstSourceLine   *bool              `json:"skip_first_source_line,omitempty" toml:"skip_first_source_line,omitempty"`
	StdioEncoding         *string            `json:"stdio_encoding,omitempty" toml:"stdio_encoding,omitempty"`
	StdioErrors           *string            `json:"stdio_errors,omitempty" toml:"stdio_errors,omitempty"`
	Tracemalloc           *bool              `json:"tracemalloc,omitempty" toml:"tracemalloc,omitempty"`
	UserSiteDirectory     *bool              `json:"user_site_directory,omitempty" toml:"user_site_directory,omitempty"`
	Verbose               *bool              `json:"verbose,omitempty" toml:"verbose,omitempty"`
	WarnOptions           []string           `json:"warn_options,omitempty" toml:"warn_options,omitempty"`
	WriteBytecode         *bool              `json:"write_bytecode,omitempty" toml:"write_bytecode,omitempty"`
	XOptions              []string           `json:"x_options,omitempty" toml:"x_options,omitempty"`
}

// NewConfig returns a config for the given profile with every optional field
// unset.
func NewConfig(profile InterpreterProfile) *Config {
	return &Config{Profile: profile}
}

// DefaultConfig returns the default config: isolated profile, nothing
// overridden.
func DefaultConfig() *Config {
	return NewConfig(ProfileIsolated)
}

// Clone returns a deep copy so mutations of one record never leak into
// another.
func (c *Config) Clone() *Config {
	out := *c
	for _, spec := range fieldSpecs {
		spec.copy(&out, c)
	}
	return &out
}
