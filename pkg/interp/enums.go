package interp

import "sort"

// tokensOf returns the sorted accepted token set of an enum table, for use
// in error messages and round-trip tests.
func tokensOf[T any](m map[string]T) []string {
	tokens := make([]string, 0, len(m))
	for t := range m {
		tokens = append(tokens, t)
	}
	sort.Strings(tokens)
	return tokens
}

// =================================
// Low-level allocator debug mode (PyPreConfig.allocator)
// =================================

// Allocator selects the low-level memory allocator domain configuration,
// including the debug variants. Values mirror the PYMEM_ALLOCATOR_* codes.
type Allocator int

const (
	AllocatorNotSet        Allocator = 0
	AllocatorDefault       Allocator = 1
	AllocatorDebug         Allocator = 2
	AllocatorMalloc        Allocator = 3
	AllocatorMallocDebug   Allocator = 4
	AllocatorPyMalloc      Allocator = 5
	AllocatorPyMallocDebug Allocator = 6
)

var allocatorTokens = map[string]Allocator{
	"not-set":         AllocatorNotSet,
	"default":         AllocatorDefault,
	"debug":           AllocatorDebug,
	"malloc":          AllocatorMalloc,
	"malloc-debug":    AllocatorMallocDebug,
	"py-malloc":       AllocatorPyMalloc,
	"py-malloc-debug": AllocatorPyMallocDebug,
}

func (a Allocator) String() string {
	switch a {
	case AllocatorNotSet:
		return "not-set"
	case AllocatorDefault:
		return "default"
	case AllocatorDebug:
		return "debug"
	case AllocatorMalloc:
		return "malloc"
	case AllocatorMallocDebug:
		return "malloc-debug"
	case AllocatorPyMalloc:
		return "py-malloc"
	case AllocatorPyMallocDebug:
		return "py-malloc-debug"
	default:
		return "unknown"
	}
}

// ParseAllocator converts a token into an allocator value.
func ParseAllocator(s string) (Allocator, error) {
	if v, ok := allocatorTokens[s]; ok {
		return v, nil
	}
	return AllocatorNotSet, invalidToken(s, "allocator", tokensOf(allocatorTokens))
}

// Code returns the native integer code for the allocator.
func (a Allocator) Code() int { return int(a) }

// AllocatorFromCode converts a native integer code into an allocator value.
// Unknown codes are rejected.
func AllocatorFromCode(code int) (Allocator, error) {
	if code < int(AllocatorNotSet) || code > int(AllocatorPyMallocDebug) {
		return AllocatorNotSet, invalidCode(code, "allocator")
	}
	return Allocator(code), nil
}

func (a Allocator) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

func (a *Allocator) UnmarshalText(text []byte) error {
	v, err := ParseAllocator(string(text))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// =================================
// C locale coercion (PyPreConfig.coerce_c_locale)
// =================================

// CoerceCLocale controls how the C locale is coerced during
// pre-initialization. Values mirror the native codes.
type CoerceCLocale int

const (
	CoerceCLocaleLCCtype CoerceCLocale = 1
	CoerceCLocaleC       CoerceCLocale = 2
)

var coerceCLocaleTokens = map[string]CoerceCLocale{
	"LC_CTYPE": CoerceCLocaleLCCtype,
	"C":        CoerceCLocaleC,
}

func (c CoerceCLocale) String() string {
	switch c {
	case CoerceCLocaleLCCtype:
		return "LC_CTYPE"
	case CoerceCLocaleC:
		return "C"
	default:
		return "unknown"
	}
}

// ParseCoerceCLocale converts a token into a locale coercion value.
func ParseCoerceCLocale(s string) (CoerceCLocale, error) {
	if v, ok := coerceCLocaleTokens[s]; ok {
		return v, nil
	}
	return CoerceCLocaleLCCtype, invalidToken(s, "C locale coercion", tokensOf(coerceCLocaleTokens))
}

func (c CoerceCLocale) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

func (c *CoerceCLocale) UnmarshalText(text []byte) error {
	v, err := ParseCoerceCLocale(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// =================================
// Bytes warning (PyConfig.bytes_warning)
// =================================

// BytesWarning controls what happens when bytes are compared with str.
type BytesWarning int

const (
	BytesWarningNone  BytesWarning = 0
	BytesWarningWarn  BytesWarning = 1
	BytesWarningRaise BytesWarning = 2
)

var bytesWarningTokens = map[string]BytesWarning{
	"none":  BytesWarningNone,
	"warn":  BytesWarningWarn,
	"raise": BytesWarningRaise,
}

func (b BytesWarning) String() string {
	switch b {
	case BytesWarningNone:
		return "none"
	case BytesWarningWarn:
		return "warn"
	case BytesWarningRaise:
		return "raise"
	default:
		return "unknown"
	}
}

// ParseBytesWarning converts a token into a bytes warning level.
func ParseBytesWarning(s string) (BytesWarning, error) {
	if v, ok := bytesWarningTokens[s]; ok {
		return v, nil
	}
	return BytesWarningNone, invalidToken(s, "bytes warning", tokensOf(bytesWarningTokens))
}

// Code returns the native integer code for the warning level.
func (b BytesWarning) Code() int { return int(b) }

// BytesWarningFromCode converts a native integer code into a warning level.
// The field is a severity scale: 0 is none, 1 is warn, and every other value
// (negative included) saturates to raise. It never fails.
func BytesWarningFromCode(code int) BytesWarning {
	switch code {
	case 0:
		return BytesWarningNone
	case 1:
		return BytesWarningWarn
	default:
		return BytesWarningRaise
	}
}

func (b BytesWarning) MarshalText() ([]byte, error) { return []byte(b.String()), nil }

func (b *BytesWarning) UnmarshalText(text []byte) error {
	v, err := ParseBytesWarning(string(text))
	if err != nil {
		return err
	}
	*b = v
	return nil
}

// =================================
// Hash-based pyc validation (PyConfig.check_hash_pycs_mode)
// =================================

// CheckHashPycsMode controls validation of hash-based .pyc files.
type CheckHashPycsMode int

const (
	CheckHashPycsAlways  CheckHashPycsMode = 0
	CheckHashPycsNever   CheckHashPycsMode = 1
	CheckHashPycsDefault CheckHashPycsMode = 2
)

var checkHashPycsTokens = map[string]CheckHashPycsMode{
	"always":  CheckHashPycsAlways,
	"never":   CheckHashPycsNever,
	"default": CheckHashPycsDefault,
}

func (m CheckHashPycsMode) String() string {
	switch m {
	case CheckHashPycsAlways:
		return "always"
	case CheckHashPycsNever:
		return "never"
	case CheckHashPycsDefault:
		return "default"
	default:
		return "unknown"
	}
}

// ParseCheckHashPycsMode converts a token into a pyc validation mode.
func ParseCheckHashPycsMode(s string) (CheckHashPycsMode, error) {
	if v, ok := checkHashPycsTokens[s]; ok {
		return v, nil
	}
	return CheckHashPycsAlways, invalidToken(s, "check hash pycs mode", tokensOf(checkHashPycsTokens))
}

// Code returns the native integer code for the validation mode.
func (m CheckHashPycsMode) Code() int { return int(m) }

// CheckHashPycsModeFromCode converts a native integer code into a validation
// mode. Unlike bytes warnings this is not a severity scale, so unknown codes
// are rejected.
func CheckHashPycsModeFromCode(code int) (CheckHashPycsMode, error) {
	if code < int(CheckHashPycsAlways) || code > int(CheckHashPycsDefault) {
		return CheckHashPycsAlways, invalidCode(code, "check hash pycs mode")
	}
	return CheckHashPycsMode(code), nil
}

func (m CheckHashPycsMode) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

func (m *CheckHashPycsMode) UnmarshalText(text []byte) error {
	v, err := ParseCheckHashPycsMode(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// =================================
// Memory allocator backend
// =================================

// MemoryAllocatorBackend selects the allocator implementation installed for
// the interpreter as a whole.
type MemoryAllocatorBackend int

const (
	// BackendDefault leaves the allocator as configured by the runtime.
	BackendDefault MemoryAllocatorBackend = iota
	// BackendJemalloc uses jemalloc.
	BackendJemalloc
	// BackendMimalloc uses mimalloc.
	BackendMimalloc
	// BackendSnmalloc uses snmalloc.
	BackendSnmalloc
	// BackendRust uses the embedding application's global allocator. The
	// token is kept for wire compatibility with existing config documents.
	BackendRust
)

var memoryBackendTokens = map[string]MemoryAllocatorBackend{
	"default":  BackendDefault,
	"jemalloc": BackendJemalloc,
	"mimalloc": BackendMimalloc,
	"snmalloc": BackendSnmalloc,
	"rust":     BackendRust,
}

func (b MemoryAllocatorBackend) String() string {
	switch b {
	case BackendDefault:
		return "default"
	case BackendJemalloc:
		return "jemalloc"
	case BackendMimalloc:
		return "mimalloc"
	case BackendSnmalloc:
		return "snmalloc"
	case BackendRust:
		return "rust"
	default:
		return "unknown"
	}
}

// ParseMemoryAllocatorBackend converts a token into a backend value.
func ParseMemoryAllocatorBackend(s string) (MemoryAllocatorBackend, error) {
	if v, ok := memoryBackendTokens[s]; ok {
		return v, nil
	}
	return BackendDefault, invalidToken(s, "memory allocator backend", tokensOf(memoryBackendTokens))
}

func (b MemoryAllocatorBackend) MarshalText() ([]byte, error) { return []byte(b.String()), nil }

func (b *MemoryAllocatorBackend) UnmarshalText(text []byte) error {
	v, err := ParseMemoryAllocatorBackend(string(text))
	if err != nil {
		return err
	}
	*b = v
	return nil
}

// =================================
// Multiprocessing start method
// =================================

// MultiprocessingStartMethod defines how multiprocessing.set_start_method()
// is called when the multiprocessing module is imported.
type MultiprocessingStartMethod int

const (
	// MPStartNone does not call set_start_method() at all.
	MPStartNone MultiprocessingStartMethod = iota
	MPStartFork
	MPStartForkServer
	MPStartSpawn
	// MPStartAuto picks an appropriate method for the host platform.
	MPStartAuto
)

var mpStartTokens = map[string]MultiprocessingStartMethod{
	"none":       MPStartNone,
	"fork":       MPStartFork,
	"forkserver": MPStartForkServer,
	"spawn":      MPStartSpawn,
	"auto":       MPStartAuto,
}

func (m MultiprocessingStartMethod) String() string {
	switch m {
	case MPStartNone:
		return "none"
	case MPStartFork:
		return "fork"
	case MPStartForkServer:
		return "forkserver"
	case MPStartSpawn:
		return "spawn"
	case MPStartAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// ParseMultiprocessingStartMethod converts a token into a start method.
func ParseMultiprocessingStartMethod(s string) (MultiprocessingStartMethod, error) {
	if v, ok := mpStartTokens[s]; ok {
		return v, nil
	}
	return MPStartNone, invalidToken(s, "multiprocessing start method", tokensOf(mpStartTokens))
}

func (m MultiprocessingStartMethod) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

func (m *MultiprocessingStartMethod) UnmarshalText(text []byte) error {
	v, err := ParseMultiprocessingStartMethod(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// =================================
// Bytecode optimization level
// =================================

// OptimizationLevel is the bytecode optimization level passed to the
// compiler. Only the value is modeled here; its effect on compilation is the
// interpreter's business.
type OptimizationLevel int

const (
	OptimizationZero OptimizationLevel = 0
	OptimizationOne  OptimizationLevel = 1
	OptimizationTwo  OptimizationLevel = 2
)

var optimizationTokens = map[string]OptimizationLevel{
	"0": OptimizationZero,
	"1": OptimizationOne,
	"2": OptimizationTwo,
}

func (o OptimizationLevel) String() string {
	switch o {
	case OptimizationZero:
		return "0"
	case OptimizationOne:
		return "1"
	case OptimizationTwo:
		return "2"
	default:
		return "unknown"
	}
}

// ParseOptimizationLevel converts a token into an optimization level.
func ParseOptimizationLevel(s string) (OptimizationLevel, error) {
	if v, ok := optimizationTokens[s]; ok {
		return v, nil
	}
	return OptimizationZero, invalidToken(s, "optimization level", tokensOf(optimizationTokens))
}

// Code returns the native integer code for the optimization level.
func (o OptimizationLevel) Code() int { return int(o) }

// OptimizationLevelFromCode converts a native integer code into an
// optimization level. Unknown codes are rejected.
func OptimizationLevelFromCode(code int) (OptimizationLevel, error) {
	if code < int(OptimizationZero) || code > int(OptimizationTwo) {
		return OptimizationZero, invalidCode(code, "optimization level")
	}
	return OptimizationLevel(code), nil
}

func (o OptimizationLevel) MarshalText() ([]byte, error) { return []byte(o.String()), nil }

func (o *OptimizationLevel) UnmarshalText(text []byte) error {
	v, err := ParseOptimizationLevel(string(text))
	if err != nil {
		return err
	}
	*o = v
	return nil
}
