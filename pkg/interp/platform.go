package interp

import "runtime"

// PlatformFamily is the host platform family used to pick
// platform-conditioned defaults. Callers pass it explicitly so defaults stay
// testable for every family without cross-compilation.
type PlatformFamily int

const (
	// PlatformUnix covers Linux and the other non-Apple Unix systems.
	PlatformUnix PlatformFamily = iota
	PlatformDarwin
	PlatformWindows
)

func (f PlatformFamily) String() string {
	switch f {
	case PlatformDarwin:
		return "darwin"
	case PlatformWindows:
		return "windows"
	default:
		return "unix"
	}
}

// CurrentPlatformFamily returns the family of the running platform.
func CurrentPlatformFamily() PlatformFamily {
	switch runtime.GOOS {
	case "windows":
		return PlatformWindows
	case "darwin":
		return PlatformDarwin
	default:
		return PlatformUnix
	}
}

// DefaultMemoryAllocatorBackend returns the backend used when none is
// configured: the runtime's own allocator on Windows, jemalloc everywhere
// else.
func DefaultMemoryAllocatorBackend(family PlatformFamily) MemoryAllocatorBackend {
	if family == PlatformWindows {
		return BackendDefault
	}
	return BackendJemalloc
}

// Resolve maps the auto start method to a concrete one for the given
// platform family: fork where it is reliable, spawn elsewhere. Non-auto
// methods are returned unchanged.
func (m MultiprocessingStartMethod) Resolve(family PlatformFamily) MultiprocessingStartMethod {
	if m != MPStartAuto {
		return m
	}
	switch family {
	case PlatformWindows, PlatformDarwin:
		return MPStartSpawn
	default:
		return MPStartFork
	}
}
