package domain

import "runtime"

// Platform identifies the operating system the driver runs on.
// It owns the naming rules for produced executables.
type Platform struct {
	OS string
}

// CurrentPlatform returns the Platform for the running process.
func CurrentPlatform() Platform {
	return Platform{OS: runtime.GOOS}
}

// ExeSuffix returns the executable filename suffix for the platform.
func (p Platform) ExeSuffix() string {
	if p.OS == "windows" {
		return ".exe"
	}
	return ""
}

// Executable returns the output path with the platform suffix applied.
func (p Platform) Executable(output string) string {
	return output + p.ExeSuffix()
}

// SupportsTiming reports whether compile timing is available.
// Windows has no rusage equivalent we care to support.
func (p Platform) SupportsTiming() bool {
	return p.OS != "windows"
}
