// Package version reports the build version of pdfdoctor.
package version

import "runtime/debug"

// AppVersion is set at build time via
// -ldflags "-X pdfdoctor/internal/version.AppVersion=v1.2.3".
var AppVersion = ""

// String returns AppVersion, the module version from build info, or "(devel)".
func String() string {
	if AppVersion != "" {
		return AppVersion
	}
	if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" {
		return bi.Main.Version
	}
	return "(devel)"
}

// Commit returns the short VCS revision recorded by the Go toolchain.
func Commit() string {
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" {
				if len(s.Value) > 7 {
					return s.Value[:7]
				}
				return s.Value
			}
		}
	}
	return "unknown"
}
