package cli

import (
	"flag"
	"runtime/debug"
)

// version can be set by the linker.
var version string

// Version returns the linker-provided version string, else the main
// module version from the build information, else "unknown".
func Version() string {
	if version != "" {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		// This will be "(devel)" for binaries not built by
		// "go install PACKAGE@VERSION".
		return info.Main.Version
	}
	return "unknown"
}

type Flags struct {
	showVersion bool
}

func (f *Flags) SetFlags(fs *flag.FlagSet) {
	fs.BoolVar(&f.showVersion, "version", false, "print version and exit")
}

// ShowVersion reports whether -version was given.
func (f *Flags) ShowVersion() bool {
	return f.showVersion
}
