package instance

import (
	"runtime"
	"runtime/debug"
	"strings"
	"sync"
)

var version = sync.OnceValue(loadVersion)

// Version is the module version of the running binary, with the vcs revision
// appended when the build recorded one.
func Version() string {
	return version()
}

// GoVersion is the toolchain the binary was built with, as shown on the page.
func GoVersion() string {
	return runtime.Version()
}

func loadVersion() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return "0.0.0-development+unknown"
	}

	var rev string
	for _, s := range bi.Settings {
		if s.Key == "vcs.revision" {
			rev = s.Value
		}
	}

	v := bi.Main.Version
	if v == "" || v == "(devel)" {
		v = "0.0.0-development"
	}
	if rev != "" {
		if len(rev) > 8 {
			rev = rev[:8]
		}
		// go revisions often contain the git hash already
		if !strings.Contains(v, rev) {
			v += "+" + rev
		}
	}
	return v
}
