package mgx

import (
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"sync"
)

// FindGCI locates golangci-lint, preferring $GOLANGCI_LINT, then a v2 binary,
// then whatever is on PATH (with GOBIN added to it).
var FindGCI = sync.OnceValue(func() string {
	if p := os.Getenv("GOLANGCI_LINT"); p != "" {
		return p
	}
	gb := os.Getenv("GOBIN")
	if gb == "" {
		gb = os.Getenv("GOPATH")
		if gb == "" {
			gb = filepath.Join(os.Getenv("HOME"), "go")
		}
		gb = filepath.Join(gb, "bin")
	}
	pathVals := os.Getenv("PATH")
	if !slices.Contains(filepath.SplitList(pathVals), gb) {
		_ = os.Setenv("PATH", pathVals+string(os.PathListSeparator)+gb)
	}

	for _, name := range []string{"golangci-lint-v2", "golangci-lint"} {
		if p, err := exec.LookPath(name); err == nil {
			return p
		}
	}
	return "golangci-lint"
})
