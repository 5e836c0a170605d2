package mgx

import (
	"errors"
	"os"
	"path/filepath"
)

// Apps lists the binaries under ./apps, one per directory with a main.go.
func Apps() ([]string, error) {
	entries, err := os.ReadDir("apps")
	if err != nil {
		return nil, err
	}
	var apps []string
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		if _, err := os.Stat(filepath.Join("apps", e.Name(), "main.go")); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return nil, err
		}
		apps = append(apps, e.Name())
	}
	return apps, nil
}
