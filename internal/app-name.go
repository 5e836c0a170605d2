package internal

import (
	"errors"
	"strings"
	"sync/atomic"
	"unicode"
)

var (
	appName = "workshop"
	// set on the first read; log lines and cli help read the name before the
	// main lockdown happens
	appNameRead atomic.Bool
)

// AppName is the binary's name in logs and cli help. Reading it freezes it.
func AppName() string {
	appNameRead.Store(true)
	return appName
}

// SetAppName renames the binary. Only main may call it, before anything has
// read the name.
func SetAppName(name string) {
	CheckCanCustomize()
	if appNameRead.Load() {
		panic(errors.New("app name is locked"))
	}
	if err := validAppName(name); err != nil {
		panic(err)
	}
	appName = name
}

func validAppName(name string) error {
	switch {
	case name == "":
		return errors.New("app name must not be empty")
	case strings.ContainsFunc(name, unicode.IsSpace):
		return errors.New("app name must not contain whitespace")
	}
	return nil
}
