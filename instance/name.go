package instance

import "fastcat.org/go/workshop/internal"

// AppName is what the binary calls itself in logs and cli help.
func AppName() string {
	return internal.AppName()
}

// SetAppName must be called from main before [fastcat.org/go/workshop/cmd.Main].
func SetAppName(name string) {
	internal.SetAppName(name)
}
