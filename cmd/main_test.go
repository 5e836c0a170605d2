package cmd

import (
	"os"
	"testing"

	"fastcat.org/go/workshop/internal"
)

func TestMain(m *testing.M) {
	// allow tests to run root commands
	internal.LockCustomizations()
	os.Exit(m.Run())
}
