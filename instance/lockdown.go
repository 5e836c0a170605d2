package instance

import "fastcat.org/go/workshop/internal"

// CheckLockedDown panics if app setup has not been locked down yet. Serving
// commands call it before binding, so app names and other setup can't change
// underneath a running server.
func CheckLockedDown() {
	internal.CheckLockedDown()
}
