package server

import "sync/atomic"

// Counter tracks requests served since process start. The zero value is ready
// to use.
type Counter struct {
	n atomic.Uint64
}

// Next counts one request and returns the new total. Each call observes a
// distinct value.
func (c *Counter) Next() uint64 {
	return c.n.Add(1)
}

// Load reports the total without counting a request.
func (c *Counter) Load() uint64 {
	return c.n.Load()
}
