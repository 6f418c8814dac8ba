package alloc

import (
	"os"
	"sync/atomic"
)

// IDGenerator issues system-wide unique buffer IDs: the process id in the
// high 32 bits, a monotonically incrementing counter in the low 32.
// Increments are atomic; no external locking is required.
type IDGenerator struct {
	base    uint64
	counter atomic.Uint32
}

// NewIDGenerator creates a generator scoped to the current process.
func NewIDGenerator() *IDGenerator {
	return &IDGenerator{
		base: uint64(os.Getpid()) << 32,
	}
}

// Next returns the next unique buffer ID.
func (g *IDGenerator) Next() uint64 {
	return g.base | uint64(g.counter.Add(1)-1)
}
