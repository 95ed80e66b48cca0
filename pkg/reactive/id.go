package reactive

import "sync/atomic"

// globalIDCounter is the source of unique IDs for listeners, owners and cells.
var globalIDCounter uint64

// NextID returns the next unique ID. IDs are monotonically increasing and
// never reused, even across sessions.
func NextID() uint64 {
	return atomic.AddUint64(&globalIDCounter, 1)
}
