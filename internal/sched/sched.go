// Package sched provides the periodic scheduling capability consumed by the
// game engine, plus a deterministic virtual clock that hosts drive with their
// own fixed-rate tick loop.
package sched

import "time"

// Handle identifies a scheduled repeating callback. The zero Handle is never
// issued and is safe to pass to Cancel.
type Handle uint64

// Scheduler runs callbacks periodically.
// Implementations must never invoke a callback after Cancel has returned for
// its handle.
type Scheduler interface {
	// ScheduleRepeating registers fn to run every interval, first firing one
	// interval from now.
	ScheduleRepeating(interval time.Duration, fn func()) Handle

	// Cancel stops a scheduled callback. Unknown or zero handles are ignored.
	Cancel(h Handle)
}
