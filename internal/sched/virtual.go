package sched

import (
	"sort"
	"time"
)

// MinInterval is the smallest interval Virtual accepts; shorter ones are raised.
const MinInterval = time.Millisecond

type entry struct {
	handle   Handle
	interval time.Duration
	due      time.Duration
	fn       func()
}

// Virtual is a deterministic Scheduler driven by Advance.
// It is not safe for concurrent use; callers serialize access the same way
// they serialize engine calls.
type Virtual struct {
	now     time.Duration
	nextID  Handle
	entries map[Handle]*entry
}

var _ Scheduler = (*Virtual)(nil)

// NewVirtual creates a virtual clock starting at zero.
func NewVirtual() *Virtual {
	return &Virtual{
		entries: make(map[Handle]*entry),
	}
}

// ScheduleRepeating implements Scheduler.
func (v *Virtual) ScheduleRepeating(interval time.Duration, fn func()) Handle {
	if interval < MinInterval {
		interval = MinInterval
	}
	v.nextID++
	v.entries[v.nextID] = &entry{
		handle:   v.nextID,
		interval: interval,
		due:      v.now + interval,
		fn:       fn,
	}
	return v.nextID
}

// Cancel implements Scheduler.
func (v *Virtual) Cancel(h Handle) {
	delete(v.entries, h)
}

// Now returns the elapsed virtual time.
func (v *Virtual) Now() time.Duration {
	return v.now
}

// Pending returns the number of active schedules.
func (v *Virtual) Pending() int {
	return len(v.entries)
}

// Interval reports the interval a handle was scheduled with.
func (v *Virtual) Interval(h Handle) (time.Duration, bool) {
	e, ok := v.entries[h]
	if !ok {
		return 0, false
	}
	return e.interval, true
}

// Advance moves the clock forward by d, firing every callback that becomes
// due on the way. Callbacks fire in due-time order, ties broken by handle.
// Callbacks may schedule or cancel; a cancelled callback never fires again,
// even if it was due within the same Advance.
// Returns the number of callbacks fired.
func (v *Virtual) Advance(d time.Duration) int {
	target := v.now + d
	fired := 0

	for {
		e := v.earliest(target)
		if e == nil {
			break
		}
		v.now = e.due
		e.due += e.interval
		e.fn()
		fired++
	}

	v.now = target
	return fired
}

// earliest returns the entry due soonest at or before target.
func (v *Virtual) earliest(target time.Duration) *entry {
	var due []*entry
	for _, e := range v.entries {
		if e.due <= target {
			due = append(due, e)
		}
	}
	if len(due) == 0 {
		return nil
	}
	sort.Slice(due, func(i, j int) bool {
		if due[i].due != due[j].due {
			return due[i].due < due[j].due
		}
		return due[i].handle < due[j].handle
	})
	return due[0]
}
