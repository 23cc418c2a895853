package sched

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVirtualFiresAtInterval(t *testing.T) {
	v := NewVirtual()
	count := 0
	v.ScheduleRepeating(100*time.Millisecond, func() { count++ })

	assert.Equal(t, 0, v.Advance(99*time.Millisecond))
	assert.Equal(t, 0, count)

	assert.Equal(t, 1, v.Advance(time.Millisecond))
	assert.Equal(t, 1, count)

	assert.Equal(t, 3, v.Advance(300*time.Millisecond))
	assert.Equal(t, 4, count)
	assert.Equal(t, 400*time.Millisecond, v.Now())
}

func TestVirtualOrdering(t *testing.T) {
	v := NewVirtual()
	var order []string
	v.ScheduleRepeating(300*time.Millisecond, func() { order = append(order, "slow") })
	v.ScheduleRepeating(100*time.Millisecond, func() { order = append(order, "fast") })

	v.Advance(300 * time.Millisecond)

	// At 300ms both are due; the earlier handle wins the tie.
	assert.Equal(t, []string{"fast", "fast", "slow", "fast"}, order)
}

func TestVirtualCancel(t *testing.T) {
	v := NewVirtual()
	count := 0
	h := v.ScheduleRepeating(10*time.Millisecond, func() { count++ })

	v.Advance(25 * time.Millisecond)
	require.Equal(t, 2, count)

	v.Cancel(h)
	v.Advance(time.Second)
	assert.Equal(t, 2, count)
	assert.Equal(t, 0, v.Pending())

	// Unknown and zero handles are ignored.
	v.Cancel(h)
	v.Cancel(0)
}

func TestVirtualCancelFromCallback(t *testing.T) {
	v := NewVirtual()
	var other Handle
	otherFired := 0

	v.ScheduleRepeating(10*time.Millisecond, func() { v.Cancel(other) })
	other = v.ScheduleRepeating(10*time.Millisecond, func() { otherFired++ })

	v.Advance(100 * time.Millisecond)
	assert.Equal(t, 0, otherFired, "cancelled callback due in the same advance must not fire")
}

func TestVirtualRescheduleFromCallback(t *testing.T) {
	v := NewVirtual()
	var h Handle
	fast := 0

	h = v.ScheduleRepeating(100*time.Millisecond, func() {
		v.Cancel(h)
		h = v.ScheduleRepeating(10*time.Millisecond, func() { fast++ })
	})

	v.Advance(100 * time.Millisecond)
	v.Advance(50 * time.Millisecond)
	assert.Equal(t, 5, fast)

	interval, ok := v.Interval(h)
	require.True(t, ok)
	assert.Equal(t, 10*time.Millisecond, interval)
}

func TestVirtualMinInterval(t *testing.T) {
	v := NewVirtual()
	h := v.ScheduleRepeating(0, func() {})

	interval, ok := v.Interval(h)
	require.True(t, ok)
	assert.Equal(t, MinInterval, interval)
}
