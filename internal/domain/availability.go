package domain

import (
	"sort"
	"time"
)

// DayAvailability holds the remaining bookable slots of one calendar date.
//
// Times are minutes since midnight, ascending, unique, multiples of SlotMinutes.
// StaffCount is the remaining simultaneous capacity; MaxStaffCount is the ceiling
// configured when the template was expanded and bounds StaffCount on reclaim.
type DayAvailability struct {
	Date          time.Time
	Times         []int
	StaffCount    int
	MaxStaffCount int
}

// IsBookable reports whether any slot remains. A record with no times is equivalent to an absent one.
func (d *DayAvailability) IsBookable() bool {
	return d != nil && len(d.Times) > 0
}

// Clone returns a deep copy.
func (d DayAvailability) Clone() DayAvailability {
	out := d
	if d.Times != nil {
		out.Times = append(make([]int, 0, len(d.Times)), d.Times...)
	}
	return out
}

// HasTime reports whether minute t is still free.
func (d *DayAvailability) HasTime(t int) bool {
	i := sort.SearchInts(d.Times, t)
	return i < len(d.Times) && d.Times[i] == t
}

// DateOnly drops the time-of-day, keeping the location.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// SameDate compares calendar dates (year, month, day) ignoring time-of-day.
func SameDate(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// IsBeforeDate reports whether a falls on an earlier calendar date than b.
func IsBeforeDate(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	if y1 != y2 {
		return y1 < y2
	}
	if m1 != m2 {
		return m1 < m2
	}
	return d1 < d2
}

// MinutesOfDay returns minutes since midnight of t.
func MinutesOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}
