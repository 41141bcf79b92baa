package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidTemplate = errors.New("domain: invalid weekly template")
	ErrUnknownWeekday  = errors.New("domain: unknown weekday")
)

// Weekday is the English weekday name used on the wire and in storage.
type Weekday string

const (
	Monday    Weekday = "Monday"
	Tuesday   Weekday = "Tuesday"
	Wednesday Weekday = "Wednesday"
	Thursday  Weekday = "Thursday"
	Friday    Weekday = "Friday"
	Saturday  Weekday = "Saturday"
	Sunday    Weekday = "Sunday"
)

// WeekOrder lists weekdays Monday first, Sunday last.
var WeekOrder = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// ParseWeekday accepts the canonical English name.
func ParseWeekday(s string) (Weekday, error) {
	for _, d := range WeekOrder {
		if string(d) == s {
			return d, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownWeekday, s)
}

// WeekdayOf maps a date to its template weekday.
func WeekdayOf(t time.Time) Weekday {
	// time.Weekday is Sunday-first; shift to Monday-first
	return WeekOrder[(int(t.Weekday())+6)%7]
}

// DayTemplate describes one weekday of the recurring schedule.
// Start and End are minutes since midnight; both are ignored when the day is closed.
type DayTemplate struct {
	Day        Weekday
	IsOpen     bool
	Start      int
	End        int
	StaffCount int
}

// WeeklyTemplate is the recurring open/closed schedule, one entry per weekday.
type WeeklyTemplate []DayTemplate

// Validate checks the template shape: seven unique weekdays and a sane window for every open day.
func (w WeeklyTemplate) Validate() error {
	if len(w) != len(WeekOrder) {
		return fmt.Errorf("%w: expected %d days, got %d", ErrInvalidTemplate, len(WeekOrder), len(w))
	}

	seen := make(map[Weekday]bool, len(w))
	for _, d := range w {
		if _, err := ParseWeekday(string(d.Day)); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidTemplate, err)
		}
		if seen[d.Day] {
			return fmt.Errorf("%w: duplicate day %s", ErrInvalidTemplate, d.Day)
		}
		seen[d.Day] = true

		if !d.IsOpen {
			continue
		}
		if d.Start < 0 || d.End > MinutesPerDay || d.Start >= d.End {
			return fmt.Errorf("%w: %s window %d-%d", ErrInvalidTemplate, d.Day, d.Start, d.End)
		}
		if d.StaffCount < 0 || d.StaffCount > MaxStaffCount {
			return fmt.Errorf("%w: %s staff count %d", ErrInvalidTemplate, d.Day, d.StaffCount)
		}
	}

	return nil
}

// Normalized returns a copy ordered Monday..Sunday with closed days zeroed.
func (w WeeklyTemplate) Normalized() WeeklyTemplate {
	out := make(WeeklyTemplate, 0, len(w))
	for _, day := range WeekOrder {
		d, ok := w.Day(day)
		if !ok {
			continue
		}
		if !d.IsOpen {
			d = DayTemplate{Day: day}
		}
		out = append(out, d)
	}
	return out
}

// Day returns the entry for the given weekday.
func (w WeeklyTemplate) Day(day Weekday) (DayTemplate, bool) {
	for _, d := range w {
		if d.Day == day {
			return d, true
		}
	}
	return DayTemplate{}, false
}

// CapacityOn is the configured staff count for the weekday of date, 0 when closed or unknown.
func (w WeeklyTemplate) CapacityOn(date time.Time) int {
	d, ok := w.Day(WeekdayOf(date))
	if !ok || !d.IsOpen {
		return 0
	}
	return d.StaffCount
}
