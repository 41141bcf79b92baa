package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDayAvailability_IsBookable(t *testing.T) {
	var absent *DayAvailability
	assert.False(t, absent.IsBookable())
	assert.False(t, (&DayAvailability{Times: []int{}}).IsBookable())
	assert.True(t, (&DayAvailability{Times: []int{540}}).IsBookable())
}

func TestDayAvailability_Clone(t *testing.T) {
	orig := DayAvailability{Times: []int{540, 570}, StaffCount: 1}
	c := orig.Clone()
	c.Times[0] = 0

	assert.Equal(t, 540, orig.Times[0])
}

func TestDayAvailability_HasTime(t *testing.T) {
	d := &DayAvailability{Times: []int{540, 570, 660}}
	assert.True(t, d.HasTime(570))
	assert.False(t, d.HasTime(600))
	assert.False(t, d.HasTime(700))
}

func TestSameDate(t *testing.T) {
	a := time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC)
	b := time.Date(2025, time.May, 1, 23, 59, 0, 0, time.UTC)
	c := time.Date(2025, time.May, 2, 0, 0, 0, 0, time.UTC)

	assert.True(t, SameDate(a, b))
	assert.False(t, SameDate(a, c))
	assert.True(t, IsBeforeDate(b, c))
	assert.False(t, IsBeforeDate(c, a))
	assert.False(t, IsBeforeDate(a, b))
}

func TestSlotsNeeded(t *testing.T) {
	assert.Equal(t, 2, SlotsNeeded(60))
	assert.Equal(t, 1, SlotsNeeded(30))
	assert.Equal(t, 2, SlotsNeeded(45))
	assert.Equal(t, 0, SlotsNeeded(0))
}
