package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func weekdayTemplate() WeeklyTemplate {
	return WeeklyTemplate{
		{Day: Monday, IsOpen: true, Start: 540, End: 1020, StaffCount: 2},
		{Day: Tuesday, IsOpen: true, Start: 540, End: 1020, StaffCount: 2},
		{Day: Wednesday, IsOpen: true, Start: 540, End: 1020, StaffCount: 2},
		{Day: Thursday, IsOpen: true, Start: 540, End: 1020, StaffCount: 2},
		{Day: Friday, IsOpen: true, Start: 540, End: 1020, StaffCount: 2},
		{Day: Saturday, IsOpen: false},
		{Day: Sunday, IsOpen: false, Start: 600, End: 700, StaffCount: 3},
	}
}

func TestWeeklyTemplate_Validate(t *testing.T) {
	require.NoError(t, weekdayTemplate().Validate())

	tests := []struct {
		name   string
		mutate func(WeeklyTemplate) WeeklyTemplate
	}{
		{"too few days", func(w WeeklyTemplate) WeeklyTemplate { return w[:6] }},
		{"duplicate day", func(w WeeklyTemplate) WeeklyTemplate { w[6].Day = Monday; return w }},
		{"unknown day", func(w WeeklyTemplate) WeeklyTemplate { w[0].Day = "Funday"; return w }},
		{"end before start", func(w WeeklyTemplate) WeeklyTemplate { w[0].End = 500; return w }},
		{"end equals start", func(w WeeklyTemplate) WeeklyTemplate { w[0].End = 540; return w }},
		{"past midnight", func(w WeeklyTemplate) WeeklyTemplate { w[0].End = 1500; return w }},
		{"negative staff", func(w WeeklyTemplate) WeeklyTemplate { w[0].StaffCount = -1; return w }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.mutate(weekdayTemplate()).Validate()
			assert.ErrorIs(t, err, ErrInvalidTemplate)
		})
	}
}

func TestWeeklyTemplate_Normalized(t *testing.T) {
	w := weekdayTemplate()
	// reverse order on input
	for i, j := 0, len(w)-1; i < j; i, j = i+1, j-1 {
		w[i], w[j] = w[j], w[i]
	}

	n := w.Normalized()
	require.Len(t, n, 7)
	assert.Equal(t, Monday, n[0].Day)
	assert.Equal(t, Sunday, n[6].Day)
	assert.Equal(t, DayTemplate{Day: Sunday}, n[6])
}

func TestWeekdayOf(t *testing.T) {
	// 2025-03-03 is a Monday
	monday := time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC)
	for i, want := range WeekOrder {
		assert.Equal(t, want, WeekdayOf(monday.AddDate(0, 0, i)))
	}
}

func TestWeeklyTemplate_CapacityOn(t *testing.T) {
	w := weekdayTemplate()
	monday := time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC)
	sunday := monday.AddDate(0, 0, 6)

	assert.Equal(t, 2, w.CapacityOn(monday))
	assert.Equal(t, 0, w.CapacityOn(sunday))
	assert.Equal(t, 0, WeeklyTemplate(nil).CapacityOn(monday))
}
