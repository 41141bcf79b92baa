package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

func testTemplate() domain.WeeklyTemplate {
	return domain.WeeklyTemplate{
		{Day: domain.Monday, IsOpen: true, Start: 540, End: 1020, StaffCount: 2},
		{Day: domain.Tuesday, IsOpen: true, Start: 540, End: 1020, StaffCount: 2},
		{Day: domain.Wednesday, IsOpen: false},
		{Day: domain.Thursday, IsOpen: true, Start: 600, End: 720, StaffCount: 1},
		{Day: domain.Friday, IsOpen: true, Start: 540, End: 1020, StaffCount: 3},
		{Day: domain.Saturday, IsOpen: true, Start: 600, End: 840, StaffCount: 1},
		{Day: domain.Sunday, IsOpen: false},
	}
}

func TestExpandYear_SkipsPastAndClosedDays(t *testing.T) {
	// Wednesday 2025-12-24
	today := time.Date(2025, time.December, 24, 15, 30, 0, 0, time.UTC)

	days := ExpandYear(2025, testTemplate(), today)

	// 24 Wed closed, 25 Thu, 26 Fri, 27 Sat, 28 Sun closed, 29 Mon, 30 Tue, 31 Wed closed
	require.Len(t, days, 5)

	wantDates := []int{25, 26, 27, 29, 30}
	for i, d := range days {
		assert.Equal(t, wantDates[i], d.Date.Day())
		assert.Equal(t, 0, d.Date.Hour())
		assert.NotEqual(t, time.Wednesday, d.Date.Weekday())
		assert.NotEqual(t, time.Sunday, d.Date.Weekday())
	}

	thursday := days[0]
	assert.Equal(t, []int{600, 630, 660, 690}, thursday.Times)
	assert.Equal(t, 1, thursday.StaffCount)
	assert.Equal(t, 1, thursday.MaxStaffCount)

	friday := days[1]
	assert.Equal(t, 3, friday.StaffCount)
	assert.Equal(t, 990, friday.Times[len(friday.Times)-1])
}

func TestExpandYear_IncludesToday(t *testing.T) {
	// Monday 2025-03-03, late in the day
	today := time.Date(2025, time.March, 3, 23, 0, 0, 0, time.UTC)

	days := ExpandYear(2025, testTemplate(), today)
	require.NotEmpty(t, days)
	assert.True(t, domain.SameDate(days[0].Date, today))
}

func TestExpandYear_FullYearOrderedAndUnique(t *testing.T) {
	today := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)

	days := ExpandYear(2025, testTemplate(), today)

	// считаем открытые дни напрямую: всё, кроме среды и воскресенья
	open := 0
	for d := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC); d.Year() == 2025; d = d.AddDate(0, 0, 1) {
		if w := d.Weekday(); w != time.Wednesday && w != time.Sunday {
			open++
		}
	}
	require.Len(t, days, open)

	for i := 1; i < len(days); i++ {
		assert.True(t, days[i-1].Date.Before(days[i].Date))
	}
}

func TestExpandYear_Idempotent(t *testing.T) {
	today := time.Date(2025, time.April, 10, 9, 0, 0, 0, time.UTC)

	first := ExpandYear(2025, testTemplate(), today)
	second := ExpandYear(2025, testTemplate(), today)

	assert.Equal(t, first, second)
}

func TestExpandYear_PastYear(t *testing.T) {
	today := time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC)
	assert.Empty(t, ExpandYear(2025, testTemplate(), today))
}

func TestYearRange(t *testing.T) {
	today := time.Date(2025, time.April, 10, 9, 0, 0, 0, time.UTC)

	from, to := YearRange(2025, today)
	assert.Equal(t, time.Date(2025, time.April, 10, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC), to)

	from, _ = YearRange(2026, today)
	assert.Equal(t, time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC), from)
}
