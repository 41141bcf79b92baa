package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

func TestFindDay_IgnoresTimeOfDay(t *testing.T) {
	days := store([]int{540}, 1)

	assert.Equal(t, 1, FindDay(days, testDate.Add(23*time.Hour)))
	assert.Equal(t, -1, FindDay(days, testDate.AddDate(0, 0, 1)))
	assert.Nil(t, Lookup(days, testDate.AddDate(0, 1, 0)))
}

func TestReplaceDay_InsertsInOrder(t *testing.T) {
	days := []domain.DayAvailability{
		{Date: testDate, Times: []int{540}},
		{Date: testDate.AddDate(0, 0, 2), Times: []int{600}},
	}

	out := ReplaceDay(days, domain.DayAvailability{Date: testDate.AddDate(0, 0, 1), Times: []int{570}})
	require.Len(t, out, 3)
	assert.Equal(t, []int{570}, out[1].Times)
	assert.Len(t, days, 2)

	out = ReplaceDay(out, domain.DayAvailability{Date: testDate, Times: []int{}})
	require.Len(t, out, 3)
	assert.Empty(t, out[0].Times)
}

func TestFreeSlotsAfter(t *testing.T) {
	day := &domain.DayAvailability{Times: []int{540, 570, 600}}

	assert.Equal(t, []int{600}, FreeSlotsAfter(day, 570))
	assert.Equal(t, []int{540, 570, 600}, FreeSlotsAfter(day, 0))
	assert.Empty(t, FreeSlotsAfter(nil, 0))
}
