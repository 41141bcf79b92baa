package availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/internal/service/availability/models"
	"github.com/m04kA/SMC-CalendarService/internal/testutil"
)

func date(d int) time.Time {
	return time.Date(2025, time.March, d, 0, 0, 0, 0, time.UTC)
}

func newService() (*Service, *testutil.Store) {
	store := testutil.NewStore()
	store.PutDay(domain.DayAvailability{Date: date(10), Times: []int{540, 570}, StaffCount: 1, MaxStaffCount: 1})
	store.PutDay(domain.DayAvailability{Date: date(11), Times: []int{}, StaffCount: 0, MaxStaffCount: 1})
	store.PutDay(domain.DayAvailability{Date: date(12), Times: []int{780}, StaffCount: 2, MaxStaffCount: 2})
	return NewService(testutil.Availability{S: store}, testutil.Templates{S: store}, testutil.NopLogger{}), store
}

func TestList(t *testing.T) {
	svc, _ := newService()

	all, err := svc.List(context.Background(), &models.ListAvailabilityRequest{})
	require.NoError(t, err)
	require.Equal(t, 3, all.Total)
	assert.Equal(t, []string{"9:00am", "9:30am"}, all.Days[0].Times)
	assert.True(t, all.Days[0].Bookable)
	assert.Equal(t, "Monday", all.Days[0].Weekday)

	// пустой день остаётся в хранилище, но не бронируется
	assert.False(t, all.Days[1].Bookable)
	assert.Empty(t, all.Days[1].Times)

	from, to := date(11), date(12)
	ranged, err := svc.List(context.Background(), &models.ListAvailabilityRequest{From: &from, To: &to})
	require.NoError(t, err)
	assert.Equal(t, 2, ranged.Total)

	open, err := svc.List(context.Background(), &models.ListAvailabilityRequest{From: &to})
	require.NoError(t, err)
	require.Equal(t, 1, open.Total)
	assert.Equal(t, []string{"1:00pm"}, open.Days[0].Times)

	_, err = svc.List(context.Background(), &models.ListAvailabilityRequest{From: &to, To: &from})
	assert.ErrorIs(t, err, ErrInvalidTimeRange)
}

func TestGetTemplate(t *testing.T) {
	svc, store := newService()

	_, err := svc.GetTemplate(context.Background(), 2025)
	assert.ErrorIs(t, err, ErrTemplateNotFound)

	store.Templates[2025] = testutil.WeekdayTemplate(2)
	resp, err := svc.GetTemplate(context.Background(), 2025)
	require.NoError(t, err)
	require.Len(t, resp.Days, 7)
	assert.Equal(t, "Monday", resp.Days[0].Day)
	require.NotNil(t, resp.Days[0].Start)
	assert.Equal(t, "9:00am", *resp.Days[0].Start)
	assert.Equal(t, "5:00pm", *resp.Days[0].End)
	assert.False(t, resp.Days[6].IsOpen)
	assert.Nil(t, resp.Days[6].Start)

	store.Err = errors.New("connection refused")
	_, err = svc.GetTemplate(context.Background(), 2025)
	assert.ErrorIs(t, err, ErrInternal)
}
