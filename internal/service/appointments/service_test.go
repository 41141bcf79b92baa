package appointments

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/internal/service/appointments/models"
	"github.com/m04kA/SMC-CalendarService/internal/testutil"
)

const (
	firstID  = "8c1d4a7e-2f3b-4c5d-9e6f-0a1b2c3d4e5f"
	secondID = "1b2c3d4e-5f60-4718-92a3-b4c5d6e7f809"
)

func date(d int) time.Time {
	return time.Date(2025, time.March, d, 0, 0, 0, 0, time.UTC)
}

func newService() (*Service, *testutil.Store) {
	store := testutil.NewStore()
	store.Appointments[firstID] = domain.Appointment{
		ID: firstID, Date: date(11), Start: date(11).Add(9 * time.Hour), Time: "9:00am",
		DurationMinutes: 60, Client: domain.Client{Name: "Ann"},
	}
	store.Appointments[secondID] = domain.Appointment{
		ID: secondID, Date: date(14), Start: date(14).Add(14 * time.Hour), Time: "2:00pm",
		DurationMinutes: 60, Client: domain.Client{Name: "Bob"},
	}
	return NewService(testutil.Appointments{S: store}, testutil.NopLogger{}), store
}

func TestGetByID(t *testing.T) {
	svc, _ := newService()

	resp, err := svc.GetByID(context.Background(), firstID)
	require.NoError(t, err)
	assert.Equal(t, "2025-03-11", resp.Date)
	assert.Equal(t, "9:00am", resp.Time)
	assert.Equal(t, date(11).Add(10*time.Hour), resp.EndAt)
	assert.Equal(t, "Ann", resp.Client.Name)

	_, err = svc.GetByID(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.GetByID(context.Background(), "00000000-0000-4000-8000-000000000000")
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestList(t *testing.T) {
	svc, _ := newService()

	all, err := svc.List(context.Background(), &models.ListAppointmentsRequest{})
	require.NoError(t, err)
	assert.Equal(t, 2, all.Total)
	assert.Equal(t, firstID, all.Appointments[0].ID)

	from, to := date(12), date(20)
	ranged, err := svc.List(context.Background(), &models.ListAppointmentsRequest{From: &from, To: &to})
	require.NoError(t, err)
	require.Equal(t, 1, ranged.Total)
	assert.Equal(t, secondID, ranged.Appointments[0].ID)

	upTo := date(11)
	open, err := svc.List(context.Background(), &models.ListAppointmentsRequest{To: &upTo})
	require.NoError(t, err)
	assert.Equal(t, 1, open.Total)

	_, err = svc.List(context.Background(), &models.ListAppointmentsRequest{From: &to, To: &from})
	assert.ErrorIs(t, err, ErrInvalidTimeRange)
}

func TestList_RepositoryError(t *testing.T) {
	svc, store := newService()
	store.Err = errors.New("connection refused")

	_, err := svc.List(context.Background(), &models.ListAppointmentsRequest{})
	assert.ErrorIs(t, err, ErrInternal)
}
