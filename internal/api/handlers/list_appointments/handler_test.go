package list_appointments

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CalendarService/internal/service/appointments"
	"github.com/m04kA/SMC-CalendarService/internal/service/appointments/models"
	"github.com/m04kA/SMC-CalendarService/internal/testutil"
)

type serviceStub struct {
	got *models.ListAppointmentsRequest
	err error
}

func (s *serviceStub) List(_ context.Context, req *models.ListAppointmentsRequest) (*models.AppointmentListResponse, error) {
	s.got = req
	if s.err != nil {
		return nil, s.err
	}
	return &models.AppointmentListResponse{Appointments: []models.AppointmentResponse{}, Total: 0}, nil
}

func serve(h *Handler, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.Handle(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestHandle(t *testing.T) {
	stub := &serviceStub{}
	w := serve(NewHandler(stub, testutil.NopLogger{}), "/api/v1/appointments?from=2025-03-01")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"appointments":[],"total":0}`, w.Body.String())
	require.NotNil(t, stub.got.From)
	assert.Equal(t, 1, stub.got.From.Day())
	assert.Nil(t, stub.got.To)
}

func TestHandle_Errors(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest,
		serve(NewHandler(&serviceStub{}, testutil.NopLogger{}), "/api/v1/appointments?to=march").Code)
	assert.Equal(t, http.StatusBadRequest,
		serve(NewHandler(&serviceStub{err: appointments.ErrInvalidTimeRange}, testutil.NopLogger{}), "/api/v1/appointments").Code)
	assert.Equal(t, http.StatusInternalServerError,
		serve(NewHandler(&serviceStub{err: errors.New("boom")}, testutil.NopLogger{}), "/api/v1/appointments").Code)
}
