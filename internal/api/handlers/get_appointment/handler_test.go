package get_appointment

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-CalendarService/internal/service/appointments"
	"github.com/m04kA/SMC-CalendarService/internal/service/appointments/models"
	"github.com/m04kA/SMC-CalendarService/internal/testutil"
)

type serviceStub struct {
	err error
}

func (s serviceStub) GetByID(_ context.Context, id string) (*models.AppointmentResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.AppointmentResponse{ID: id, Date: "2025-03-11", Time: "9:00am"}, nil
}

func serve(h *Handler, id string) *httptest.ResponseRecorder {
	r := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/api/v1/appointments/"+id, nil), map[string]string{"id": id})
	w := httptest.NewRecorder()
	h.Handle(w, r)
	return w
}

func TestHandle(t *testing.T) {
	w := serve(NewHandler(serviceStub{}, testutil.NopLogger{}), "abc")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"abc"`)

	tests := []struct {
		err  error
		code int
	}{
		{appointments.ErrInvalidInput, http.StatusBadRequest},
		{appointments.ErrAppointmentNotFound, http.StatusNotFound},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.code, serve(NewHandler(serviceStub{err: tt.err}, testutil.NopLogger{}), "abc").Code)
	}
}
