package get_week

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CalendarService/internal/testutil"
	getWeek "github.com/m04kA/SMC-CalendarService/internal/usecase/get_week"
)

type useCaseStub struct {
	got *getWeek.Request
	err error
}

func (s *useCaseStub) Execute(_ context.Context, req *getWeek.Request) (*getWeek.Response, error) {
	s.got = req
	if s.err != nil {
		return nil, s.err
	}
	monday := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	return &getWeek.Response{
		WeekStart: monday,
		WeekEnd:   monday.AddDate(0, 0, 6),
		GridStart: 480,
		GridEnd:   1260,
		Days: []getWeek.Day{
			{
				Date: monday, Weekday: "Monday", Open: true, WindowStart: 540, WindowEnd: 720,
				FreeTimes: []int{660, 690}, StaffCount: 1, MaxStaffCount: 2,
				Appointments: []getWeek.Appointment{{ID: "a", Time: "9:00am", StartMinutes: 540, EndMinutes: 600, ClientName: "Ann"}},
			},
			{Date: monday.AddDate(0, 0, 1), Weekday: "Tuesday", FreeTimes: []int{}, Appointments: []getWeek.Appointment{}},
		},
	}, nil
}

func TestHandle(t *testing.T) {
	stub := &useCaseStub{}
	h := NewHandler(stub, testutil.NopLogger{})

	w := httptest.NewRecorder()
	h.Handle(w, httptest.NewRequest(http.MethodGet, "/api/v1/week?date=2025-03-12", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 12, stub.got.Date.Day())
	assert.JSONEq(t, `{
		"weekStart":"2025-03-10","weekEnd":"2025-03-16","gridStart":"8:00am","gridEnd":"9:00pm",
		"days":[
			{"date":"2025-03-10","weekday":"Monday","open":true,"windowStart":"9:00am","windowEnd":"12:00pm",
			 "freeTimes":["11:00am","11:30am"],"staffCount":1,"maxStaffCount":2,
			 "appointments":[{"id":"a","time":"9:00am","startMinutes":540,"endMinutes":600,"clientName":"Ann"}]},
			{"date":"2025-03-11","weekday":"Tuesday","open":false,"freeTimes":[],"staffCount":0,"maxStaffCount":0,"appointments":[]}
		]}`, w.Body.String())
}

func TestHandle_Errors(t *testing.T) {
	w := httptest.NewRecorder()
	NewHandler(&useCaseStub{}, testutil.NopLogger{}).
		Handle(w, httptest.NewRequest(http.MethodGet, "/api/v1/week?date=12-03-2025", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	NewHandler(&useCaseStub{err: errors.New("boom")}, testutil.NopLogger{}).
		Handle(w, httptest.NewRequest(http.MethodGet, "/api/v1/week", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
