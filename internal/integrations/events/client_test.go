package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type recordingWriter struct {
	msgs []kafka.Message
	err  error
}

func (w *recordingWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *recordingWriter) Close() error { return nil }

func testAppointment() domain.Appointment {
	return domain.Appointment{
		ID:              "a1",
		Date:            time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC),
		Time:            "9:00am",
		DurationMinutes: 60,
		Service:         "Haircut",
		Client:          domain.Client{Name: "Ann", Email: "ann@example.com"},
	}
}

func TestPublish_WritesKeyedMessage(t *testing.T) {
	w := &recordingWriter{}
	p := &Publisher{writer: w, timeout: time.Second, log: nopLogger{}}

	now := time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)
	err := p.Publish(context.Background(), NewAppointmentEvent(AppointmentBooked, testAppointment(), now))
	require.NoError(t, err)

	require.Len(t, w.msgs, 1)
	msg := w.msgs[0]
	assert.Equal(t, "2025-03-10", string(msg.Key))

	var got Event
	require.NoError(t, json.Unmarshal(msg.Value, &got))
	assert.Equal(t, AppointmentBooked, got.Type)
	assert.Equal(t, "a1", got.AppointmentID)
	assert.Equal(t, "9:00am", got.Time)
	assert.NotEmpty(t, got.ID)
	assert.Equal(t, got.ID, string(msg.Headers[0].Value))
	assert.Equal(t, "appointment.booked", string(msg.Headers[1].Value))
}

func TestPublish_WrapsWriterError(t *testing.T) {
	p := &Publisher{writer: &recordingWriter{err: errors.New("broker down")}, log: nopLogger{}}

	err := p.Publish(context.Background(), NewAppointmentEvent(AppointmentCancelled, testAppointment(), time.Now()))
	assert.ErrorIs(t, err, ErrPublish)
}

func TestPublish_DisabledWithoutBrokers(t *testing.T) {
	p := NewPublisher(nil, "appointments", time.Second, nopLogger{})

	err := p.Publish(context.Background(), NewAppointmentEvent(AppointmentBooked, testAppointment(), time.Now()))
	assert.NoError(t, err)
	assert.NoError(t, p.Close())
}
