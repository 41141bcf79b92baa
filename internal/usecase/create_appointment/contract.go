package create_appointment

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/internal/integrations/events"
	"github.com/m04kA/SMC-CalendarService/pkg/datelock"
)

// AvailabilityRepository интерфейс репозитория доступности
type AvailabilityRepository interface {
	GetByDate(ctx context.Context, date time.Time) (*domain.DayAvailability, error)
	Upsert(ctx context.Context, day domain.DayAvailability) error
}

// AppointmentRepository интерфейс репозитория записей клиентов
type AppointmentRepository interface {
	Create(ctx context.Context, appt domain.Appointment) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Locker блокировка по дате
type Locker interface {
	Lock(ctx context.Context, key string) (datelock.Unlock, error)
}

// EventPublisher публикация событий о записях
type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

// Metrics метрики бронирования
type Metrics interface {
	IncAppointmentsBooked()
	IncBookingRejected(reason string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
