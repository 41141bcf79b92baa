package save_availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/pkg/datelock"
)

// AvailabilityRepository интерфейс репозитория доступности
type AvailabilityRepository interface {
	ReplaceRange(ctx context.Context, from, to time.Time, days []domain.DayAvailability) error
}

// AppointmentRepository интерфейс репозитория записей клиентов
type AppointmentRepository interface {
	GetRange(ctx context.Context, from, to time.Time) ([]domain.Appointment, error)
}

// TemplateRepository интерфейс репозитория недельных шаблонов
type TemplateRepository interface {
	Save(ctx context.Context, year int, tmpl domain.WeeklyTemplate) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Locker блокировка по ключу (дата или год)
type Locker interface {
	Lock(ctx context.Context, key string) (datelock.Unlock, error)
}

// Metrics метрики разворота шаблона
type Metrics interface {
	AddDaysExpanded(n int)
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

// RealTimeProvider реальный провайдер времени в часовом поясе календаря
type RealTimeProvider struct {
	Location *time.Location
}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	if p.Location == nil {
		return time.Now()
	}
	return time.Now().In(p.Location)
}
