package availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// AvailabilityRepository интерфейс репозитория доступности
type AvailabilityRepository interface {
	GetAll(ctx context.Context) ([]domain.DayAvailability, error)
	GetRange(ctx context.Context, from, to time.Time) ([]domain.DayAvailability, error)
}

// TemplateRepository интерфейс репозитория недельных шаблонов
type TemplateRepository interface {
	GetByYear(ctx context.Context, year int) (domain.WeeklyTemplate, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
