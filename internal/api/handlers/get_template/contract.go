package get_template

import (
	"context"

	"github.com/m04kA/SMC-CalendarService/internal/service/availability/models"
)

type TemplateService interface {
	GetTemplate(ctx context.Context, year int) (*models.TemplateResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
