package get_week

import (
	"context"

	getWeek "github.com/m04kA/SMC-CalendarService/internal/usecase/get_week"
)

type GetWeekUseCase interface {
	Execute(ctx context.Context, req *getWeek.Request) (*getWeek.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
