package get_week

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// UseCase use case данных для недельного календаря
type UseCase struct {
	availabilityRepo AvailabilityRepository
	appointmentRepo  AppointmentRepository
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	availabilityRepo AvailabilityRepository,
	appointmentRepo AppointmentRepository,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		availabilityRepo: availabilityRepo,
		appointmentRepo:  appointmentRepo,
		timeProvider:     timeProvider,
		logger:           logger,
	}
}

// Execute возвращает неделю, содержащую запрошенную дату
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	now := uc.timeProvider.Now()

	date := domain.DateOnly(now)
	if !req.Date.IsZero() {
		date = time.Date(req.Date.Year(), req.Date.Month(), req.Date.Day(), 0, 0, 0, 0, now.Location())
	}

	from := weekStart(date)
	to := from.AddDate(0, 0, len(domain.WeekOrder)-1)
	uc.logger.Info("GetWeek: %s - %s", from.Format(domain.DateFormat), to.Format(domain.DateFormat))

	records, err := uc.availabilityRepo.GetRange(ctx, from, to)
	if err != nil {
		uc.logger.Error("GetWeek: failed to get availability: %v", err)
		return nil, fmt.Errorf("%w: failed to get availability: %v", ErrInternal, err)
	}

	appts, err := uc.appointmentRepo.GetRange(ctx, from, to)
	if err != nil {
		uc.logger.Error("GetWeek: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	return &Response{
		WeekStart: from,
		WeekEnd:   to,
		GridStart: domain.GridStartMinutes,
		GridEnd:   domain.GridEndMinutes,
		Days:      buildWeek(from, records, appts),
	}, nil
}
