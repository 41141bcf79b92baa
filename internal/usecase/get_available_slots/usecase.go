package get_available_slots

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// UseCase use case для получения свободных слотов в окне записи
type UseCase struct {
	availabilityRepo AvailabilityRepository
	timeProvider     TimeProvider
	logger           Logger
	defaultDays      int
	maxDays          int
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	availabilityRepo AvailabilityRepository,
	timeProvider TimeProvider,
	defaultDays int,
	maxDays int,
	logger Logger,
) *UseCase {
	return &UseCase{
		availabilityRepo: availabilityRepo,
		timeProvider:     timeProvider,
		logger:           logger,
		defaultDays:      defaultDays,
		maxDays:          maxDays,
	}
}

// Execute выполняет use case получения свободных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: from=%s, days=%d", req.From.Format(domain.DateFormat), req.Days)

	// 1. Валидация входных данных
	if err := validateRequest(req, uc.maxDays); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время и границы окна
	now := uc.timeProvider.Now()

	from := domain.DateOnly(now)
	if !req.From.IsZero() {
		from = time.Date(req.From.Year(), req.From.Month(), req.From.Day(), 0, 0, 0, 0, now.Location())
	}

	if err := validateDate(from, now); err != nil {
		uc.logger.Warn("GetAvailableSlots: %v", err)
		return nil, err
	}

	days := req.Days
	if days == 0 {
		days = uc.defaultDays
	}
	to := from.AddDate(0, 0, days-1)

	// 3. Получаем доступность за окно
	records, err := uc.availabilityRepo.GetRange(ctx, from, to)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get availability: %v", err)
		return nil, fmt.Errorf("%w: failed to get availability: %v", ErrInternal, err)
	}

	// 4. Раскладываем слоты по дням
	result := buildDays(from, days, records, now)

	uc.logger.Info("GetAvailableSlots: %d days from %s, %d records found",
		len(result), from.Format(domain.DateFormat), len(records))

	return &Response{
		From: from,
		To:   to,
		Days: result,
	}, nil
}
