package save_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/internal/scheduling"
	"github.com/m04kA/SMC-CalendarService/pkg/datelock"
)

// UseCase use case сохранения недельного шаблона и разворота доступности на год
type UseCase struct {
	availabilityRepo AvailabilityRepository
	appointmentRepo  AppointmentRepository
	templateRepo     TemplateRepository
	txManager        TransactionManager
	locker           Locker
	metrics          Metrics
	timeProvider     TimeProvider
	logger           Logger
	maxYearsAhead    int
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	availabilityRepo AvailabilityRepository,
	appointmentRepo AppointmentRepository,
	templateRepo TemplateRepository,
	txManager TransactionManager,
	locker Locker,
	metrics Metrics,
	timeProvider TimeProvider,
	maxYearsAhead int,
	logger Logger,
) *UseCase {
	return &UseCase{
		availabilityRepo: availabilityRepo,
		appointmentRepo:  appointmentRepo,
		templateRepo:     templateRepo,
		txManager:        txManager,
		locker:           locker,
		metrics:          metrics,
		timeProvider:     timeProvider,
		logger:           logger,
		maxYearsAhead:    maxYearsAhead,
	}
}

// Execute сохраняет шаблон и заменяет доступность года с сегодняшнего дня до 31 декабря.
// Слоты уже существующих записей снимаются с новой доступности, чтобы их нельзя было занять повторно.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SaveAvailability: year=%d", req.Year)

	now := uc.timeProvider.Now()

	// 1. Валидация входных данных
	if err := validateRequest(req, now, uc.maxYearsAhead); err != nil {
		uc.logger.Warn("SaveAvailability: validation failed: %v", err)
		return nil, err
	}
	tmpl := req.Template.Normalized()

	// 2. Блокируем год целиком
	unlock, err := uc.locker.Lock(ctx, datelock.YearKey(req.Year))
	if err != nil {
		if errors.Is(err, datelock.ErrLockTimeout) {
			uc.logger.Warn("SaveAvailability: year=%d is locked", req.Year)
			return nil, ErrBusy
		}
		uc.logger.Error("SaveAvailability: failed to lock year=%d: %v", req.Year, err)
		return nil, fmt.Errorf("%w: failed to lock year: %v", ErrInternal, err)
	}
	defer func() {
		if err := unlock(context.WithoutCancel(ctx)); err != nil {
			uc.logger.Warn("SaveAvailability: failed to unlock year=%d: %v", req.Year, err)
		}
	}()

	// 3. Разворачиваем шаблон
	days := scheduling.ExpandYear(req.Year, tmpl, now)
	from, to := scheduling.YearRange(req.Year, now)

	resp := &Response{Year: req.Year}

	// 4. Сохраняем в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Сохраняем шаблон
		if err := uc.templateRepo.Save(txCtx, req.Year, tmpl); err != nil {
			uc.logger.Error("SaveAvailability: failed to save template: %v", err)
			return fmt.Errorf("%w: failed to save template: %v", ErrInternal, err)
		}

		// 4.2. Снимаем слоты существующих записей
		appointments, err := uc.appointmentRepo.GetRange(txCtx, from, to)
		if err != nil {
			uc.logger.Error("SaveAvailability: failed to get appointments: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		occupied := days
		for _, appt := range appointments {
			var ok bool
			occupied, ok = scheduling.Occupy(occupied, appt)
			if !ok {
				uc.logger.Warn("SaveAvailability: appointment id=%s at %s %s is outside the new schedule",
					appt.ID, appt.Date.Format(domain.DateFormat), appt.Time)
				resp.OrphanAppointments = append(resp.OrphanAppointments, appt.ID)
				continue
			}
			resp.KeptAppointments++
		}

		// 4.3. Заменяем доступность диапазона
		if err := uc.availabilityRepo.ReplaceRange(txCtx, from, to, occupied); err != nil {
			uc.logger.Error("SaveAvailability: failed to replace availability: %v", err)
			return fmt.Errorf("%w: failed to replace availability: %v", ErrInternal, err)
		}

		resp.DaysWritten = len(occupied)
		for i := range occupied {
			if occupied[i].IsBookable() {
				resp.BookableDays++
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.metrics.AddDaysExpanded(resp.DaysWritten)
	uc.logger.Info("SaveAvailability: year=%d saved, days=%d, bookable=%d, kept=%d, orphans=%d",
		req.Year, resp.DaysWritten, resp.BookableDays, resp.KeptAppointments, len(resp.OrphanAppointments))

	return resp, nil
}
