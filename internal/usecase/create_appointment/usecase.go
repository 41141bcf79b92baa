package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	availabilityRepo "github.com/m04kA/SMC-CalendarService/internal/infra/storage/availability"
	"github.com/m04kA/SMC-CalendarService/internal/integrations/events"
	"github.com/m04kA/SMC-CalendarService/internal/scheduling"
	"github.com/m04kA/SMC-CalendarService/pkg/datelock"
	"github.com/m04kA/SMC-CalendarService/pkg/types"
)

// UseCase use case записи клиента на слот
type UseCase struct {
	availabilityRepo AvailabilityRepository
	appointmentRepo  AppointmentRepository
	txManager        TransactionManager
	locker           Locker
	publisher        EventPublisher
	metrics          Metrics
	timeProvider     TimeProvider
	logger           Logger
	durationMinutes  int
	newID            func() string
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	availabilityRepo AvailabilityRepository,
	appointmentRepo AppointmentRepository,
	txManager TransactionManager,
	locker Locker,
	publisher EventPublisher,
	metrics Metrics,
	timeProvider TimeProvider,
	durationMinutes int,
	logger Logger,
) *UseCase {
	return &UseCase{
		availabilityRepo: availabilityRepo,
		appointmentRepo:  appointmentRepo,
		txManager:        txManager,
		locker:           locker,
		publisher:        publisher,
		metrics:          metrics,
		timeProvider:     timeProvider,
		logger:           logger,
		durationMinutes:  durationMinutes,
		newID:            uuid.NewString,
	}
}

// Execute выполняет запись.
// Запросы на одну дату выполняются по очереди: блокировка даты, затем сериализуемая транзакция,
// в которой строка доступности читается FOR UPDATE.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: date=%s, time=%s, client=%s",
		req.Date.Format(domain.DateFormat), req.Time, req.ClientName)

	// 1. Валидация входных данных
	start, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Дата в часовом поясе календаря
	now := uc.timeProvider.Now()
	date := time.Date(req.Date.Year(), req.Date.Month(), req.Date.Day(), 0, 0, 0, 0, now.Location())

	if err := validateNotPast(date, start, now); err != nil {
		uc.logger.Warn("CreateAppointment: %v", err)
		uc.metrics.IncBookingRejected("past")
		return nil, err
	}

	// 3. Блокируем дату
	unlock, err := uc.locker.Lock(ctx, datelock.Key(date))
	if err != nil {
		if errors.Is(err, datelock.ErrLockTimeout) {
			uc.logger.Warn("CreateAppointment: date %s is locked", date.Format(domain.DateFormat))
			return nil, ErrBusy
		}
		uc.logger.Error("CreateAppointment: failed to lock date %s: %v", date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: failed to lock date: %v", ErrInternal, err)
	}
	defer func() {
		if err := unlock(context.WithoutCancel(ctx)); err != nil {
			uc.logger.Warn("CreateAppointment: failed to unlock date %s: %v", date.Format(domain.DateFormat), err)
		}
	}()

	var alloc *scheduling.Allocation

	// 4. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Получаем доступность на дату с блокировкой строки
		days := make([]domain.DayAvailability, 0, 1)
		day, err := uc.availabilityRepo.GetByDate(txCtx, date)
		switch {
		case errors.Is(err, availabilityRepo.ErrNotFound):
			// записи нет: аллокатор вернёт ErrNoAvailability
		case err != nil:
			uc.logger.Error("CreateAppointment: failed to get availability: %v", err)
			return fmt.Errorf("%w: failed to get availability: %v", ErrInternal, err)
		default:
			days = append(days, *day)
		}

		// 4.2. Проверяем и занимаем слоты
		alloc, err = scheduling.BookSlot(scheduling.BookRequest{
			Date:            date,
			Time:            types.MinutesToTimeString(start),
			DurationMinutes: uc.durationMinutes,
			Service:         req.Service,
			Client: domain.Client{
				Name:  req.ClientName,
				Email: req.ClientEmail,
				Phone: req.ClientPhone,
			},
			Notes:     req.Notes,
			CreatedAt: now,
		}, days, uc.newID)
		if err != nil {
			return uc.mapBookingError(err)
		}

		// 4.3. Сохраняем запись и обновлённую доступность
		if err := uc.appointmentRepo.Create(txCtx, alloc.Appointment); err != nil {
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		if err := uc.availabilityRepo.Upsert(txCtx, alloc.Day); err != nil {
			uc.logger.Error("CreateAppointment: failed to update availability: %v", err)
			return fmt.Errorf("%w: failed to update availability: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	appt := alloc.Appointment
	uc.metrics.IncAppointmentsBooked()
	uc.logger.Info("CreateAppointment: created appointment id=%s on %s at %s, remaining slots=%d",
		appt.ID, appt.Date.Format(domain.DateFormat), appt.Time, len(alloc.Day.Times))

	// 5. Публикуем событие; ошибка публикации не отменяет запись
	if err := uc.publisher.Publish(ctx, events.NewAppointmentEvent(events.AppointmentBooked, appt, now)); err != nil {
		uc.logger.Error("CreateAppointment: failed to publish event for id=%s: %v", appt.ID, err)
	}

	return &Response{
		ID:              appt.ID,
		Date:            appt.Date,
		Time:            appt.Time,
		StartAt:         appt.Start,
		DurationMinutes: appt.DurationMinutes,
		Service:         appt.Service,
		ClientName:      appt.Client.Name,
		ClientEmail:     appt.Client.Email,
		ClientPhone:     appt.Client.Phone,
		Notes:           appt.Notes,
		RemainingTimes:  alloc.Day.Times,
		StaffCount:      alloc.Day.StaffCount,
		CreatedAt:       appt.CreatedAt,
	}, nil
}

// mapBookingError переводит ошибки аллокатора в ошибки use case
func (uc *UseCase) mapBookingError(err error) error {
	var (
		target error
		reason string
	)

	switch {
	case errors.Is(err, scheduling.ErrInvalidTimeFormat):
		target, reason = ErrInvalidTime, "invalid_time"
	case errors.Is(err, scheduling.ErrNoAvailability):
		target, reason = ErrNoAvailability, "no_availability"
	case errors.Is(err, scheduling.ErrSlotNotAvailable):
		target, reason = ErrSlotNotAvailable, "slot_not_available"
	case errors.Is(err, scheduling.ErrInsufficientSlots):
		target, reason = ErrInsufficientSlots, "insufficient_slots"
	case errors.Is(err, scheduling.ErrSlotsNotContiguous):
		target, reason = ErrSlotsNotContiguous, "slots_not_contiguous"
	default:
		uc.logger.Error("CreateAppointment: allocation failed: %v", err)
		return fmt.Errorf("%w: allocation failed: %v", ErrInternal, err)
	}

	uc.logger.Warn("CreateAppointment: rejected: %v", err)
	uc.metrics.IncBookingRejected(reason)
	return fmt.Errorf("%w: %v", target, err)
}
