package cancel_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-CalendarService/internal/infra/storage/appointment"
	availabilityRepo "github.com/m04kA/SMC-CalendarService/internal/infra/storage/availability"
	templateRepo "github.com/m04kA/SMC-CalendarService/internal/infra/storage/template"
	"github.com/m04kA/SMC-CalendarService/internal/integrations/events"
	"github.com/m04kA/SMC-CalendarService/internal/scheduling"
	"github.com/m04kA/SMC-CalendarService/pkg/datelock"
)

// UseCase use case отмены записи
type UseCase struct {
	availabilityRepo AvailabilityRepository
	appointmentRepo  AppointmentRepository
	templateRepo     TemplateRepository
	txManager        TransactionManager
	locker           Locker
	publisher        EventPublisher
	metrics          Metrics
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	availabilityRepo AvailabilityRepository,
	appointmentRepo AppointmentRepository,
	templateRepo TemplateRepository,
	txManager TransactionManager,
	locker Locker,
	publisher EventPublisher,
	metrics Metrics,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		availabilityRepo: availabilityRepo,
		appointmentRepo:  appointmentRepo,
		templateRepo:     templateRepo,
		txManager:        txManager,
		locker:           locker,
		publisher:        publisher,
		metrics:          metrics,
		timeProvider:     timeProvider,
		logger:           logger,
	}
}

// Execute удаляет запись и возвращает её слоты в пул даты.
// Для прошедших дат запись просто удаляется.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CancelAppointment: id=%s", req.ID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CancelAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Находим запись, чтобы знать, какую дату блокировать
	appt, err := uc.getAppointment(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	// 3. Блокируем дату записи
	unlock, err := uc.locker.Lock(ctx, datelock.Key(appt.Date))
	if err != nil {
		if errors.Is(err, datelock.ErrLockTimeout) {
			uc.logger.Warn("CancelAppointment: date %s is locked", appt.Date.Format(domain.DateFormat))
			return nil, ErrBusy
		}
		uc.logger.Error("CancelAppointment: failed to lock date %s: %v", appt.Date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: failed to lock date: %v", ErrInternal, err)
	}
	defer func() {
		if err := unlock(context.WithoutCancel(ctx)); err != nil {
			uc.logger.Warn("CancelAppointment: failed to unlock date %s: %v", appt.Date.Format(domain.DateFormat), err)
		}
	}()

	now := uc.timeProvider.Now()
	resp := &Response{ID: req.ID}

	// 4. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Перечитываем запись под блокировкой, её могли отменить параллельно
		current, err := uc.getAppointment(txCtx, req.ID)
		if err != nil {
			return err
		}
		appt = current
		resp.Date, resp.Time = current.Date, current.Time

		// 4.2. Для прошедших дат слоты не возвращаются, для закрытых по шаблону тоже
		if !domain.IsBeforeDate(current.Date, now) {
			release, err := uc.reclaim(txCtx, *current)
			if err != nil {
				return err
			}
			if release != nil {
				if err := uc.availabilityRepo.Upsert(txCtx, release.Day); err != nil {
					uc.logger.Error("CancelAppointment: failed to update availability: %v", err)
					return fmt.Errorf("%w: failed to update availability: %v", ErrInternal, err)
				}
				resp.Reclaimed = true
				resp.AvailableTimes = release.Day.Times
				resp.StaffCount = release.Day.StaffCount
			}
		}

		// 4.3. Удаляем запись
		if err := uc.appointmentRepo.Delete(txCtx, current.ID); err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				return ErrAppointmentNotFound
			}
			uc.logger.Error("CancelAppointment: failed to delete appointment: %v", err)
			return fmt.Errorf("%w: failed to delete appointment: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.metrics.IncAppointmentsCancelled()
	uc.logger.Info("CancelAppointment: cancelled id=%s on %s at %s, reclaimed=%t",
		appt.ID, appt.Date.Format(domain.DateFormat), appt.Time, resp.Reclaimed)

	// 5. Публикуем событие; ошибка публикации не отменяет отмену
	if err := uc.publisher.Publish(ctx, events.NewAppointmentEvent(events.AppointmentCancelled, *appt, now)); err != nil {
		uc.logger.Error("CancelAppointment: failed to publish event for id=%s: %v", appt.ID, err)
	}

	return resp, nil
}

func (uc *UseCase) getAppointment(ctx context.Context, id string) (*domain.Appointment, error) {
	appt, err := uc.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			uc.logger.Warn("CancelAppointment: appointment not found: id=%s", id)
			return nil, ErrAppointmentNotFound
		}
		uc.logger.Error("CancelAppointment: failed to get appointment id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
	}
	return appt, nil
}

// reclaim возвращает слоты записи в запись доступности её даты.
// Возвращает nil, если по текущему шаблону вернуть нечего.
func (uc *UseCase) reclaim(ctx context.Context, appt domain.Appointment) (*scheduling.Release, error) {
	days := make([]domain.DayAvailability, 0, 1)
	day, err := uc.availabilityRepo.GetByDate(ctx, appt.Date)
	switch {
	case errors.Is(err, availabilityRepo.ErrNotFound):
		// записи нет: создадим её с потолком из шаблона
	case err != nil:
		uc.logger.Error("CancelAppointment: failed to get availability: %v", err)
		return nil, fmt.Errorf("%w: failed to get availability: %v", ErrInternal, err)
	default:
		days = append(days, *day)
	}

	// Шаблон года ограничивает возвращаемые слоты: после пересохранения день мог закрыться или сдвинуться
	var bounds scheduling.Bounds
	tmpl, err := uc.templateRepo.GetByYear(ctx, appt.Date.Year())
	switch {
	case errors.Is(err, templateRepo.ErrTemplateNotFound):
		uc.logger.Warn("CancelAppointment: no template for year %d", appt.Date.Year())
	case err != nil:
		uc.logger.Error("CancelAppointment: failed to get template: %v", err)
		return nil, fmt.Errorf("%w: failed to get template: %v", ErrInternal, err)
	default:
		bounds = scheduling.TemplateBounds(tmpl, appt.Date)
	}

	release, err := scheduling.Reclaim(appt, days, bounds)
	if err != nil {
		if errors.Is(err, scheduling.ErrNothingToReclaim) {
			uc.logger.Info("CancelAppointment: slots of id=%s are outside the current schedule, nothing to reclaim", appt.ID)
			return nil, nil
		}
		uc.logger.Error("CancelAppointment: failed to reclaim slots: %v", err)
		return nil, fmt.Errorf("%w: failed to reclaim slots: %v", ErrInternal, err)
	}
	return release, nil
}
