package appointments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-CalendarService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-CalendarService/internal/service/appointments/models"
)

// Service сервис для чтения записей клиентов
type Service struct {
	appointmentRepo AppointmentRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(appointmentRepo AppointmentRepository, logger Logger) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		logger:          logger,
	}
}

// GetByID получает запись по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%s", id)

	if _, err := uuid.Parse(id); err != nil {
		s.logger.Warn("GetByID: invalid id=%q", id)
		return nil, fmt.Errorf("%w: invalid appointment id", ErrInvalidInput)
	}

	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%s not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAppointment(appt), nil
}

// List получает записи за период, отсортированные по времени начала.
// Без границ возвращает все записи; с одной границей период открыт с другой стороны.
func (s *Service) List(ctx context.Context, req *models.ListAppointmentsRequest) (*models.AppointmentListResponse, error) {
	if req.From != nil && req.To != nil && req.From.After(*req.To) {
		s.logger.Warn("List: from=%s is after to=%s",
			req.From.Format(domain.DateFormat), req.To.Format(domain.DateFormat))
		return nil, ErrInvalidTimeRange
	}

	var (
		list []domain.Appointment
		err  error
	)
	if req.From == nil && req.To == nil {
		s.logger.Info("List: fetching all appointments")
		list, err = s.appointmentRepo.GetAll(ctx)
	} else {
		from, to := bounds(req.From, req.To)
		s.logger.Info("List: fetching appointments %s - %s", from.Format(domain.DateFormat), to.Format(domain.DateFormat))
		list, err = s.appointmentRepo.GetRange(ctx, from, to)
	}
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d appointments", len(list))
	return models.FromDomainAppointmentList(list), nil
}

func bounds(from, to *time.Time) (time.Time, time.Time) {
	lo := time.Date(1, 1, 1, 0, 0, 0, 0, time.UTC)
	hi := time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC)
	if from != nil {
		lo = *from
	}
	if to != nil {
		hi = *to
	}
	return lo, hi
}
