package availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	templateRepo "github.com/m04kA/SMC-CalendarService/internal/infra/storage/template"
	"github.com/m04kA/SMC-CalendarService/internal/service/availability/models"
)

// Service сервис чтения доступности и шаблонов
type Service struct {
	availabilityRepo AvailabilityRepository
	templateRepo     TemplateRepository
	logger           Logger
}

// NewService создает новый экземпляр сервиса доступности
func NewService(availabilityRepo AvailabilityRepository, templateRepo TemplateRepository, logger Logger) *Service {
	return &Service{
		availabilityRepo: availabilityRepo,
		templateRepo:     templateRepo,
		logger:           logger,
	}
}

// List возвращает записи доступности за период, включая дни без слотов
func (s *Service) List(ctx context.Context, req *models.ListAvailabilityRequest) (*models.AvailabilityListResponse, error) {
	var (
		days []domain.DayAvailability
		err  error
	)

	switch {
	case req.From != nil && req.To != nil:
		if req.From.After(*req.To) {
			s.logger.Warn("List: from=%s is after to=%s",
				req.From.Format(domain.DateFormat), req.To.Format(domain.DateFormat))
			return nil, ErrInvalidTimeRange
		}
		s.logger.Info("List: fetching availability %s - %s",
			req.From.Format(domain.DateFormat), req.To.Format(domain.DateFormat))
		days, err = s.availabilityRepo.GetRange(ctx, *req.From, *req.To)
	default:
		s.logger.Info("List: fetching all availability")
		days, err = s.availabilityRepo.GetAll(ctx)
		days = filterBounds(days, req)
	}
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainDays(days), nil
}

// GetTemplate возвращает сохранённый недельный шаблон года
func (s *Service) GetTemplate(ctx context.Context, year int) (*models.TemplateResponse, error) {
	s.logger.Info("GetTemplate: year=%d", year)

	tmpl, err := s.templateRepo.GetByYear(ctx, year)
	if err != nil {
		if errors.Is(err, templateRepo.ErrTemplateNotFound) {
			s.logger.Warn("GetTemplate: template for year=%d not found", year)
			return nil, ErrTemplateNotFound
		}
		s.logger.Error("GetTemplate: repository error for year=%d: %v", year, err)
		return nil, fmt.Errorf("%w: GetTemplate - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainTemplate(year, tmpl), nil
}

// filterBounds применяет одну из границ периода, если задана только она
func filterBounds(days []domain.DayAvailability, req *models.ListAvailabilityRequest) []domain.DayAvailability {
	if req.From == nil && req.To == nil {
		return days
	}
	out := make([]domain.DayAvailability, 0, len(days))
	for _, d := range days {
		if req.From != nil && domain.IsBeforeDate(d.Date, *req.From) {
			continue
		}
		if req.To != nil && domain.IsBeforeDate(*req.To, d.Date) {
			continue
		}
		out = append(out, d)
	}
	return out
}
