package get_week

import (
	"net/http"

	"github.com/m04kA/SMC-CalendarService/internal/api/handlers"
	getWeek "github.com/m04kA/SMC-CalendarService/internal/usecase/get_week"
)

const (
	msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"
)

type Handler struct {
	useCase GetWeekUseCase
	logger  Logger
}

func NewHandler(useCase GetWeekUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/week
// Query params: date (optional, YYYY-MM-DD, default today)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date, err := handlers.QueryDate(r, "date")
	if err != nil {
		h.logger.Warn("GET /week - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	useCaseReq := &getWeek.Request{}
	if date != nil {
		useCaseReq.Date = *date
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		h.logger.Error("GET /week - Failed to get week: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /week - Week retrieved successfully: %s - %s",
		result.WeekStart.Format("2006-01-02"), result.WeekEnd.Format("2006-01-02"))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
