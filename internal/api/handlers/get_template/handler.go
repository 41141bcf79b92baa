package get_template

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CalendarService/internal/api/handlers"
	"github.com/m04kA/SMC-CalendarService/internal/service/availability"
)

const (
	msgInvalidYear = "некорректный год"
	msgNotFound    = "шаблон на указанный год не найден"
)

type Handler struct {
	service TemplateService
	logger  Logger
}

func NewHandler(service TemplateService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability/{year}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(mux.Vars(r)["year"])
	if err != nil {
		h.logger.Warn("GET /availability/{year} - Invalid year: %v", err)
		handlers.RespondBadRequest(w, msgInvalidYear)
		return
	}

	result, err := h.service.GetTemplate(r.Context(), year)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrTemplateNotFound):
			h.logger.Warn("GET /availability/{year} - Template not found: year=%d", year)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /availability/{year} - Failed to get template: year=%d, error=%v", year, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability/{year} - Template retrieved successfully: year=%d", year)
	handlers.RespondJSON(w, http.StatusOK, result)
}
