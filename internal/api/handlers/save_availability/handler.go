package save_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CalendarService/internal/api/handlers"
	saveAvailability "github.com/m04kA/SMC-CalendarService/internal/usecase/save_availability"
)

const (
	msgInvalidYear        = "некорректный год"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTemplate    = "некорректный недельный шаблон"
	msgYearOutOfRange     = "год в прошлом или слишком далеко в будущем"
	msgBusy               = "расписание сейчас обновляется, повторите запрос"
)

type Handler struct {
	useCase SaveAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase SaveAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/availability/{year}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(mux.Vars(r)["year"])
	if err != nil {
		h.logger.Warn("PUT /availability/{year} - Invalid year: %v", err)
		handlers.RespondBadRequest(w, msgInvalidYear)
		return
	}

	var req SaveAvailabilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /availability/{year} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(year)
	if err != nil {
		h.logger.Warn("PUT /availability/{year} - Failed to parse template: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTemplate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, saveAvailability.ErrInvalidInput):
			h.logger.Warn("PUT /availability/{year} - Invalid template: year=%d, error=%v", year, err)
			handlers.RespondBadRequest(w, msgInvalidTemplate)

		case errors.Is(err, saveAvailability.ErrInvalidYear):
			h.logger.Warn("PUT /availability/{year} - Year out of range: year=%d", year)
			handlers.RespondBadRequest(w, msgYearOutOfRange)

		case errors.Is(err, saveAvailability.ErrBusy):
			h.logger.Warn("PUT /availability/{year} - Year is locked: year=%d", year)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgBusy)

		default:
			h.logger.Error("PUT /availability/{year} - Failed to save availability: year=%d, error=%v", year, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /availability/{year} - Availability saved: year=%d, days=%d, bookable=%d",
		result.Year, result.DaysWritten, result.BookableDays)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
