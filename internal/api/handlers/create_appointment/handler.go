package create_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CalendarService/internal/api/handlers"
	createAppointment "github.com/m04kA/SMC-CalendarService/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты записи, ожидается YYYY-MM-DD"
	msgInvalidTime        = "некорректный формат времени, ожидается h:mmam или h:mmpm"
	msgInvalidInput       = "некорректные данные клиента"
	msgDateInPast         = "нельзя записаться на прошедшую дату"
	msgSlotInPast         = "выбранное время уже прошло"
	msgNoAvailability     = "на выбранную дату нет свободного времени"
	msgSlotNotAvailable   = "выбранное время занято"
	msgInsufficientSlots  = "недостаточно свободного времени после выбранного слота"
	msgSlotsNotContiguous = "свободное время после выбранного слота идёт с разрывом"
	msgBusy               = "дата сейчас обновляется, повторите запрос"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /appointments - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrInvalidTime):
			h.logger.Warn("POST /appointments - Invalid time: time=%q", req.Time)
			handlers.RespondBadRequest(w, msgInvalidTime)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createAppointment.ErrDateInPast):
			h.logger.Warn("POST /appointments - Date in past: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, createAppointment.ErrSlotInPast):
			h.logger.Warn("POST /appointments - Slot in past: date=%s, time=%s", req.Date, req.Time)
			handlers.RespondBadRequest(w, msgSlotInPast)

		case errors.Is(err, createAppointment.ErrNoAvailability):
			h.logger.Warn("POST /appointments - No availability: date=%s", req.Date)
			handlers.RespondConflict(w, msgNoAvailability)

		case errors.Is(err, createAppointment.ErrSlotNotAvailable):
			h.logger.Warn("POST /appointments - Slot not available: date=%s, time=%s", req.Date, req.Time)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, createAppointment.ErrInsufficientSlots):
			h.logger.Warn("POST /appointments - Insufficient slots: date=%s, time=%s", req.Date, req.Time)
			handlers.RespondConflict(w, msgInsufficientSlots)

		case errors.Is(err, createAppointment.ErrSlotsNotContiguous):
			h.logger.Warn("POST /appointments - Slots not contiguous: date=%s, time=%s", req.Date, req.Time)
			handlers.RespondConflict(w, msgSlotsNotContiguous)

		case errors.Is(err, createAppointment.ErrBusy):
			h.logger.Warn("POST /appointments - Date is locked: date=%s", req.Date)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgBusy)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: date=%s, time=%s, error=%v",
				req.Date, req.Time, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created successfully: id=%s, date=%s, time=%s",
		result.ID, req.Date, result.Time)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
