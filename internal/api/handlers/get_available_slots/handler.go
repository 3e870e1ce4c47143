package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/haircraft/HairCraft-SchedulingService/internal/api/handlers"
	getAvailableSlots "github.com/haircraft/HairCraft-SchedulingService/internal/usecase/get_available_slots"
)

const (
	msgInvalidDate     = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidStylist  = "некорректный идентификатор мастера"
	msgInvalidServices = "некорректный список услуг"
	msgServiceNotFound = "услуга не найдена"
	msgStylistNotFound = "мастер не найден"
	msgInvalidInput    = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/appointments/available-slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	date, err := parseDate(query.Get("date"))
	if err != nil {
		h.logger.Warn("GET /appointments/available-slots - Invalid date %q: %v", query.Get("date"), err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	scope, err := parseScope(query.Get("stylistId"))
	if err != nil {
		h.logger.Warn("GET /appointments/available-slots - Invalid stylistId %q: %v", query.Get("stylistId"), err)
		handlers.RespondBadRequest(w, msgInvalidStylist)
		return
	}

	serviceIDs, err := parseServiceIDs(query.Get("serviceIds"))
	if err != nil {
		h.logger.Warn("GET /appointments/available-slots - Invalid serviceIds %q: %v", query.Get("serviceIds"), err)
		handlers.RespondBadRequest(w, msgInvalidServices)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{
		Date:       date,
		Scope:      scope,
		ServiceIDs: serviceIDs,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrServiceNotFound):
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getAvailableSlots.ErrStylistNotFound):
			handlers.RespondNotFound(w, msgStylistNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /appointments/available-slots - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
