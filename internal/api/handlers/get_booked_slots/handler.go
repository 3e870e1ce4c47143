package get_booked_slots

import (
	"errors"
	"net/http"

	"github.com/haircraft/HairCraft-SchedulingService/internal/api/handlers"
	getBookedSlots "github.com/haircraft/HairCraft-SchedulingService/internal/usecase/get_booked_slots"
)

const (
	msgInvalidDate     = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidStylist  = "некорректный идентификатор мастера"
	msgStylistNotFound = "мастер не найден"
	msgInvalidInput    = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetBookedSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetBookedSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/appointments/booked-slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	date, err := parseDate(query.Get("date"))
	if err != nil {
		h.logger.Warn("GET /appointments/booked-slots - Invalid date %q: %v", query.Get("date"), err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	scope, err := parseScope(query.Get("stylistId"))
	if err != nil {
		h.logger.Warn("GET /appointments/booked-slots - Invalid stylistId %q: %v", query.Get("stylistId"), err)
		handlers.RespondBadRequest(w, msgInvalidStylist)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getBookedSlots.Request{
		Date:  date,
		Scope: scope,
	})
	if err != nil {
		switch {
		case errors.Is(err, getBookedSlots.ErrStylistNotFound):
			handlers.RespondNotFound(w, msgStylistNotFound)

		case errors.Is(err, getBookedSlots.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /appointments/booked-slots - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
