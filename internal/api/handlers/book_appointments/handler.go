package book_appointments

import (
	"errors"
	"net/http"

	"github.com/haircraft/HairCraft-SchedulingService/internal/api/handlers"
	"github.com/haircraft/HairCraft-SchedulingService/internal/api/middleware"
	bookAppointments "github.com/haircraft/HairCraft-SchedulingService/internal/usecase/book_appointments"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректная дата или время, ожидается YYYY-MM-DD и HH:MM"
	msgServiceNotFound    = "услуга не найдена"
	msgStylistNotFound    = "мастер не найден"
	msgOutOfHours         = "выбранное время выходит за рабочие часы салона"
	msgStaleSlot          = "выбранный слот уже занят, обновите расписание"
	msgSlotTaken          = "слот заняли раньше вас"
	msgDateInPast         = "дата записи уже прошла"
	msgInvalidInput       = "некорректные параметры запроса"
	msgUnauthorized       = "пользователь не авторизован"
)

type Handler struct {
	useCase BookAppointmentsUseCase
	logger  Logger
}

func NewHandler(useCase BookAppointmentsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments/book
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	var req BookAppointmentsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments/book - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /appointments/book - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, bookAppointments.ErrSlotTaken):
			// Конфликт посреди блока: отдаем уже созданные записи вместе с 409
			h.logger.Warn("POST /appointments/book - Slot taken: user_id=%d, created=%v", userID, createdIDs(result))
			handlers.RespondJSON(w, http.StatusConflict, ConflictResponse{
				Message:               msgSlotTaken,
				CreatedAppointmentIDs: createdIDs(result),
			})

		case errors.Is(err, bookAppointments.ErrStaleSlot):
			h.logger.Warn("POST /appointments/book - Stale slot: user_id=%d", userID)
			handlers.RespondJSON(w, http.StatusConflict, ConflictResponse{
				Message:               msgStaleSlot,
				CreatedAppointmentIDs: []int64{},
			})

		case errors.Is(err, bookAppointments.ErrOutOfHours):
			h.logger.Warn("POST /appointments/book - Out of hours: user_id=%d", userID)
			handlers.RespondBadRequest(w, msgOutOfHours)

		case errors.Is(err, bookAppointments.ErrServiceNotFound):
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, bookAppointments.ErrStylistNotFound):
			handlers.RespondNotFound(w, msgStylistNotFound)

		case errors.Is(err, bookAppointments.ErrDateInPast):
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, bookAppointments.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /appointments/book - Failed: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments/book - Created %d appointments for user_id=%d",
		len(result.Created), userID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
