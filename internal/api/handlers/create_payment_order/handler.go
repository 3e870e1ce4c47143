package create_payment_order

import (
	"errors"
	"net/http"

	"github.com/haircraft/HairCraft-SchedulingService/internal/api/handlers"
	"github.com/haircraft/HairCraft-SchedulingService/internal/api/middleware"
	appointmentsService "github.com/haircraft/HairCraft-SchedulingService/internal/service/appointments"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgAppointmentNotFound = "запись не найдена"
	msgAccessDenied        = "запись принадлежит другому пользователю"
	msgNotPayable          = "запись нельзя оплатить"
	msgGatewayUnavailable  = "платёжный шлюз недоступен"
	msgInvalidInput        = "некорректные параметры запроса"
	msgUnauthorized        = "пользователь не авторизован"
)

// CreateOrderRequest HTTP request model
type CreateOrderRequest struct {
	AppointmentIDs []int64 `json:"appointmentIds"`
}

type Handler struct {
	service AppointmentsService
	logger  Logger
}

func NewHandler(service AppointmentsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/payments/create-order
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	var req CreateOrderRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /payments/create-order - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CreatePaymentOrder(r.Context(), userID, req.AppointmentIDs)
	if err != nil {
		switch {
		case errors.Is(err, appointmentsService.ErrAppointmentNotFound):
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, appointmentsService.ErrAccessDenied):
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, appointmentsService.ErrNotPayable):
			handlers.RespondError(w, http.StatusConflict, msgNotPayable)

		case errors.Is(err, appointmentsService.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, appointmentsService.ErrPaymentGateway):
			h.logger.Error("POST /payments/create-order - Gateway unavailable: %v", err)
			handlers.RespondError(w, http.StatusBadGateway, msgGatewayUnavailable)

		default:
			h.logger.Error("POST /payments/create-order - Failed: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /payments/create-order - Order %s created for user_id=%d", result.OrderID, userID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
