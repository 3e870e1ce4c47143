package verify_payment

import (
	"errors"
	"net/http"

	"github.com/haircraft/HairCraft-SchedulingService/internal/api/handlers"
	"github.com/haircraft/HairCraft-SchedulingService/internal/api/middleware"
	appointmentsService "github.com/haircraft/HairCraft-SchedulingService/internal/service/appointments"
	"github.com/haircraft/HairCraft-SchedulingService/internal/service/appointments/models"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgAppointmentNotFound = "запись не найдена"
	msgAccessDenied        = "запись принадлежит другому пользователю"
	msgVerificationFailed  = "подпись платежа не прошла проверку"
	msgInvalidInput        = "некорректные параметры запроса"
	msgUnauthorized        = "пользователь не авторизован"
)

// VerifyPaymentRequest HTTP request model
type VerifyPaymentRequest struct {
	AppointmentIDs []int64 `json:"appointmentIds"`
	OrderID        string  `json:"orderId"`
	PaymentID      string  `json:"paymentId"`
	Signature      string  `json:"signature"`
}

// VerifyPaymentResponse HTTP response model
type VerifyPaymentResponse struct {
	Verified       bool    `json:"verified"`
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

// Handle POST /api/v1/payments/verify
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	var req VerifyPaymentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /payments/verify - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	err := h.service.VerifyPayment(r.Context(), &models.VerifyPaymentRequest{
		UserID:         userID,
		AppointmentIDs: req.AppointmentIDs,
		OrderID:        req.OrderID,
		PaymentID:      req.PaymentID,
		Signature:      req.Signature,
	})
	if err != nil {
		switch {
		case errors.Is(err, appointmentsService.ErrPaymentVerification):
			h.logger.Warn("POST /payments/verify - Signature check failed: user_id=%d, order=%s", userID, req.OrderID)
			handlers.RespondBadRequest(w, msgVerificationFailed)

		case errors.Is(err, appointmentsService.ErrAppointmentNotFound):
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, appointmentsService.ErrAccessDenied):
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, appointmentsService.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /payments/verify - Failed: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /payments/verify - Payment verified for user_id=%d, order=%s", userID, req.OrderID)
	handlers.RespondJSON(w, http.StatusOK, VerifyPaymentResponse{
		Verified:       true,
		AppointmentIDs: req.AppointmentIDs,
	})
}
