package create_payment_order

import (
	"context"

	"github.com/haircraft/HairCraft-SchedulingService/internal/service/appointments/models"
)

type AppointmentsService interface {
	CreatePaymentOrder(ctx context.Context, userID int64, appointmentIDs []int64) (*models.PaymentOrderResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
