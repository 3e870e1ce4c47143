package verify_payment

import (
	"context"

	"github.com/haircraft/HairCraft-SchedulingService/internal/service/appointments/models"
)

type AppointmentsService interface {
	VerifyPayment(ctx context.Context, req *models.VerifyPaymentRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
