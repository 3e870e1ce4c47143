package book_appointments

import (
	"context"

	bookAppointments "github.com/haircraft/HairCraft-SchedulingService/internal/usecase/book_appointments"
)

type BookAppointmentsUseCase interface {
	Execute(ctx context.Context, req *bookAppointments.Request) (*bookAppointments.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
