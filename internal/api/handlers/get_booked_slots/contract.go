package get_booked_slots

import (
	"context"

	getBookedSlots "github.com/haircraft/HairCraft-SchedulingService/internal/usecase/get_booked_slots"
)

type GetBookedSlotsUseCase interface {
	Execute(ctx context.Context, req *getBookedSlots.Request) (*getBookedSlots.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
