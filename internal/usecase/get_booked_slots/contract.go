package get_booked_slots

import (
	"context"
	"time"

	"github.com/haircraft/HairCraft-SchedulingService/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	// GetOccupyingByDate получает записи на дату, занимающие слоты
	GetOccupyingByDate(ctx context.Context, date time.Time) ([]*domain.Appointment, error)
}

// CatalogRepository интерфейс репозитория каталога
type CatalogRepository interface {
	GetActiveStylists(ctx context.Context) ([]*domain.Stylist, error)
	GetStylistByID(ctx context.Context, id int64) (*domain.Stylist, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
