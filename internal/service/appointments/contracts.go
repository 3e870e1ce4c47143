package appointments

import (
	"context"
	"time"

	"github.com/haircraft/HairCraft-SchedulingService/internal/domain"
	"github.com/haircraft/HairCraft-SchedulingService/internal/integrations/notifier"
	"github.com/haircraft/HairCraft-SchedulingService/internal/integrations/payments"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	GetByUserID(ctx context.Context, userID int64, status *domain.AppointmentStatus) ([]*domain.Appointment, error)
	UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error
	SetPayment(ctx context.Context, id int64, paymentID string, paymentStatus string) error
	SetRefund(ctx context.Context, id int64, refundID, refundStatus, paymentStatus string) error
	GetDueReminders(ctx context.Context, date time.Time, from, to domain.Tick) ([]*domain.Appointment, error)
	MarkReminderSent(ctx context.Context, id int64) error
}

// PaymentsClient интерфейс клиента платёжного шлюза
type PaymentsClient interface {
	CreateOrder(ctx context.Context, amount float64, currency string) (*payments.Order, error)
	VerifySignature(orderID, paymentID, signature string) error
	Refund(ctx context.Context, paymentID string, amount float64) (*payments.Refund, error)
}

// NotifierClient интерфейс клиента сервиса уведомлений
type NotifierClient interface {
	Notify(ctx context.Context, notification notifier.Notification) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
