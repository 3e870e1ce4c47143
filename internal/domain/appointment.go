package domain

import "time"

// AppointmentStatus represents the lifecycle status of an appointment
type AppointmentStatus string

const (
	StatusBooked           AppointmentStatus = "BOOKED"
	StatusConfirmed        AppointmentStatus = "CONFIRMED"
	StatusInProgress       AppointmentStatus = "IN_PROGRESS"
	StatusCompleted        AppointmentStatus = "COMPLETED"
	StatusRejected         AppointmentStatus = "REJECTED"
	StatusCancelled        AppointmentStatus = "CANCELLED"
	StatusCancelledByAdmin AppointmentStatus = "CANCELLED_BY_ADMIN"
	StatusRefunded         AppointmentStatus = "REFUNDED"
)

// statusTransitions is the staff-driven state machine. CANCELLED and
// REFUNDED are reachable only through payment flows, never listed here as
// staff transitions except the refund path out of admin cancellation.
var statusTransitions = map[AppointmentStatus][]AppointmentStatus{
	StatusBooked:     {StatusConfirmed, StatusRejected},
	StatusConfirmed:  {StatusInProgress, StatusCancelledByAdmin},
	StatusInProgress: {StatusCompleted, StatusCancelledByAdmin},
}

// IsValid reports whether s is a known appointment status.
func (s AppointmentStatus) IsValid() bool {
	switch s {
	case StatusBooked, StatusConfirmed, StatusInProgress, StatusCompleted,
		StatusRejected, StatusCancelled, StatusCancelledByAdmin, StatusRefunded:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition is allowed out of s.
func (s AppointmentStatus) IsTerminal() bool {
	return len(statusTransitions[s]) == 0 && s.IsValid()
}

// CanTransitionTo reports whether the staff state machine allows s → next.
func (s AppointmentStatus) CanTransitionTo(next AppointmentStatus) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// PaymentStatus values mirrored to the payment gateway flow
const (
	PaymentStatusPending         = "PENDING"
	PaymentStatusPaid            = "PAID"
	PaymentStatusRefundInitiated = "REFUND_INITIATED"
	PaymentStatusRefunded        = "REFUNDED"
)

// Appointment represents one service slot reservation in the system
type Appointment struct {
	ID              int64
	UserID          int64
	ServiceID       int64
	StylistID       *int64 // nil while no stylist has been assigned
	Date            time.Time
	StartTick       Tick
	DurationMinutes int
	Amount          float64
	Status          AppointmentStatus
	PaymentStatus   string

	// Denormalized data for history
	ServiceName string
	StylistName *string

	// Payment gateway references
	PaymentID    *string
	RefundID     *string
	RefundStatus *string

	ReminderSent bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// OccupiesSlot reports whether the appointment blocks its ticks for other
// bookings. Terminal and rejected appointments free their slots.
func (a *Appointment) OccupiesSlot() bool {
	return a.Status == StatusBooked ||
		a.Status == StatusConfirmed ||
		a.Status == StatusInProgress
}

// EndTick returns the tick at which the appointment releases the schedule.
func (a *Appointment) EndTick() Tick {
	return a.StartTick.Add(a.DurationMinutes)
}

// Overlaps reports whether the appointment intersects [start, end).
// Boundary-touching intervals do not overlap: an appointment ending exactly
// where the block starts leaves the block free.
func (a *Appointment) Overlaps(start, end Tick) bool {
	return a.StartTick < end && a.EndTick() > start
}

// IsPaid reports whether the payment gateway confirmed this appointment.
func (a *Appointment) IsPaid() bool {
	return a.PaymentStatus == PaymentStatusPaid
}

// OccupyingStatuses список статусов, занимающих слоты в расписании
// Используется при выборке занятых тиков
var OccupyingStatuses = []AppointmentStatus{
	StatusBooked,
	StatusConfirmed,
	StatusInProgress,
}
