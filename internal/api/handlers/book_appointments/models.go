package book_appointments

import (
	"time"

	"github.com/haircraft/HairCraft-SchedulingService/internal/domain"
	bookAppointments "github.com/haircraft/HairCraft-SchedulingService/internal/usecase/book_appointments"
)

// BookAppointmentsRequest HTTP request model
// StylistID == nil означает "любой свободный мастер"
type BookAppointmentsRequest struct {
	Date       string  `json:"date"`      // "2026-09-10"
	StartTime  string  `json:"startTime"` // "10:00"
	StylistID  *int64  `json:"stylistId,omitempty"`
	ServiceIDs []int64 `json:"serviceIds"`
}

// AppointmentResponse созданная запись в ответе
type AppointmentResponse struct {
	ID              int64   `json:"id"`
	ServiceID       int64   `json:"serviceId"`
	ServiceName     string  `json:"serviceName"`
	StylistID       *int64  `json:"stylistId,omitempty"`
	StartTime       string  `json:"startTime"`
	DurationMinutes int     `json:"durationMinutes"`
	Amount          float64 `json:"amount"`
	Status          string  `json:"status"`
}

// BookAppointmentsResponse HTTP response model
type BookAppointmentsResponse struct {
	Date         string                `json:"date"`
	Appointments []AppointmentResponse `json:"appointments"`
	TotalAmount  float64               `json:"totalAmount"`
}

// ConflictResponse ответ при занятом слоте
// CreatedAppointmentIDs перечисляет записи, созданные до конфликта: при
// частичном сбое блока клиент обязан их увидеть
type ConflictResponse struct {
	Message               string  `json:"message"`
	CreatedAppointmentIDs []int64 `json:"createdAppointmentIds"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *BookAppointmentsRequest) ToUseCaseRequest(userID int64) (*bookAppointments.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	start, err := domain.ParseTick(r.StartTime)
	if err != nil {
		return nil, err
	}

	scope := domain.AnyStylist()
	if r.StylistID != nil {
		scope = domain.SpecificStylist(*r.StylistID)
	}

	return &bookAppointments.Request{
		UserID:     userID,
		Date:       date,
		StartTick:  start,
		Scope:      scope,
		ServiceIDs: r.ServiceIDs,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *bookAppointments.Response) *BookAppointmentsResponse {
	out := &BookAppointmentsResponse{
		Date:         resp.Date.Format(domain.DateFormat),
		Appointments: make([]AppointmentResponse, 0, len(resp.Created)),
		TotalAmount:  resp.TotalAmount,
	}

	for _, created := range resp.Created {
		out.Appointments = append(out.Appointments, AppointmentResponse{
			ID:              created.ID,
			ServiceID:       created.ServiceID,
			ServiceName:     created.ServiceName,
			StylistID:       created.StylistID,
			StartTime:       created.StartTime.String(),
			DurationMinutes: created.DurationMinutes,
			Amount:          created.Amount,
			Status:          created.Status,
		})
	}

	return out
}

// createdIDs собирает идентификаторы созданных записей для ответа о конфликте
func createdIDs(resp *bookAppointments.Response) []int64 {
	if resp == nil {
		return []int64{}
	}
	ids := make([]int64, 0, len(resp.Created))
	for _, created := range resp.Created {
		ids = append(ids, created.ID)
	}
	return ids
}
