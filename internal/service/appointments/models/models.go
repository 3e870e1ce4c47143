package models

import (
	"errors"
	"time"

	"github.com/haircraft/HairCraft-SchedulingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid appointment status")
)

// Request модели

// GetUserAppointmentsRequest запрос на получение записей пользователя
type GetUserAppointmentsRequest struct {
	UserID int64   `json:"userId"`
	Status *string `json:"status,omitempty"`
}

// UpdateStatusRequest запрос на обновление статуса записи
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// VerifyPaymentRequest запрос на подтверждение оплаты блока записей
type VerifyPaymentRequest struct {
	UserID         int64   `json:"userId"`
	AppointmentIDs []int64 `json:"appointmentIds"`
	OrderID        string  `json:"orderId"`
	PaymentID      string  `json:"paymentId"`
	Signature      string  `json:"signature"`
}

// Response модели

// AppointmentResponse ответ с данными записи
type AppointmentResponse struct {
	ID              int64  `json:"id"`
	UserID          int64  `json:"userId"`
	ServiceID       int64  `json:"serviceId"`
	StylistID       *int64 `json:"stylistId,omitempty"`
	Date            string `json:"date"`      // "2026-09-10"
	StartTime       string `json:"startTime"` // "10:00"
	DurationMinutes int    `json:"durationMinutes"`
	Amount          float64 `json:"amount"`
	Status          string  `json:"status"`
	PaymentStatus   string  `json:"paymentStatus"`

	// Денормализованные данные
	ServiceName string  `json:"serviceName"`
	StylistName *string `json:"stylistName,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AppointmentListResponse ответ со списком записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// PaymentOrderResponse ответ с созданным платёжным ордером
type PaymentOrderResponse struct {
	OrderID  string  `json:"orderId"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// Методы конвертации

// FromDomainAppointment конвертирует domain модель в DTO
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	return &AppointmentResponse{
		ID:              a.ID,
		UserID:          a.UserID,
		ServiceID:       a.ServiceID,
		StylistID:       a.StylistID,
		Date:            a.Date.Format(domain.DateFormat),
		StartTime:       a.StartTick.String(),
		DurationMinutes: a.DurationMinutes,
		Amount:          a.Amount,
		Status:          string(a.Status),
		PaymentStatus:   a.PaymentStatus,
		ServiceName:     a.ServiceName,
		StylistName:     a.StylistName,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

// FromDomainAppointmentList конвертирует список domain моделей в DTO
func FromDomainAppointmentList(appointments []*domain.Appointment) *AppointmentListResponse {
	resp := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, 0, len(appointments)),
	}

	for _, appt := range appointments {
		if apptResp := FromDomainAppointment(appt); apptResp != nil {
			resp.Appointments = append(resp.Appointments, *apptResp)
		}
	}

	return resp
}

// ToDomainAppointmentStatus конвертирует строку в domain.AppointmentStatus с валидацией
func ToDomainAppointmentStatus(status string) (domain.AppointmentStatus, error) {
	s := domain.AppointmentStatus(status)
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}
