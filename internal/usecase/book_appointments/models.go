package book_appointments

import (
	"time"

	"github.com/haircraft/HairCraft-SchedulingService/internal/domain"
)

// Request модель запроса на бронирование блока услуг
type Request struct {
	UserID     int64
	Date       time.Time           // Дата записи
	StartTick  domain.Tick         // Стартовый тик блока, должен лежать на сетке
	Scope      domain.StylistScope // Конкретный мастер или любой свободный
	ServiceIDs []int64             // Услуги, выполняются последовательно внутри блока
}

// CreatedAppointment созданная запись в составе блока
type CreatedAppointment struct {
	ID              int64
	ServiceID       int64
	ServiceName     string
	StylistID       *int64
	StartTime       domain.Tick
	DurationMinutes int
	Amount          float64
	Status          string
}

// Response модель ответа бронирования
// При частичном сбое (конкурент занял слот посреди блока) Created содержит
// уже созданные записи, а Execute дополнительно возвращает ErrSlotTaken:
// вызывающая сторона обязана показать обе стороны результата
type Response struct {
	Date        time.Time
	Created     []CreatedAppointment
	TotalAmount float64
}
