package get_booked_slots

import (
	"time"

	"github.com/haircraft/HairCraft-SchedulingService/internal/domain"
)

// Request модель запроса занятых слотов
type Request struct {
	Date  time.Time           // Дата, на которую запрашиваются занятые слоты
	Scope domain.StylistScope // Область расписания: конкретный мастер или весь салон
}

// Response модель ответа со списком занятых тиков сетки
type Response struct {
	Date  time.Time
	Scope domain.StylistScope
	Slots []domain.Tick // Занятые тики в порядке сетки
}
