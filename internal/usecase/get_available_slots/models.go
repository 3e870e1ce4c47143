package get_available_slots

import (
	"time"

	"github.com/haircraft/HairCraft-SchedulingService/internal/domain"
)

// Request модель запроса доступных слотов
type Request struct {
	Date       time.Time           // Дата, на которую запрашиваются слоты
	Scope      domain.StylistScope // Область расписания: конкретный мастер или весь салон
	ServiceIDs []int64             // Выбранные услуги, определяют суммарную длительность
}

// Response модель ответа со стартовыми тиками, вмещающими весь блок услуг
type Response struct {
	Date                 time.Time
	Scope                domain.StylistScope
	TotalDurationMinutes int           // Суммарная длительность выбранных услуг
	Slots                []domain.Tick // Доступные стартовые тики в порядке сетки
}
