package get_booked_slots

import (
	"strconv"
	"strings"
	"time"

	"github.com/haircraft/HairCraft-SchedulingService/internal/domain"
	getBookedSlots "github.com/haircraft/HairCraft-SchedulingService/internal/usecase/get_booked_slots"
)

// anyStylistParam значение параметра stylistId для области "весь салон"
const anyStylistParam = "ANY"

// BookedSlotsResponse HTTP response model
type BookedSlotsResponse struct {
	Date        string   `json:"date"`
	StylistID   *int64   `json:"stylistId,omitempty"` // nil для области "весь салон"
	BookedSlots []string `json:"bookedSlots"`
}

// parseScope парсит параметр stylistId: пусто или "ANY" - весь салон,
// иначе идентификатор мастера
func parseScope(raw string) (domain.StylistScope, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || strings.EqualFold(trimmed, anyStylistParam) {
		return domain.AnyStylist(), nil
	}

	id, err := strconv.ParseInt(trimmed, 10, 64)
	if err != nil {
		return domain.StylistScope{}, err
	}
	return domain.SpecificStylist(id), nil
}

// parseDate парсит дату запроса в формате YYYY-MM-DD
func parseDate(raw string) (time.Time, error) {
	return time.Parse(domain.DateFormat, raw)
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getBookedSlots.Response) *BookedSlotsResponse {
	out := &BookedSlotsResponse{
		Date:        resp.Date.Format(domain.DateFormat),
		BookedSlots: make([]string, 0, len(resp.Slots)),
	}

	if !resp.Scope.IsAny() {
		id := resp.Scope.StylistID
		out.StylistID = &id
	}

	for _, tick := range resp.Slots {
		out.BookedSlots = append(out.BookedSlots, tick.String())
	}

	return out
}
