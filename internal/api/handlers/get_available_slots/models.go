package get_available_slots

import (
	"strconv"
	"strings"
	"time"

	"github.com/haircraft/HairCraft-SchedulingService/internal/domain"
	getAvailableSlots "github.com/haircraft/HairCraft-SchedulingService/internal/usecase/get_available_slots"
)

// anyStylistParam значение параметра stylistId для области "весь салон"
const anyStylistParam = "ANY"

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date                 string   `json:"date"`
	StylistID            *int64   `json:"stylistId,omitempty"`
	TotalDurationMinutes int      `json:"totalDurationMinutes"`
	AvailableSlots       []string `json:"availableSlots"`
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

// parseServiceIDs парсит список услуг из параметра serviceIds: "1,2,3"
func parseServiceIDs(raw string) ([]int64, error) {
	parts := strings.Split(raw, ",")
	ids := make([]int64, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}
		id, err := strconv.ParseInt(trimmed, 10, 64)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	out := &AvailableSlotsResponse{
		Date:                 resp.Date.Format(domain.DateFormat),
		TotalDurationMinutes: resp.TotalDurationMinutes,
		AvailableSlots:       make([]string, 0, len(resp.Slots)),
	}

	if !resp.Scope.IsAny() {
		id := resp.Scope.StylistID
		out.StylistID = &id
	}

	for _, tick := range resp.Slots {
		out.AvailableSlots = append(out.AvailableSlots, tick.String())
	}

	return out
}
