package get_availability

import (
	"strconv"
	"time"

	"github.com/m04kA/TableTime-ReservationService/internal/domain"
	getAvailability "github.com/m04kA/TableTime-ReservationService/internal/usecase/get_availability"
	"github.com/m04kA/TableTime-ReservationService/pkg/types"
)

// TablePayload свободный стол в ответе
type TablePayload struct {
	ID          int64  `json:"id"`
	Capacity    int    `json:"capacity"`
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
}

// AvailabilityResponse HTTP response model.
// Для запроса с конкретным слотом заполнен availableTables,
// для запроса на весь день — availability со всеми слотами сетки.
type AvailabilityResponse struct {
	Date            string                    `json:"date"`
	Time            *string                   `json:"time,omitempty"`
	AvailableTables []TablePayload            `json:"availableTables,omitempty"`
	Availability    map[string][]TablePayload `json:"availability,omitempty"`
}

// ParseQuery собирает запрос use case из query параметров.
// partySize работает как фильтр минимальной вместимости стола
func ParseQuery(dateStr, timeStr, partySizeStr string) (*getAvailability.Request, error) {
	req := &getAvailability.Request{}

	if dateStr != "" {
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			return nil, err
		}
		req.Date = date
	}

	if timeStr != "" {
		slot, err := types.NewTimeStringFromString(timeStr)
		if err != nil {
			return nil, err
		}
		req.Time = &slot
	}

	if partySizeStr != "" {
		partySize, err := strconv.Atoi(partySizeStr)
		if err != nil {
			return nil, err
		}
		req.MinCapacity = &partySize
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	out := &AvailabilityResponse{
		Date: resp.Date.Format(domain.DateFormat),
	}

	if resp.Time != nil {
		t := resp.Time.String()
		out.Time = &t
		out.AvailableTables = toTablePayloads(resp.AvailableTables)
		return out
	}

	out.Availability = make(map[string][]TablePayload, len(resp.BySlot))
	for _, slot := range resp.BySlot {
		out.Availability[slot.Slot.String()] = toTablePayloads(slot.Tables)
	}
	return out
}

func toTablePayloads(tables []*domain.Table) []TablePayload {
	out := make([]TablePayload, 0, len(tables))
	for _, t := range tables {
		out = append(out, TablePayload{
			ID:          t.ID,
			Capacity:    t.Capacity,
			Type:        string(t.Type),
			Description: t.Description,
		})
	}
	return out
}
