package list_reservations

import (
	"time"

	"github.com/m04kA/TableTime-ReservationService/internal/domain"
	"github.com/m04kA/TableTime-ReservationService/internal/service/reservations/models"
)

// ParseQuery собирает запрос к сервису из query параметров.
// Все фильтры опциональны и комбинируются через AND.
func ParseQuery(dateStr, status, email string) (*models.ListReservationsRequest, error) {
	req := &models.ListReservationsRequest{}

	if dateStr != "" {
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			return nil, err
		}
		req.Date = &date
	}

	if status != "" {
		req.Status = &status
	}

	if email != "" {
		req.Email = &email
	}

	return req, nil
}
