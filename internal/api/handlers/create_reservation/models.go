package create_reservation

import (
	"time"

	"github.com/m04kA/TableTime-ReservationService/internal/domain"
	"github.com/m04kA/TableTime-ReservationService/internal/service/reservations/models"
	createReservation "github.com/m04kA/TableTime-ReservationService/internal/usecase/create_reservation"
	"github.com/m04kA/TableTime-ReservationService/pkg/types"
)

// CustomerPayload контактные данные гостя
type CustomerPayload struct {
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Phone *string `json:"phone,omitempty"`
}

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	TableID   int64           `json:"tableId"`
	Date      string          `json:"date"` // "2026-06-01"
	Time      string          `json:"time"` // "19:00"
	PartySize int             `json:"partySize"`
	Customer  CustomerPayload `json:"customer"`
	Notes     *string         `json:"notes,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest(userID *int64) (*createReservation.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	// Парсим время слота
	slot, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return nil, err
	}

	return &createReservation.Request{
		TableID:   r.TableID,
		Date:      date,
		Time:      slot,
		PartySize: r.PartySize,
		Customer: createReservation.Customer{
			Name:  r.Customer.Name,
			Email: r.Customer.Email,
			Phone: r.Customer.Phone,
		},
		Notes:  r.Notes,
		UserID: userID,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *models.ReservationResponse {
	return models.FromDomainReservation(resp.Reservation, resp.Table)
}
