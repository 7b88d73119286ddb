package models

import (
	"errors"
	"time"

	"github.com/m04kA/TableTime-ReservationService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid reservation status")
)

// Request модели

// ListReservationsRequest запрос на получение бронирований с фильтрацией
type ListReservationsRequest struct {
	Date   *time.Time `json:"date,omitempty"`   // Фильтр по дате (опционально)
	Status *string    `json:"status,omitempty"` // Фильтр по статусу (опционально)
	Email  *string    `json:"email,omitempty"`  // Поиск по email гостя (опционально)
}

// GetUserReservationsRequest запрос на получение бронирований пользователя
type GetUserReservationsRequest struct {
	UserID   int64   `json:"userId"`
	Status   *string `json:"status,omitempty"`
	Upcoming bool    `json:"upcoming,omitempty"` // Только предстоящие активные бронирования
}

// UpdateStatusRequest запрос на административную смену статуса
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// Response модели

// CustomerResponse снапшот контактов гостя
type CustomerResponse struct {
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Phone *string `json:"phone,omitempty"`
}

// TableResponse снапшот стола
type TableResponse struct {
	ID          int64  `json:"id"`
	Capacity    int    `json:"capacity"`
	Type        string `json:"type"`
	IsActive    bool   `json:"isActive"`
	Description string `json:"description,omitempty"`
}

// ReservationResponse ответ с данными бронирования
type ReservationResponse struct {
	ID        int64            `json:"id"`
	TableID   int64            `json:"tableId"`
	UserID    *int64           `json:"userId,omitempty"`
	Date      string           `json:"date"` // "2024-06-01"
	Time      string           `json:"time"` // "19:00"
	PartySize int              `json:"partySize"`
	Customer  CustomerResponse `json:"customer"`
	Status    string           `json:"status"`
	Notes     *string          `json:"notes,omitempty"`

	CancelledAt *string `json:"cancelledAt,omitempty"` // ISO 8601

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Снапшот стола для отображения; nil, если стол не удалось разрешить
	Table *TableResponse `json:"table,omitempty"`
}

// ReservationListResponse ответ со списком бронирований
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
}

// Методы конвертации

// FromDomainTable конвертирует domain модель стола в DTO
func FromDomainTable(t *domain.Table) *TableResponse {
	if t == nil {
		return nil
	}
	return &TableResponse{
		ID:          t.ID,
		Capacity:    t.Capacity,
		Type:        string(t.Type),
		IsActive:    t.IsActive,
		Description: t.Description,
	}
}

// FromDomainReservation конвертирует domain модель в DTO
func FromDomainReservation(r *domain.Reservation, t *domain.Table) *ReservationResponse {
	if r == nil {
		return nil
	}

	resp := &ReservationResponse{
		ID:        r.ID,
		TableID:   r.TableID,
		UserID:    r.UserID,
		Date:      r.Date.Format(domain.DateFormat),
		Time:      r.Time.String(),
		PartySize: r.PartySize,
		Customer: CustomerResponse{
			Name:  r.Customer.Name,
			Email: r.Customer.Email,
			Phone: r.Customer.Phone,
		},
		Status:    string(r.Status),
		Notes:     r.Notes,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
		Table:     FromDomainTable(t),
	}

	if r.CancelledAt != nil {
		cancelledStr := r.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// ToDomainStatus конвертирует строку в domain.ReservationStatus с валидацией
func ToDomainStatus(status string) (domain.ReservationStatus, error) {
	s := domain.ReservationStatus(status)
	if !domain.IsValidStatus(s) {
		return "", ErrInvalidStatus
	}
	return s, nil
}
