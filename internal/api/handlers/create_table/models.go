package create_table

import (
	"github.com/m04kA/TableTime-ReservationService/internal/domain"
	"github.com/m04kA/TableTime-ReservationService/internal/service/tables"
)

// CreateTableRequest HTTP request model
type CreateTableRequest struct {
	ID          int64  `json:"id"` // Номер стола задается рестораном, не базой
	Capacity    int    `json:"capacity"`
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
}

// TableResponse HTTP response model
type TableResponse struct {
	ID          int64  `json:"id"`
	Capacity    int    `json:"capacity"`
	Type        string `json:"type"`
	IsActive    bool   `json:"isActive"`
	Description string `json:"description,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateTableRequest) ToServiceRequest() *tables.CreateTableRequest {
	return &tables.CreateTableRequest{
		ID:          r.ID,
		Capacity:    r.Capacity,
		Type:        r.Type,
		Description: r.Description,
	}
}

// FromDomainTable конвертирует стол в HTTP response
func FromDomainTable(t *domain.Table) *TableResponse {
	return &TableResponse{
		ID:          t.ID,
		Capacity:    t.Capacity,
		Type:        string(t.Type),
		IsActive:    t.IsActive,
		Description: t.Description,
	}
}
