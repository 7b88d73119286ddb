package list_tables

import "github.com/m04kA/TableTime-ReservationService/internal/domain"

// TableResponse HTTP response model
type TableResponse struct {
	ID          int64  `json:"id"`
	Capacity    int    `json:"capacity"`
	Type        string `json:"type"`
	IsActive    bool   `json:"isActive"`
	Description string `json:"description,omitempty"`
}

// TableListResponse ответ со списком столов зала
type TableListResponse struct {
	Tables []TableResponse `json:"tables"`
}

// FromDomainTables конвертирует столы в HTTP response
func FromDomainTables(tables []*domain.Table) *TableListResponse {
	out := &TableListResponse{Tables: make([]TableResponse, 0, len(tables))}
	for _, t := range tables {
		out.Tables = append(out.Tables, TableResponse{
			ID:          t.ID,
			Capacity:    t.Capacity,
			Type:        string(t.Type),
			IsActive:    t.IsActive,
			Description: t.Description,
		})
	}
	return out
}
