package create_table

import (
	"context"

	"github.com/m04kA/TableTime-ReservationService/internal/domain"
	"github.com/m04kA/TableTime-ReservationService/internal/service/tables"
)

type TableService interface {
	Create(ctx context.Context, req *tables.CreateTableRequest) (*domain.Table, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
