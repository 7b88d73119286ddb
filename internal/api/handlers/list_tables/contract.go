package list_tables

import (
	"context"

	"github.com/m04kA/TableTime-ReservationService/internal/domain"
)

type TableService interface {
	ListActive(ctx context.Context, minCapacity *int) ([]*domain.Table, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
