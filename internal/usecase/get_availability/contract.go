package get_availability

import (
	"context"
	"time"

	"github.com/m04kA/TableTime-ReservationService/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	// GetActiveByDate получает все активные бронирования на дату одним запросом
	GetActiveByDate(ctx context.Context, date time.Time) ([]*domain.Reservation, error)
}

// TableRepository интерфейс репозитория столов
type TableRepository interface {
	ListActive(ctx context.Context, minCapacity *int) ([]*domain.Table, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
