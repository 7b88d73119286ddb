package reservations

import (
	"context"
	"time"

	"github.com/m04kA/TableTime-ReservationService/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	List(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error
	Cancel(ctx context.Context, id int64) error
	CompleteExpired(ctx context.Context, cutoff time.Time) (int64, error)
}

// TableRepository интерфейс репозитория столов
// GetByID не фильтрует по активности: исторические бронирования должны
// показывать снапшот стола, даже если он уже выведен из зала
type TableRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Table, error)
}

// Metrics интерфейс доменных метрик сервиса
type Metrics interface {
	AddSweepTransitions(count int64)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// NopMetrics заглушка метрик, используется когда сбор метрик выключен
type NopMetrics struct{}

func (NopMetrics) AddSweepTransitions(int64) {}
