package app

import (
	"context"
	"time"
)

// ReservationSweeper интерфейс сервиса, переводящего прошедшие
// подтвержденные бронирования в completed
type ReservationSweeper interface {
	SweepExpired(ctx context.Context, asOf time.Time) (int64, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Sweeper периодически ретирует прошедшие бронирования.
// Работает рядом с ленивой подметкой на чтении: фоновый проход
// держит historical-статусы консистентными даже без трафика.
type Sweeper struct {
	service  ReservationSweeper
	interval time.Duration
	logger   Logger
	stopChan chan struct{}
}

// NewSweeper создаёт новый sweeper
func NewSweeper(service ReservationSweeper, interval time.Duration, logger Logger) *Sweeper {
	return &Sweeper{
		service:  service,
		interval: interval,
		logger:   logger,
		stopChan: make(chan struct{}),
	}
}

// Start запускает фоновый проход
func (s *Sweeper) Start(ctx context.Context) {
	s.logger.Info("Starting reservation sweeper, interval=%s", s.interval)
	go s.run(ctx)
}

// Stop останавливает фоновый проход
func (s *Sweeper) Stop() {
	s.logger.Info("Stopping reservation sweeper")
	close(s.stopChan)
}

func (s *Sweeper) run(ctx context.Context) {
	// Первый проход сразу при старте
	s.sweep(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sweep(ctx)
		case <-s.stopChan:
			s.logger.Info("Reservation sweeper stopped")
			return
		case <-ctx.Done():
			s.logger.Info("Reservation sweeper cancelled")
			return
		}
	}
}

func (s *Sweeper) sweep(ctx context.Context) {
	count, err := s.service.SweepExpired(ctx, time.Now())
	if err != nil {
		s.logger.Error("Reservation sweep failed: %v", err)
		return
	}

	if count > 0 {
		s.logger.Info("Reservation sweep completed: %d reservations moved to completed", count)
	}
}
