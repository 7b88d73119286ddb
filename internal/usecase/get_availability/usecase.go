package get_availability

import (
	"context"
	"fmt"

	"github.com/m04kA/TableTime-ReservationService/internal/domain"
)

// UseCase use case расчета доступности столов
//
// Доступность всегда считается заново по текущим активным бронированиям,
// без кэширования: устаревший ответ ведет к ложно-свободным слотам в UI.
// Ответ не связан транзакционно с конкурентными записями — финальное
// решение о допуске всё равно принимает guard создания бронирования
type UseCase struct {
	reservationRepo ReservationRepository
	tableRepo       TableRepository
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	tableRepo TableRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		tableRepo:       tableRepo,
		logger:          logger,
	}
}

// Execute выполняет use case расчета доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("GetAvailability: date=%s, time=%v, minCapacity=%v",
		req.Date.Format(domain.DateFormat), req.Time, req.MinCapacity)

	// 2. Активные столы с учетом фильтра вместимости, отсортированы по номеру
	tables, err := uc.tableRepo.ListActive(ctx, req.MinCapacity)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to list tables: %v", err)
		return nil, fmt.Errorf("%w: failed to list tables: %v", ErrInternal, err)
	}

	// 3. Все активные бронирования на дату одним запросом
	reservations, err := uc.reservationRepo.GetActiveByDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	occupied := occupiedBySlot(reservations)

	// 4. Один слот: разница множеств только для него
	if req.Time != nil {
		free := freeTables(tables, occupied[*req.Time])
		uc.logger.Info("GetAvailability: date=%s, time=%s, free=%d/%d",
			req.Date.Format(domain.DateFormat), *req.Time, len(free), len(tables))
		return &Response{
			Date:            req.Date,
			Time:            req.Time,
			AvailableTables: free,
		}, nil
	}

	// 5. Вся сетка: независимая разница множеств на каждый слот
	bySlot := make([]SlotTables, 0, len(domain.TimeSlots))
	for _, slot := range domain.TimeSlots {
		bySlot = append(bySlot, SlotTables{
			Slot:   slot,
			Tables: freeTables(tables, occupied[slot]),
		})
	}

	uc.logger.Info("GetAvailability: date=%s, computed %d slots over %d tables",
		req.Date.Format(domain.DateFormat), len(bySlot), len(tables))

	return &Response{
		Date:   req.Date,
		BySlot: bySlot,
	}, nil
}
