package get_availability

import (
	"fmt"

	"github.com/m04kA/TableTime-ReservationService/internal/domain"
	"github.com/m04kA/TableTime-ReservationService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Date.IsZero() {
		return ErrMissingDate
	}

	if req.Time != nil && !domain.IsValidSlot(*req.Time) {
		return ErrInvalidSlot
	}

	if req.MinCapacity != nil && *req.MinCapacity <= 0 {
		return fmt.Errorf("%w: minCapacity must be positive", ErrInvalidInput)
	}

	return nil
}

// occupiedBySlot группирует занятые столы по слотам
// Бронирования приходят уже отфильтрованными по активным статусам
func occupiedBySlot(reservations []*domain.Reservation) map[types.TimeString]map[int64]struct{} {
	occupied := make(map[types.TimeString]map[int64]struct{})

	for _, res := range reservations {
		set, ok := occupied[res.Time]
		if !ok {
			set = make(map[int64]struct{})
			occupied[res.Time] = set
		}
		set[res.TableID] = struct{}{}
	}

	return occupied
}

// freeTables возвращает столы, не занятые в слоте, с сохранением порядка по номеру
// Пустой результат — корректный ответ, а не ошибка
func freeTables(tables []*domain.Table, occupied map[int64]struct{}) []*domain.Table {
	free := make([]*domain.Table, 0, len(tables))
	for _, t := range tables {
		if _, taken := occupied[t.ID]; !taken {
			free = append(free, t)
		}
	}
	return free
}
