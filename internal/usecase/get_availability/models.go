package get_availability

import (
	"time"

	"github.com/m04kA/TableTime-ReservationService/internal/domain"
	"github.com/m04kA/TableTime-ReservationService/pkg/types"
)

// Request модель запроса доступности столов
type Request struct {
	Date        time.Time         // Дата (обязательна)
	Time        *types.TimeString // Конкретный слот (опционально)
	MinCapacity *int              // Минимальная вместимость стола (опционально)
}

// SlotTables свободные столы одного слота
type SlotTables struct {
	Slot   types.TimeString
	Tables []*domain.Table
}

// Response модель ответа с доступностью
// Если в запросе указан слот, заполнен AvailableTables;
// иначе BySlot содержит по записи на каждый слот сетки в её порядке
type Response struct {
	Date            time.Time
	Time            *types.TimeString
	AvailableTables []*domain.Table
	BySlot          []SlotTables
}
