package reservation

import (
	"github.com/m04kA/TableTime-ReservationService/pkg/txmanager"
)

// Переиспользуем интерфейс executor'а из txmanager для работы с БД
// Репозиторий не знает, выполняется ли он внутри транзакции:
// активная транзакция достаётся из контекста через txmanager.GetExecutor
type Executor = txmanager.Executor
