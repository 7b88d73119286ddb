package create_reservation

import (
	"time"

	"github.com/m04kA/TableTime-ReservationService/internal/domain"
	"github.com/m04kA/TableTime-ReservationService/pkg/types"
)

// Customer контактные данные гостя на момент бронирования
type Customer struct {
	Name  string
	Email string
	Phone *string
}

// Request модель запроса на создание бронирования
type Request struct {
	TableID   int64            // Номер стола
	Date      time.Time        // Дата бронирования (без времени)
	Time      types.TimeString // Слот из фиксированной сетки (например, "19:00")
	PartySize int              // Размер компании
	Customer  Customer         // Снапшот контактов гостя
	Notes     *string          // Дополнительные пожелания (опционально)
	UserID    *int64           // ID аккаунта, если гость авторизован (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	Reservation *domain.Reservation // Созданное бронирование
	Table       *domain.Table       // Снапшот стола для отображения
}
