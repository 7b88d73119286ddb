package create_reservation

import "errors"

var (
	// ErrTableNotFound возвращается, когда стол не найден или выведен из зала
	ErrTableNotFound = errors.New("create_reservation: table not found")

	// ErrCapacityExceeded возвращается, когда размер компании больше вместимости стола
	ErrCapacityExceeded = errors.New("create_reservation: party size exceeds table capacity")

	// ErrInvalidSlot возвращается, когда время не входит в фиксированную сетку слотов
	ErrInvalidSlot = errors.New("create_reservation: time is not a valid slot")

	// ErrInvalidDate возвращается, когда дата бронирования в прошлом
	ErrInvalidDate = errors.New("create_reservation: invalid reservation date")

	// ErrSlotTaken возвращается, когда на (стол, дата, время) уже есть активное бронирование
	// Повторная попытка бессмысленна: слот действительно занят, клиент должен выбрать другой
	ErrSlotTaken = errors.New("create_reservation: slot is already taken")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
