package reservations

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrAlreadyCancelled возвращается при повторной отмене бронирования
	// Идемпотентность здесь — явный отказ, а не тихий успех
	ErrAlreadyCancelled = errors.New("reservation has already been cancelled")

	// ErrCannotCancel возвращается, когда бронирование в терминальном статусе
	// (completed, no-show) и отменено быть не может
	ErrCannotCancel = errors.New("reservation cannot be cancelled")

	// ErrInvalidTransition возвращается при недопустимом переходе статуса
	// Статусная машина движется только вперед
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
