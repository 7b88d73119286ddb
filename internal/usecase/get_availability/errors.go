package get_availability

import "errors"

var (
	// ErrMissingDate возвращается, когда дата не указана
	ErrMissingDate = errors.New("get_availability: date is required")

	// ErrInvalidSlot возвращается, когда время не входит в фиксированную сетку слотов
	ErrInvalidSlot = errors.New("get_availability: time is not a valid slot")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_availability: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_availability: internal error")
)
