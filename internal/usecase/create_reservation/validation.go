package create_reservation

import (
	"fmt"
	"regexp"
	"time"

	"github.com/m04kA/TableTime-ReservationService/internal/domain"
)

// emailPattern формат email, совпадает с проверкой в схеме хранилища
var emailPattern = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]?\w+)*(\.\w{2,3})+$`)

// validateRequest валидирует входные данные запроса по полям
func validateRequest(req *Request) error {
	if req.TableID <= 0 {
		return fmt.Errorf("%w: tableId must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.Time.IsZero() {
		return fmt.Errorf("%w: time is required", ErrInvalidInput)
	}
	if err := req.Time.Validate(); err != nil {
		return fmt.Errorf("%w: invalid time format: %v", ErrInvalidInput, err)
	}

	if req.PartySize < domain.MinPartySize || req.PartySize > domain.MaxPartySize {
		return fmt.Errorf("%w: partySize must be between %d and %d",
			ErrInvalidInput, domain.MinPartySize, domain.MaxPartySize)
	}

	if err := validateCustomer(&req.Customer); err != nil {
		return err
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must not exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateCustomer проверяет снапшот контактов гостя
func validateCustomer(c *Customer) error {
	if c.Name == "" {
		return fmt.Errorf("%w: customer.name is required", ErrInvalidInput)
	}
	if len(c.Name) > domain.MaxCustomerNameLength {
		return fmt.Errorf("%w: customer.name must not exceed %d characters",
			ErrInvalidInput, domain.MaxCustomerNameLength)
	}
	if c.Email == "" {
		return fmt.Errorf("%w: customer.email is required", ErrInvalidInput)
	}
	if !emailPattern.MatchString(c.Email) {
		return fmt.Errorf("%w: customer.email is not a valid email address", ErrInvalidInput)
	}
	return nil
}

// validateSlot проверяет принадлежность времени фиксированной сетке слотов
func validateSlot(req *Request) error {
	if !domain.IsValidSlot(req.Time) {
		return ErrInvalidSlot
	}
	return nil
}

// validateDate проверяет, что дата бронирования не в прошлом
// Сравниваются только календарные даты: бронирование на сегодня допустимо
func validateDate(date time.Time, now time.Time) error {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if dateOnly.Before(nowOnly) {
		return ErrInvalidDate
	}
	return nil
}

// validateCapacity проверяет, что стол вмещает компанию
func validateCapacity(table *domain.Table, partySize int) error {
	if !table.FitsParty(partySize) {
		return fmt.Errorf("%w: table %d seats %d, requested %d",
			ErrCapacityExceeded, table.ID, table.Capacity, partySize)
	}
	return nil
}
