package domain

import (
	"time"

	"github.com/m04kA/TableTime-ReservationService/pkg/types"
)

// ReservationStatus represents the status of a reservation
type ReservationStatus string

const (
	StatusPending   ReservationStatus = "pending"
	StatusConfirmed ReservationStatus = "confirmed"
	StatusCancelled ReservationStatus = "cancelled"
	StatusCompleted ReservationStatus = "completed"
	StatusNoShow    ReservationStatus = "no-show"
)

// Customer is a snapshot of the guest's contact data taken at booking time
// It is independent of any account: the booking account may be deleted later
// without invalidating the reservation history
type Customer struct {
	Name  string
	Email string
	Phone *string
}

// Reservation represents a table reservation in the system
type Reservation struct {
	ID        int64
	TableID   int64  // Weak reference to Table.ID: the table may become inactive later
	UserID    *int64 // Optional weak reference to the booking account
	Date      time.Time
	Time      types.TimeString
	PartySize int
	Customer  Customer
	Status    ReservationStatus
	Notes     *string

	CancelledAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the reservation occupies its slot
// Only pending and confirmed reservations block a (table, date, time) key
func (r *Reservation) IsActive() bool {
	return r.Status == StatusPending || r.Status == StatusConfirmed
}

// CanBeCancelled returns true if the reservation can be cancelled
func (r *Reservation) CanBeCancelled() bool {
	return r.Status == StatusPending || r.Status == StatusConfirmed
}

// IsCancelled returns true if the reservation has been cancelled
func (r *Reservation) IsCancelled() bool {
	return r.Status == StatusCancelled
}

// IsTerminal returns true if no further transition is allowed from the current status
func (r *Reservation) IsTerminal() bool {
	return r.Status == StatusCancelled || r.Status == StatusCompleted || r.Status == StatusNoShow
}

// CanTransitionTo reports whether the status machine allows moving to next
// Transitions only move forward:
//
//	pending -> confirmed -> completed
//	pending|confirmed -> cancelled
//	confirmed -> no-show
func (r *Reservation) CanTransitionTo(next ReservationStatus) bool {
	switch r.Status {
	case StatusPending:
		return next == StatusConfirmed || next == StatusCancelled
	case StatusConfirmed:
		return next == StatusCompleted || next == StatusCancelled || next == StatusNoShow
	default:
		return false
	}
}

// ReservationsFilter filter for listing reservations
type ReservationsFilter struct {
	Date       *time.Time         // Calendar date (optional)
	Status     *ReservationStatus // Status filter (optional)
	Email      *string            // Customer email, case-insensitive substring (optional)
	UserID     *int64             // Booking account filter (optional)
	FromDate   *time.Time         // Lower date bound, inclusive (optional)
	OnlyActive bool               // Restrict to pending/confirmed
}
