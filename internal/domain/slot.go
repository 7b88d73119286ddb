package domain

import "github.com/m04kA/TableTime-ReservationService/pkg/types"

// TimeSlots is the fixed daily grid of bookable time slots,
// covering lunch and dinner service. Compiled-in configuration:
// changing the grid is a data migration, not a runtime concern
var TimeSlots = []types.TimeString{
	"12:00",
	"12:30",
	"13:00",
	"13:30",
	"14:00",
	"14:30",
	"19:00",
	"19:30",
	"20:00",
	"20:30",
	"21:00",
	"21:30",
	"22:00",
}

// IsValidSlot reports whether t is one of the fixed time slots
func IsValidSlot(t types.TimeString) bool {
	for _, slot := range TimeSlots {
		if t == slot {
			return true
		}
	}
	return false
}
