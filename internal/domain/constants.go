package domain

// Business validation constants
const (
	MinPartySize = 1
	MaxPartySize = 20

	MinTableCapacity = 1
	MaxTableCapacity = 20

	MaxNotesLength        = 500
	MaxCustomerNameLength = 100
	MaxDescriptionLength  = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveStatuses статусы, занимающие слот
// Используются при подсчёте доступности и в частичном уникальном индексе
var ActiveStatuses = []ReservationStatus{
	StatusPending,
	StatusConfirmed,
}

// AllStatuses полный словарь статусов бронирования
var AllStatuses = []ReservationStatus{
	StatusPending,
	StatusConfirmed,
	StatusCancelled,
	StatusCompleted,
	StatusNoShow,
}

// IsValidStatus reports whether s belongs to the fixed status vocabulary
func IsValidStatus(s ReservationStatus) bool {
	for _, valid := range AllStatuses {
		if s == valid {
			return true
		}
	}
	return false
}
