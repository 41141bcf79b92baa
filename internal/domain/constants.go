package domain

// Slot grid
const (
	SlotMinutes    = 30
	MinutesPerDay  = 24 * 60
	DefaultMinutes = 60 // fixed appointment length
)

// Week view grid bounds (8:00am - 9:00pm)
const (
	GridStartMinutes = 8 * 60
	GridEndMinutes   = 21 * 60
)

// Business validation constants
const (
	MaxStaffCount     = 100
	MaxClientNameLen  = 200
	MaxNotesLength    = 500
	MaxServiceNameLen = 200
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
