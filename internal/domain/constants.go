package domain

// Slot generation parameters. The booking grid is fixed at 30-minute steps
// and same-day bookings must start at least one hour from now.
const (
	SlotGranularityMinutes = 30
	LookAheadMarginMinutes = 60
)

// Business validation constants
const (
	MaxNotesLength              = 1000
	MaxCancellationReasonLength = 500
	MinClientPhoneDigits        = 10
	MaxClientPhoneDigits        = 11
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Financial transaction constants
const (
	TransactionTypeIncome  = "income"
	CategoryServiceRevenue = "servicos"
)

// ActiveStatuses are the statuses that occupy a slot. A cancelled
// appointment frees its slot and is excluded from availability checks.
var ActiveStatuses = []AppointmentStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
}
