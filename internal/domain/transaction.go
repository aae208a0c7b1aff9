package domain

import "time"

// TransactionComponent distinguishes the ledger row derived from the main
// service from rows derived from add-on services parsed out of the notes.
type TransactionComponent string

const (
	ComponentMain       TransactionComponent = "main"
	ComponentAdditional TransactionComponent = "additional"
)

// FinancialTransaction is a derived ledger row. Exactly one income row
// exists per (appointment, component, description); reconciliation never
// creates duplicates for a pair that already has one.
type FinancialTransaction struct {
	ID              int64
	SalonID         int64
	AppointmentID   int64
	Component       TransactionComponent
	Description     string
	Amount          float64
	Type            string // always "income" for reconciled rows
	Category        string
	DurationMinutes int
	CreatedAt       time.Time
}

// ServiceComponent is one priced, timed piece of an appointment: the main
// service or a single add-on.
type ServiceComponent struct {
	Name            string
	DurationMinutes int
	Price           float64
}

// ComponentsTotal sums prices and durations over a component list. The UI
// recomputes and displays both, so these totals must match what the
// reconciler persisted exactly.
func ComponentsTotal(components []ServiceComponent) (price float64, minutes int) {
	for _, c := range components {
		price += c.Price
		minutes += c.DurationMinutes
	}
	return price, minutes
}
