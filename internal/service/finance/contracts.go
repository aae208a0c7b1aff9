package finance

import (
	"context"

	"github.com/helderalustau/kiagenda-beauty-hub-sub001/internal/domain"
)

// AppointmentRepository is the appointment storage consumed by the
// reconciler.
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	ListCompletedBySalon(ctx context.Context, salonID int64) ([]*domain.Appointment, error)
}

// TransactionRepository stores derived ledger rows. Create returns
// ErrDuplicateTransaction when the (appointment, component, description)
// row already exists.
type TransactionRepository interface {
	Create(ctx context.Context, tx *domain.FinancialTransaction) (*domain.FinancialTransaction, error)
	ListByAppointment(ctx context.Context, appointmentID int64) ([]*domain.FinancialTransaction, error)
}

// SalonRepository lists the salons covered by the nightly resync.
type SalonRepository interface {
	ListIDs(ctx context.Context) ([]int64, error)
}

// Logger is the logging interface consumed by the service.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
