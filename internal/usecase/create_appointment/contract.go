package create_appointment

import (
	"context"
	"time"

	"github.com/helderalustau/kiagenda-beauty-hub-sub001/internal/domain"
)

// SalonRepository loads the salon and its weekly schedule.
type SalonRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Salon, error)
}

// ServiceRepository loads the requested service.
type ServiceRepository interface {
	GetBySalonAndID(ctx context.Context, salonID, serviceID int64) (*domain.Service, error)
}

// AppointmentRepository reads and creates appointments. Inside a
// transaction GetBySalonWithFilter takes row locks on the returned rows.
type AppointmentRepository interface {
	GetBySalonWithFilter(ctx context.Context, filter domain.SalonAppointmentsFilter) ([]*domain.Appointment, error)
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
}

// ClientRepository resolves the booking client, creating the record when
// no match by user id or phone exists.
type ClientRepository interface {
	Resolve(ctx context.Context, salonID int64, userID *int64, name, phone string) (*domain.Client, error)
}

// TransactionManager runs the conflict check and insert atomically.
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider supplies the current time (replaceable in tests).
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging interface consumed by the use case.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production TimeProvider.
type RealTimeProvider struct{}

// Now returns the current time.
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
