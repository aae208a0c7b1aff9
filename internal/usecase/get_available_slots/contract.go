package get_available_slots

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

// AppointmentRepository loads the appointments occupying slots on the
// requested date.
type AppointmentRepository interface {
	GetBySalonWithFilter(ctx context.Context, filter domain.SalonAppointmentsFilter) ([]*domain.Appointment, error)
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
