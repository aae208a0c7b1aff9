package appointments

import (
	"context"

	"github.com/helderalustau/kiagenda-beauty-hub-sub001/internal/domain"
)

// AppointmentRepository is the appointment storage consumed by the service.
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	GetBySalonWithFilter(ctx context.Context, filter domain.SalonAppointmentsFilter) ([]*domain.Appointment, error)
	UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus, notes *string) error
	Cancel(ctx context.Context, id int64, reason string) error
}

// FinanceRecorder records the revenue of a completed appointment.
type FinanceRecorder interface {
	Process(ctx context.Context, appointmentID int64) error
}

// Logger is the logging interface consumed by the service.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
