package models

import (
	"errors"
	"time"

	"github.com/helderalustau/kiagenda-beauty-hub-sub001/internal/domain"
)

var (
	// ErrInvalidStatus is returned for an unknown status string
	ErrInvalidStatus = errors.New("invalid appointment status")
)

// Request models

// GetSalonAppointmentsRequest asks for a salon's agenda with optional
// filters.
type GetSalonAppointmentsRequest struct {
	SalonID          int64      `json:"salonId"`
	Date             *time.Time `json:"date,omitempty"`
	Status           *string    `json:"status,omitempty"`
	IncludeCancelled bool       `json:"includeCancelled,omitempty"`
}

// ToDomainFilter converts the request into a storage filter.
func (r *GetSalonAppointmentsRequest) ToDomainFilter() (domain.SalonAppointmentsFilter, error) {
	filter := domain.SalonAppointmentsFilter{
		SalonID:          r.SalonID,
		Date:             r.Date,
		IncludeCancelled: r.IncludeCancelled,
	}

	if r.Status != nil {
		status, err := ToDomainAppointmentStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// UpdateStatusRequest asks for a lifecycle transition.
type UpdateStatusRequest struct {
	Status string  `json:"status"`
	Notes  *string `json:"notes,omitempty"`
}

// CancelRequest cancels an appointment with a reason.
type CancelRequest struct {
	Reason string `json:"reason"`
}

// Response models

// AppointmentResponse is the API shape of an appointment.
type AppointmentResponse struct {
	ID                 int64   `json:"id"`
	SalonID            int64   `json:"salonId"`
	ServiceID          int64   `json:"serviceId"`
	ClientID           int64   `json:"clientId"`
	AppointmentDate    string  `json:"appointmentDate"` // "2026-09-14"
	AppointmentTime    string  `json:"appointmentTime"` // "10:00"
	DurationMinutes    int     `json:"durationMinutes"`
	Status             string  `json:"status"`
	ServiceName        string  `json:"serviceName"`
	ServicePrice       float64 `json:"servicePrice"`
	Notes              *string `json:"notes,omitempty"`
	CancellationReason *string `json:"cancellationReason,omitempty"`
	CreatedAt          string  `json:"createdAt"`
	UpdatedAt          string  `json:"updatedAt"`
}

// AppointmentListResponse wraps a list of appointments.
type AppointmentListResponse struct {
	Appointments []*AppointmentResponse `json:"appointments"`
	Total        int                    `json:"total"`
}

// FromDomainAppointment converts a domain appointment into the API shape.
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	return &AppointmentResponse{
		ID:                 a.ID,
		SalonID:            a.SalonID,
		ServiceID:          a.ServiceID,
		ClientID:           a.ClientID,
		AppointmentDate:    a.AppointmentDate.Format(domain.DateFormat),
		AppointmentTime:    string(a.AppointmentTime),
		DurationMinutes:    a.DurationMinutes,
		Status:             string(a.Status),
		ServiceName:        a.ServiceName,
		ServicePrice:       a.ServicePrice,
		Notes:              a.Notes,
		CancellationReason: a.CancellationReason,
		CreatedAt:          a.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          a.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainAppointmentList converts a list of domain appointments.
func FromDomainAppointmentList(appointments []*domain.Appointment) *AppointmentListResponse {
	out := make([]*AppointmentResponse, 0, len(appointments))
	for _, a := range appointments {
		out = append(out, FromDomainAppointment(a))
	}
	return &AppointmentListResponse{
		Appointments: out,
		Total:        len(out),
	}
}

// ToDomainAppointmentStatus validates and converts a status string.
func ToDomainAppointmentStatus(s string) (domain.AppointmentStatus, error) {
	status := domain.AppointmentStatus(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}
