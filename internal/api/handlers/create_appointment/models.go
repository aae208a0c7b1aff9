package create_appointment

import (
	"time"

	"github.com/helderalustau/kiagenda-beauty-hub-sub001/internal/domain"
	createAppointment "github.com/helderalustau/kiagenda-beauty-hub-sub001/internal/usecase/create_appointment"
	"github.com/helderalustau/kiagenda-beauty-hub-sub001/pkg/types"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	SalonID         int64       `json:"salonId"`
	ServiceID       int64       `json:"serviceId"`
	AppointmentDate string      `json:"appointmentDate"` // "2026-09-14"
	AppointmentTime string      `json:"appointmentTime"` // "10:00"
	Client          ClientModel `json:"client"`
	Notes           *string     `json:"notes,omitempty"`
}

// ClientModel identifies the booking client
type ClientModel struct {
	UserID *int64 `json:"userId,omitempty"`
	Name   string `json:"name"`
	Phone  string `json:"phone"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID              int64   `json:"id"`
	SalonID         int64   `json:"salonId"`
	ServiceID       int64   `json:"serviceId"`
	ClientID        int64   `json:"clientId"`
	AppointmentDate string  `json:"appointmentDate"`
	AppointmentTime string  `json:"appointmentTime"`
	DurationMinutes int     `json:"durationMinutes"`
	Status          string  `json:"status"`
	ServiceName     string  `json:"serviceName"`
	ServicePrice    float64 `json:"servicePrice"`
	Notes           *string `json:"notes,omitempty"`
	CreatedAt       string  `json:"createdAt"`
}

// ToUseCaseRequest converts the HTTP request into the use case model
func (r *CreateAppointmentRequest) ToUseCaseRequest() (*createAppointment.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.AppointmentDate)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.AppointmentTime)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		SalonID:   r.SalonID,
		ServiceID: r.ServiceID,
		Date:      date,
		StartTime: startTime,
		Client: createAppointment.ClientInfo{
			UserID: r.Client.UserID,
			Name:   r.Client.Name,
			Phone:  r.Client.Phone,
		},
		Notes: r.Notes,
	}, nil
}

// FromUseCaseResponse converts the use case response into the HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:              resp.ID,
		SalonID:         resp.SalonID,
		ServiceID:       resp.ServiceID,
		ClientID:        resp.ClientID,
		AppointmentDate: resp.Date.Format(domain.DateFormat),
		AppointmentTime: resp.StartTime.String(),
		DurationMinutes: resp.DurationMinutes,
		Status:          resp.Status,
		ServiceName:     resp.ServiceName,
		ServicePrice:    resp.ServicePrice,
		Notes:           resp.Notes,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
	}
}
