package create_appointment

import (
	"time"

	"github.com/helderalustau/kiagenda-beauty-hub-sub001/pkg/types"
)

// ClientInfo identifies the person booking the appointment. UserID is set
// for authenticated clients; walk-ins are matched by phone.
type ClientInfo struct {
	UserID *int64 `validate:"omitempty,gt=0"`
	Name   string `validate:"required,min=2,max=120"`
	Phone  string `validate:"required,brphone"`
}

// Request carries the booking data.
type Request struct {
	SalonID   int64
	ServiceID int64
	Date      time.Time
	StartTime types.TimeString
	Client    ClientInfo
	Notes     *string
}

// Response is the created appointment.
type Response struct {
	ID              int64
	SalonID         int64
	ServiceID       int64
	ClientID        int64
	Date            time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Status          string
	ServiceName     string
	ServicePrice    float64
	Notes           *string
	CreatedAt       time.Time
}
