package get_available_slots

import (
	"time"

	"github.com/helderalustau/kiagenda-beauty-hub-sub001/pkg/types"
)

// Request asks for the bookable start times of one salon/service/date.
type Request struct {
	SalonID   int64
	ServiceID int64
	Date      time.Time // calendar date, no time component
}

// Response carries the ordered list of bookable start times. An empty list
// means the salon is closed, fully booked, or the service does not fit the
// remaining open window.
type Response struct {
	Date      time.Time
	SalonID   int64
	ServiceID int64
	Slots     []types.TimeString
}
