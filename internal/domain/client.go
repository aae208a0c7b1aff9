package domain

import "time"

// Client represents a client profile at a salon. Profiles are resolved or
// created at booking time, keyed by the authenticated user id (when
// present) or by phone.
type Client struct {
	ID        int64
	SalonID   int64
	UserID    *int64
	Name      string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
