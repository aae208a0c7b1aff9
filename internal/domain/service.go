package domain

import "time"

// Service represents a bookable service offered by a salon.
type Service struct {
	ID              int64
	SalonID         int64
	Name            string
	Price           float64
	DurationMinutes int
	Active          bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsBookable reports whether the service can be booked.
func (s *Service) IsBookable() bool {
	return s.Active && s.DurationMinutes > 0
}
