package domain

import (
	"fmt"
	"strconv"
)

// Service represents an offerable service (haircut, shave, ...)
// Immutable reference data for the session
type Service struct {
	ID              string  `json:"_id"`
	Title           string  `json:"title"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"duration_minutes"`
}

// Label returns the option text used by the booking form, e.g. "Haircut • $20 • 30m"
func (s Service) Label() string {
	return fmt.Sprintf("%s • $%s • %dm", s.Title, strconv.FormatFloat(s.Price, 'f', -1, 64), s.DurationMinutes)
}

// Barber represents a staff member that can be preferred on a booking
type Barber struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}
