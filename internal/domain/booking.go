package domain

import (
	"strconv"
	"strings"
)

// BookingDraft форма записи, которую заполняет посетитель
// BarberID и Notes опциональны, остальные поля обязательны для поверхности ввода
type BookingDraft struct {
	CustomerName string `json:"customer_name"`
	Phone        string `json:"phone"`
	ServiceID    string `json:"service_id"`
	Date         string `json:"date"` // "2025-10-15"
	Time         string `json:"time"` // "10:00"
	BarberID     string `json:"barber_id"`
	Notes        string `json:"notes"`
}

// HasBarberPreference returns false when the visitor chose "No preference"
func (d BookingDraft) HasBarberPreference() bool {
	return strings.TrimSpace(d.BarberID) != ""
}

// BookingRecord запись из расписания, принадлежит бэкенду и только отображается
type BookingRecord struct {
	ID              string `json:"id"`
	CustomerName    string `json:"customer_name"`
	Phone           string `json:"phone"`
	ServiceTitle    string `json:"service_title"`
	Time            string `json:"time"`
	DurationMinutes int    `json:"duration_minutes"`
	Status          string `json:"status"`
	BarberName      string `json:"barber_name,omitempty"`
}

// Summary returns the schedule line "Haircut • 10:00 • 30m • Bob"
func (r BookingRecord) Summary() string {
	parts := []string{r.ServiceTitle, r.Time, strconv.Itoa(r.DurationMinutes) + "m"}
	if r.BarberName != "" {
		parts = append(parts, r.BarberName)
	}
	return strings.Join(parts, " • ")
}

// IsCancelled returns true if the backend marked the booking as cancelled
func (r BookingRecord) IsCancelled() bool {
	return strings.HasPrefix(r.Status, StatusCancelled)
}
