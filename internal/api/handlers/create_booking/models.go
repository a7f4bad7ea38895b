package create_booking

import (
	"net/http"
	"strings"

	"github.com/m04kA/SMC-BarberFrontDesk/internal/domain"
)

// CreateBookingRequest HTTP request model, поля формы совпадают с json тегами
type CreateBookingRequest struct {
	CustomerName string `json:"customer_name" validate:"required"`
	Phone        string `json:"phone" validate:"required"`
	ServiceID    string `json:"service_id" validate:"required"`
	Date         string `json:"date" validate:"required,datetime=2006-01-02"` // "2025-10-15"
	Time         string `json:"time" validate:"required,datetime=15:04"`      // "10:00"
	BarberID     string `json:"barber_id,omitempty"`
	Notes        string `json:"notes,omitempty" validate:"max=500"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID      string `json:"id,omitempty"`
	Status  string `json:"status,omitempty"`
	Message string `json:"message"`
}

// FromForm читает запрос из полей HTML формы
func FromForm(r *http.Request) (*CreateBookingRequest, error) {
	if err := r.ParseForm(); err != nil {
		return nil, err
	}
	return &CreateBookingRequest{
		CustomerName: r.PostForm.Get("customer_name"),
		Phone:        r.PostForm.Get("phone"),
		ServiceID:    r.PostForm.Get("service_id"),
		Date:         r.PostForm.Get("date"),
		Time:         r.PostForm.Get("time"),
		BarberID:     r.PostForm.Get("barber_id"),
		Notes:        r.PostForm.Get("notes"),
	}, nil
}

// Normalize убирает пробелы по краям, чтобы строка из пробелов не прошла required
func (r *CreateBookingRequest) Normalize() {
	r.CustomerName = strings.TrimSpace(r.CustomerName)
	r.Phone = strings.TrimSpace(r.Phone)
	r.ServiceID = strings.TrimSpace(r.ServiceID)
	r.Date = strings.TrimSpace(r.Date)
	r.Time = strings.TrimSpace(r.Time)
	r.BarberID = strings.TrimSpace(r.BarberID)
	r.Notes = strings.TrimSpace(r.Notes)
}

// ToDraft конвертирует HTTP запрос в черновик записи
func (r *CreateBookingRequest) ToDraft() domain.BookingDraft {
	return domain.BookingDraft{
		CustomerName: r.CustomerName,
		Phone:        r.Phone,
		ServiceID:    r.ServiceID,
		Date:         r.Date,
		Time:         r.Time,
		BarberID:     r.BarberID,
		Notes:        r.Notes,
	}
}
