package submit_booking

import (
	"context"

	"github.com/m04kA/SMC-BarberFrontDesk/internal/integrations/barbershop"
)

// BookingClient интерфейс клиента бэкенда для создания записи
type BookingClient interface {
	CreateBooking(ctx context.Context, payload barbershop.BookingPayload) (*barbershop.BookingConfirmation, error)
}

// Metrics учет отправленных записей по итогам
type Metrics interface {
	ObserveBookingSubmission(outcome string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// BookedListener вызывается после подтвержденной записи
// Ошибка или паника слушателя только логируется и не влияет на состояние формы
type BookedListener func(ctx context.Context, confirmation *barbershop.BookingConfirmation) error
