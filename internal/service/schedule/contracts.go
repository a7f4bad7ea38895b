package schedule

import (
	"context"

	"github.com/m04kA/SMC-BarberFrontDesk/internal/domain"
)

// BookingsClient интерфейс клиента бэкенда для чтения расписания
type BookingsClient interface {
	ListBookings(ctx context.Context, date string) ([]domain.BookingRecord, error)
}

// Metrics учет отброшенных устаревших ответов
type Metrics interface {
	ObserveStaleSchedule()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
