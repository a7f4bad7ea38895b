package frontdesk

import (
	"context"

	"github.com/m04kA/SMC-BarberFrontDesk/internal/domain"
	"github.com/m04kA/SMC-BarberFrontDesk/internal/integrations/barbershop"
	"github.com/m04kA/SMC-BarberFrontDesk/internal/service/schedule"
	"github.com/m04kA/SMC-BarberFrontDesk/internal/usecase/bootstrap"
	"github.com/m04kA/SMC-BarberFrontDesk/internal/usecase/load_catalog"
	"github.com/m04kA/SMC-BarberFrontDesk/internal/usecase/submit_booking"
)

// Bootstrapper одноразовая проверка и заполнение каталога
type Bootstrapper interface {
	Execute(ctx context.Context)
	Seeded() bool
	Warning() string
	Outcome() bootstrap.Outcome
}

// Catalog каталог услуг и мастеров
type Catalog interface {
	Execute(ctx context.Context) error
	DefaultServiceID() string
	HasService(id string) bool
	HasBarber(id string) bool
	Snapshot() load_catalog.Snapshot
}

// Submitter отправка записи и состояние формы
type Submitter interface {
	Execute(ctx context.Context, draft domain.BookingDraft) (*barbershop.BookingConfirmation, error)
	OnBooked(listener submit_booking.BookedListener)
	Draft() domain.BookingDraft
	SetDraft(draft domain.BookingDraft)
	SetDefaultService(id string) bool
	Message() string
}

// Schedule расписание на выбранную дату
// Begin только регистрирует запрос и не вызывает слушателей, Fetch выполняет его
type Schedule interface {
	Begin(date string) uint64
	Fetch(ctx context.Context, gen uint64) error
	OnChange(listener func())
	Snapshot() schedule.Snapshot
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
