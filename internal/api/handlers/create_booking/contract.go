package create_booking

import (
	"context"
	"net/http"

	"github.com/m04kA/SMC-BarberFrontDesk/internal/domain"
	"github.com/m04kA/SMC-BarberFrontDesk/internal/integrations/barbershop"
)

type FrontDesk interface {
	Book(ctx context.Context, draft domain.BookingDraft) (*barbershop.BookingConfirmation, error)
	UpdateDraft(draft domain.BookingDraft)
	Message() string
}

type PageRenderer interface {
	Render(w http.ResponseWriter, status int, formErrors []string)
}

type Validator interface {
	Validate(model interface{}) ([]string, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
