package select_date

import (
	"context"
	"net/http"

	"github.com/m04kA/SMC-BarberFrontDesk/internal/service/frontdesk"
)

type FrontDesk interface {
	SelectDate(ctx context.Context, date string) error
	Snapshot() frontdesk.Snapshot
}

type PageRenderer interface {
	Render(w http.ResponseWriter, status int, formErrors []string)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
