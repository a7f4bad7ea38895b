package get_page

import "github.com/m04kA/SMC-BarberFrontDesk/internal/service/frontdesk"

type FrontDesk interface {
	Snapshot() frontdesk.Snapshot
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
