package live_updates

import "github.com/m04kA/SMC-BarberFrontDesk/internal/service/frontdesk"

type FrontDesk interface {
	Subscribe() (<-chan frontdesk.Snapshot, func())
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
