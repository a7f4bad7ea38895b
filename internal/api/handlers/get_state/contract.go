package get_state

import "github.com/m04kA/SMC-BarberFrontDesk/internal/service/frontdesk"

type FrontDesk interface {
	Snapshot() frontdesk.Snapshot
}
