package frontdesk

import (
	"github.com/m04kA/SMC-BarberFrontDesk/internal/domain"
	"github.com/m04kA/SMC-BarberFrontDesk/internal/service/schedule"
	"github.com/m04kA/SMC-BarberFrontDesk/internal/usecase/bootstrap"
	"github.com/m04kA/SMC-BarberFrontDesk/internal/usecase/load_catalog"
)

// Snapshot полное состояние стойки записи для отрисовки
type Snapshot struct {
	Warning      string                `json:"warning,omitempty"`
	Bootstrap    bootstrap.Outcome     `json:"bootstrap"`
	Seeded       bool                  `json:"seeded"`
	SelectedDate string                `json:"selected_date"`
	Catalog      load_catalog.Snapshot `json:"catalog"`
	Draft        domain.BookingDraft   `json:"draft"`
	Message      string                `json:"message,omitempty"`
	Schedule     schedule.Snapshot     `json:"schedule"`
	DebugPageURL string                `json:"debug_page_url"`
}

// subscriberBuffer подписчику достаточно последнего состояния
const subscriberBuffer = 1
