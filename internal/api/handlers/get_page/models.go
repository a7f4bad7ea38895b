package get_page

import (
	"github.com/m04kA/SMC-BarberFrontDesk/internal/service/frontdesk"
	"github.com/m04kA/SMC-BarberFrontDesk/internal/service/schedule"
	"github.com/m04kA/SMC-BarberFrontDesk/internal/usecase/load_catalog"
)

// PageData данные шаблона страницы
type PageData struct {
	frontdesk.Snapshot
	FormErrors []string
}

// CatalogLoading каталог еще грузится, форма показывает заглушку
func (d PageData) CatalogLoading() bool {
	return d.Catalog.State == load_catalog.StateLoading
}

// ScheduleLoading запрос расписания в полете
func (d PageData) ScheduleLoading() bool {
	return d.Schedule.State == schedule.StateLoading
}

// ScheduleEmpty загруженный пустой список
func (d PageData) ScheduleEmpty() bool {
	return d.Schedule.IsEmpty()
}

// EmptyScheduleMessage текст пустого расписания
func (d PageData) EmptyScheduleMessage() string {
	return schedule.MsgEmpty
}
