package select_date

import (
	"github.com/m04kA/SMC-BarberFrontDesk/internal/domain"
	"github.com/m04kA/SMC-BarberFrontDesk/internal/service/frontdesk"
	"github.com/m04kA/SMC-BarberFrontDesk/internal/service/schedule"
)

// ScheduleResponse HTTP response model
type ScheduleResponse struct {
	SelectedDate string                 `json:"selected_date"`
	State        schedule.State         `json:"state"`
	Records      []domain.BookingRecord `json:"records"`
	Error        string                 `json:"error,omitempty"`
	Message      string                 `json:"message,omitempty"`
}

// FromSnapshot конвертирует состояние стойки в ответ
func FromSnapshot(snap frontdesk.Snapshot) *ScheduleResponse {
	resp := &ScheduleResponse{
		SelectedDate: snap.SelectedDate,
		State:        snap.Schedule.State,
		Records:      snap.Schedule.Records,
		Error:        snap.Schedule.Error,
	}
	if snap.Schedule.IsEmpty() {
		resp.Message = schedule.MsgEmpty
	}
	return resp
}
