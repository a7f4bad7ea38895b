package schedule

import "github.com/m04kA/SMC-BarberFrontDesk/internal/domain"

// State состояние представления расписания
type State string

const (
	StateIdle    State = "idle"    // дата не выбрана, ничего не запрашивали
	StateLoading State = "loading" // запрос в полете, прошлые записи еще показываются
	StateLoaded  State = "loaded"  // список получен, может быть пустым
	StateErrored State = "errored" // ошибка вместо списка
)

// Сообщения для посетителя
const (
	MsgEmpty      = "No bookings for this date yet."
	MsgLoadFailed = "Failed to load bookings"
)

// Snapshot копия состояния расписания для отображения
type Snapshot struct {
	Date    string                 `json:"date"`
	State   State                  `json:"state"`
	Records []domain.BookingRecord `json:"records"`
	Error   string                 `json:"error,omitempty"`
}

// IsEmpty true, когда список загружен и записей нет
func (s Snapshot) IsEmpty() bool {
	return s.State == StateLoaded && len(s.Records) == 0
}
