package load_catalog

// State состояние загрузки каталога
type State string

const (
	StateLoading State = "loading"
	StateReady   State = "ready"
	StateErrored State = "errored"
)

// MsgLoadFailed сообщение формы, если каталог не загрузился
const MsgLoadFailed = "Failed to load services/barbers"

// Snapshot копия каталога для отображения
type Snapshot struct {
	State            State           `json:"state"`
	Error            string          `json:"error,omitempty"`
	Services         []ServiceOption `json:"services"`
	Barbers          []BarberOption  `json:"barbers"`
	DefaultServiceID string          `json:"default_service_id"`
}

// ServiceOption элемент выпадающего списка услуг
type ServiceOption struct {
	ID              string  `json:"id"`
	Title           string  `json:"title"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"duration_minutes"`
	Label           string  `json:"label"`
}

// BarberOption элемент выпадающего списка мастеров
type BarberOption struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
