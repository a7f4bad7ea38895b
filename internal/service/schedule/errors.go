package schedule

import "errors"

var (
	// ErrLoadFailed возвращается, когда расписание на дату не загрузилось
	ErrLoadFailed = errors.New("schedule: failed to load bookings")
)
