package frontdesk

import "errors"

var (
	// ErrInvalidDate возвращается, когда дата не в формате YYYY-MM-DD
	ErrInvalidDate = errors.New("frontdesk: invalid date")

	// ErrUnknownService возвращается, когда услуги нет в загруженном каталоге
	ErrUnknownService = errors.New("frontdesk: unknown service")

	// ErrUnknownBarber возвращается, когда мастера нет в загруженном каталоге
	ErrUnknownBarber = errors.New("frontdesk: unknown barber")
)
