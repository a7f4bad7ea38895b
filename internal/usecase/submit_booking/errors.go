package submit_booking

import "errors"

var (
	// ErrBookingRejected возвращается, когда бэкенд отклонил запись
	ErrBookingRejected = errors.New("submit_booking: booking rejected")

	// ErrSubmitFailed возвращается при сетевой ошибке или некорректном ответе бэкенда
	ErrSubmitFailed = errors.New("submit_booking: submission failed")
)
