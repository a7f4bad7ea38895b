package barbershop

import (
	"errors"
	"fmt"
)

var (
	// ErrUnreachable возвращается, когда бэкенд недоступен на сетевом уровне
	ErrUnreachable = errors.New("barbershop client: backend not reachable")

	// ErrUnexpectedStatus возвращается при не-2xx ответе на чтение каталога или расписания
	ErrUnexpectedStatus = errors.New("barbershop client: unexpected status code")

	// ErrInvalidResponse возвращается, когда тело ответа не удалось разобрать как JSON ожидаемой формы
	ErrInvalidResponse = errors.New("barbershop client: invalid response")

	// ErrBookingRejected возвращается, когда бэкенд отклонил запись (не-2xx на POST /book)
	ErrBookingRejected = errors.New("barbershop client: booking rejected")

	// ErrInternal возвращается при внутренних ошибках клиента (например, сборка запроса)
	ErrInternal = errors.New("barbershop client: internal error")
)

// StatusError несет код ответа и поле detail, если бэкенд его прислал
type StatusError struct {
	Operation  string
	StatusCode int
	Detail     string
	kind       error
}

func (e *StatusError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%v: %s returned %d: %s", e.kind, e.Operation, e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("%v: %s returned %d", e.kind, e.Operation, e.StatusCode)
}

func (e *StatusError) Unwrap() error {
	return e.kind
}

// DetailOf извлекает detail из ошибки клиента; пустая строка, если его нет
func DetailOf(err error) string {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Detail
	}
	return ""
}
