package barbershop

import (
	"encoding/json"
	"strings"
)

// BookingPayload тело POST /book
// Пустые barber_id и notes не передаются: бэкенд отличает "без предпочтений" от битой ссылки
// только по отсутствию поля
type BookingPayload struct {
	CustomerName string `json:"customer_name"`
	Phone        string `json:"phone"`
	ServiceID    string `json:"service_id"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	BarberID     string `json:"barber_id,omitempty"`
	Notes        string `json:"notes,omitempty"`
}

// BookingConfirmation подтверждение записи
// Форма тела не зафиксирована контрактом, читаются только известные поля
type BookingConfirmation struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// ErrorResponse модель ошибки от бэкенда
// detail бывает строкой ({"detail": "Slot taken"}) или списком ошибок валидации
type ErrorResponse struct {
	Detail json.RawMessage `json:"detail"`
}

type validationIssue struct {
	Msg string `json:"msg"`
}

// Message возвращает текст detail или пустую строку
func (r ErrorResponse) Message() string {
	if len(r.Detail) == 0 {
		return ""
	}

	var text string
	if err := json.Unmarshal(r.Detail, &text); err == nil {
		return text
	}

	var issues []validationIssue
	if err := json.Unmarshal(r.Detail, &issues); err == nil {
		msgs := make([]string, 0, len(issues))
		for _, issue := range issues {
			if issue.Msg != "" {
				msgs = append(msgs, issue.Msg)
			}
		}
		return strings.Join(msgs, "; ")
	}

	return ""
}
