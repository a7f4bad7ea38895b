package submit_booking

import (
	"strings"

	"github.com/m04kA/SMC-BarberFrontDesk/internal/domain"
	"github.com/m04kA/SMC-BarberFrontDesk/internal/integrations/barbershop"
)

// Сообщения об итоге отправки, которые видит посетитель
const (
	MsgConfirmed     = "✅ Booking confirmed!"
	MsgBookingFailed = "Booking failed"
	failurePrefix    = "❌ "
)

// Итоги отправки для метрик
const (
	outcomeConfirmed = "confirmed"
	outcomeRejected  = "rejected"
	outcomeFailed    = "failed"
)

// FailureMessage помечает текст ошибки для формы
func FailureMessage(detail string) string {
	if strings.TrimSpace(detail) == "" {
		detail = MsgBookingFailed
	}
	return failurePrefix + detail
}

// ShapePayload копирует черновик в тело запроса
// Пустой barber_id выкидывается целиком, а не передается пустой строкой
func ShapePayload(draft domain.BookingDraft) barbershop.BookingPayload {
	payload := barbershop.BookingPayload{
		CustomerName: draft.CustomerName,
		Phone:        draft.Phone,
		ServiceID:    draft.ServiceID,
		Date:         draft.Date,
		Time:         draft.Time,
		Notes:        draft.Notes,
	}
	if draft.HasBarberPreference() {
		payload.BarberID = draft.BarberID
	}
	return payload
}
