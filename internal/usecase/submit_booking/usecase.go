package submit_booking

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/m04kA/SMC-BarberFrontDesk/internal/domain"
	"github.com/m04kA/SMC-BarberFrontDesk/internal/integrations/barbershop"
)

// UseCase отправка записи из формы
// Владеет черновиком формы и последним сообщением об итоге
type UseCase struct {
	client  BookingClient
	logger  Logger
	metrics Metrics

	mu      sync.RWMutex
	draft   domain.BookingDraft
	message string
	// seq номер последней отправки: сообщение пишет только она
	seq uint64

	listenersMu sync.RWMutex
	listeners   []BookedListener
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(client BookingClient, logger Logger, metrics Metrics) *UseCase {
	return &UseCase{
		client:  client,
		logger:  logger,
		metrics: metrics,
	}
}

// OnBooked подписывает слушателя на подтвержденные записи
func (uc *UseCase) OnBooked(listener BookedListener) {
	uc.listenersMu.Lock()
	defer uc.listenersMu.Unlock()
	uc.listeners = append(uc.listeners, listener)
}

// Draft текущий черновик формы
func (uc *UseCase) Draft() domain.BookingDraft {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.draft
}

// SetDraft заменяет черновик (поля формы)
func (uc *UseCase) SetDraft(draft domain.BookingDraft) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.draft = draft
}

// SetDefaultService подставляет услугу в черновик, если посетитель ее еще не выбрал
// Проверка и запись идут под одной блокировкой, параллельный SetDraft не теряется
func (uc *UseCase) SetDefaultService(id string) bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.draft.ServiceID != "" {
		return false
	}
	uc.draft.ServiceID = id
	return true
}

// Message последнее сообщение об итоге; пустая строка, если отправок не было
func (uc *UseCase) Message() string {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.message
}

// Execute отправляет запись
// Обязательные поля проверяет поверхность ввода, здесь повторной проверки нет:
// с пустыми полями бэкенд сам вернет отказ
// Черновик сохраняется при любом исходе, чтобы посетитель мог исправить и повторить
func (uc *UseCase) Execute(ctx context.Context, draft domain.BookingDraft) (*barbershop.BookingConfirmation, error) {
	// 1. Сбрасываем прошлое сообщение
	uc.mu.Lock()
	uc.seq++
	seq := uc.seq
	uc.draft = draft
	uc.message = ""
	uc.mu.Unlock()

	// 2. Копируем черновик без пустых опциональных полей
	payload := ShapePayload(draft)

	uc.logger.Info("SubmitBooking: service=%s, date=%s, time=%s, barber=%q",
		payload.ServiceID, payload.Date, payload.Time, payload.BarberID)

	// 3. Отправляем
	confirmation, err := uc.client.CreateBooking(ctx, payload)
	if err != nil {
		// 4. Отказ бэкенда: показываем detail, если он есть
		if errors.Is(err, barbershop.ErrBookingRejected) {
			detail := barbershop.DetailOf(err)
			if detail == "" {
				detail = MsgBookingFailed
			}
			uc.logger.Warn("SubmitBooking: rejected by backend: %v", err)
			uc.observe(outcomeRejected)
			uc.setMessage(seq, FailureMessage(detail))
			return nil, fmt.Errorf("%w: %s", ErrBookingRejected, detail)
		}

		// 5. Сеть или некорректный ответ: для посетителя то же сообщение, что и при отказе
		uc.logger.Error("SubmitBooking: failed to submit booking: %v", err)
		uc.observe(outcomeFailed)
		uc.setMessage(seq, FailureMessage(MsgBookingFailed))
		return nil, fmt.Errorf("%w: %v", ErrSubmitFailed, err)
	}

	// 6. Успех
	uc.observe(outcomeConfirmed)
	uc.setMessage(seq, MsgConfirmed)
	uc.logger.Info("SubmitBooking: booking confirmed, id=%q", confirmation.ID)

	// 7. Уведомляем слушателей; их сбои не трогают состояние формы
	uc.notify(context.WithoutCancel(ctx), confirmation)

	return confirmation, nil
}

func (uc *UseCase) setMessage(seq uint64, message string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if seq != uc.seq {
		// Пока ждали ответ, ушла более новая отправка
		return
	}
	uc.message = message
}

func (uc *UseCase) notify(ctx context.Context, confirmation *barbershop.BookingConfirmation) {
	uc.listenersMu.RLock()
	listeners := make([]BookedListener, len(uc.listeners))
	copy(listeners, uc.listeners)
	uc.listenersMu.RUnlock()

	for _, listener := range listeners {
		uc.invoke(ctx, listener, confirmation)
	}
}

func (uc *UseCase) invoke(ctx context.Context, listener BookedListener, confirmation *barbershop.BookingConfirmation) {
	defer func() {
		if r := recover(); r != nil {
			uc.logger.Error("SubmitBooking: booked listener panicked: %v", r)
		}
	}()

	if err := listener(ctx, confirmation); err != nil {
		uc.logger.Warn("SubmitBooking: booked listener failed: %v", err)
	}
}

func (uc *UseCase) observe(outcome string) {
	if uc.metrics != nil {
		uc.metrics.ObserveBookingSubmission(outcome)
	}
}
