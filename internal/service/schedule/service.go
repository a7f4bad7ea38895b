package schedule

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/m04kA/SMC-BarberFrontDesk/internal/domain"
	"github.com/m04kA/SMC-BarberFrontDesk/internal/integrations/barbershop"
)

// Service представление расписания на выбранную дату
//
// Каждый запрос помечается номером поколения. Ответ применяется, только если
// к моменту его прихода не было запроса новее; иначе он отбрасывается.
// Отмены нет: устаревший запрос дорабатывает до конца и его результат игнорируется.
type Service struct {
	client  BookingsClient
	logger  Logger
	metrics Metrics

	mu         sync.RWMutex
	date       string
	generation uint64
	state      State
	records    []domain.BookingRecord
	errMsg     string

	listenersMu sync.RWMutex
	listeners   []func()
}

// NewService создает новый экземпляр сервиса расписания
func NewService(client BookingsClient, logger Logger, metrics Metrics) *Service {
	return &Service{
		client:  client,
		logger:  logger,
		metrics: metrics,
		state:   StateIdle,
		records: []domain.BookingRecord{},
	}
}

// OnChange подписывает слушателя на любые изменения состояния
// Слушатель получает только сигнал; актуальное состояние берется через Snapshot
func (s *Service) OnChange(listener func()) {
	s.listenersMu.Lock()
	defer s.listenersMu.Unlock()
	s.listeners = append(s.listeners, listener)
}

// Show показывает расписание на дату
// Пустая дата переводит представление в idle без запроса к бэкенду
func (s *Service) Show(ctx context.Context, date string) error {
	return s.Fetch(ctx, s.Begin(date))
}

// Begin регистрирует запрос на дату и возвращает его поколение
// Прошлые записи остаются на экране до ответа. Слушатели не уведомляются,
// поэтому Begin можно вызывать под чужой блокировкой; уведомляет Fetch
func (s *Service) Begin(date string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.beginLocked(date)
}

func (s *Service) beginLocked(date string) uint64 {
	s.generation++
	s.date = date
	s.errMsg = ""

	if date == "" {
		s.state = StateIdle
		s.records = []domain.BookingRecord{}
		return s.generation
	}

	s.state = StateLoading
	return s.generation
}

// Fetch загружает расписание для поколения, выданного Begin
// Если после Begin был запрос новее, ответ отбрасывается
func (s *Service) Fetch(ctx context.Context, gen uint64) error {
	// 1. Запрос мог устареть еще до отправки
	s.mu.RLock()
	date := s.date
	current := gen == s.generation
	s.mu.RUnlock()

	if !current {
		s.logger.Info("Schedule: skipped superseded request for date=%q, generation=%d", date, gen)
		return nil
	}

	s.notify()
	if date == "" {
		return nil
	}

	s.logger.Info("Schedule: fetching bookings for date=%s, generation=%d", date, gen)

	// 2. Запрашиваем расписание
	records, err := s.client.ListBookings(ctx, date)

	// 3. Применяем ответ, только если он все еще актуален
	s.mu.Lock()
	if gen != s.generation {
		s.mu.Unlock()
		s.discard(gen, date)
		return nil
	}

	if err != nil {
		s.state = StateErrored
		s.records = []domain.BookingRecord{}
		s.errMsg = errorMessage(err)
		s.mu.Unlock()
		s.notify()

		s.logger.Error("Schedule: failed to load bookings for date=%s: %v", date, err)
		return fmt.Errorf("%w: date=%s: %v", ErrLoadFailed, date, err)
	}

	s.state = StateLoaded
	s.records = records
	s.mu.Unlock()
	s.notify()

	s.logger.Info("Schedule: loaded %d bookings for date=%s", len(records), date)
	return nil
}

// Refresh повторно запрашивает расписание на текущую дату
func (s *Service) Refresh(ctx context.Context) error {
	s.mu.Lock()
	gen := s.beginLocked(s.date)
	s.mu.Unlock()

	return s.Fetch(ctx, gen)
}

// Date дата, для которой запрошено расписание
func (s *Service) Date() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.date
}

// Snapshot возвращает копию текущего состояния
func (s *Service) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]domain.BookingRecord, len(s.records))
	copy(records, s.records)

	return Snapshot{
		Date:    s.date,
		State:   s.state,
		Records: records,
		Error:   s.errMsg,
	}
}

func (s *Service) discard(gen uint64, date string) {
	if s.metrics != nil {
		s.metrics.ObserveStaleSchedule()
	}
	s.logger.Info("Schedule: discarded stale response for date=%s (generation=%d, latest date=%s)", date, gen, s.Date())
}

func (s *Service) notify() {
	s.listenersMu.RLock()
	listeners := make([]func(), len(s.listeners))
	copy(listeners, s.listeners)
	s.listenersMu.RUnlock()

	for _, listener := range listeners {
		listener()
	}
}

// errorMessage текст ошибки для посетителя: detail бэкенда или общий текст
func errorMessage(err error) string {
	if errors.Is(err, barbershop.ErrUnexpectedStatus) {
		if detail := barbershop.DetailOf(err); detail != "" {
			return detail
		}
	}
	return MsgLoadFailed
}
