package frontdesk

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/m04kA/SMC-BarberFrontDesk/internal/domain"
	"github.com/m04kA/SMC-BarberFrontDesk/internal/integrations/barbershop"
)

// Service стойка записи: связывает каталог, форму записи и расписание одной сессии
type Service struct {
	bootstrap    Bootstrapper
	catalog      Catalog
	submitter    Submitter
	schedule     Schedule
	logger       Logger
	debugPageURL string
	now          func() time.Time

	mu           sync.RWMutex
	selectedDate string

	subsMu sync.Mutex
	subs   map[chan Snapshot]struct{}
}

// Option настройка сервиса
type Option func(*Service)

// WithClock подменяет часы, по которым выбирается сегодняшняя дата
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// NewService создает новый экземпляр сервиса
// Выбранная дата по умолчанию сегодняшняя, по локальным часам
func NewService(
	bootstrap Bootstrapper,
	catalog Catalog,
	submitter Submitter,
	schedule Schedule,
	debugPageURL string,
	logger Logger,
	opts ...Option,
) *Service {
	s := &Service{
		bootstrap:    bootstrap,
		catalog:      catalog,
		submitter:    submitter,
		schedule:     schedule,
		logger:       logger,
		debugPageURL: debugPageURL,
		now:          time.Now,
		subs:         make(map[chan Snapshot]struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.selectedDate = s.now().Format(domain.DateFormat)

	schedule.OnChange(s.publish)
	submitter.OnBooked(s.refreshSchedule)

	return s
}

// Start запускает проверку каталога, загрузку каталога и расписание на выбранную дату
// Все три идут параллельно и не ждут друг друга
// Ошибки уже отражены в состоянии компонентов, наружу возвращаются только для лога
func (s *Service) Start(ctx context.Context) error {
	var g errgroup.Group

	g.Go(func() error {
		s.bootstrap.Execute(ctx)
		s.publish()
		return nil
	})

	g.Go(func() error {
		err := s.catalog.Execute(ctx)
		if err == nil {
			s.applyDefaultService()
		}
		s.publish()
		return err
	})

	gen := s.beginSchedule()
	g.Go(func() error {
		return s.schedule.Fetch(ctx, gen)
	})

	if err := g.Wait(); err != nil {
		s.logger.Warn("FrontDesk: started with errors: %v", err)
		return err
	}

	s.logger.Info("FrontDesk: started, bootstrap=%s, date=%s", s.bootstrap.Outcome(), s.SelectedDate())
	return nil
}

// SelectedDate выбранная дата расписания
func (s *Service) SelectedDate() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selectedDate
}

// SelectDate меняет выбранную дату и показывает расписание на нее
// Пустая дата допустима: расписание переходит в idle
func (s *Service) SelectDate(ctx context.Context, date string) error {
	if date != "" {
		if _, err := time.Parse(domain.DateFormat, date); err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidDate, date)
		}
	}

	// Запись даты и регистрация запроса в расписании идут под одной блокировкой:
	// последняя выбранная дата всегда совпадает с последним запросом расписания
	s.mu.Lock()
	s.selectedDate = date
	gen := s.schedule.Begin(date)
	s.mu.Unlock()

	s.logger.Info("FrontDesk: selected date=%q", date)

	return s.schedule.Fetch(ctx, gen)
}

// UpdateDraft сохраняет поля формы без отправки
func (s *Service) UpdateDraft(draft domain.BookingDraft) {
	s.submitter.SetDraft(draft)
	s.publish()
}

// Book отправляет запись
// Услуга и мастер должны быть из загруженного каталога, иначе запрос до бэкенда не доходит
func (s *Service) Book(ctx context.Context, draft domain.BookingDraft) (*barbershop.BookingConfirmation, error) {
	if !s.catalog.HasService(draft.ServiceID) {
		s.UpdateDraft(draft)
		return nil, fmt.Errorf("%w: %q", ErrUnknownService, draft.ServiceID)
	}
	if draft.HasBarberPreference() && !s.catalog.HasBarber(draft.BarberID) {
		s.UpdateDraft(draft)
		return nil, fmt.Errorf("%w: %q", ErrUnknownBarber, draft.BarberID)
	}

	confirmation, err := s.submitter.Execute(ctx, draft)
	s.publish()

	return confirmation, err
}

// Message итог последней отправки записи
func (s *Service) Message() string {
	return s.submitter.Message()
}

// Snapshot собирает текущее состояние всех компонентов
func (s *Service) Snapshot() Snapshot {
	return Snapshot{
		Warning:      s.bootstrap.Warning(),
		Bootstrap:    s.bootstrap.Outcome(),
		Seeded:       s.bootstrap.Seeded(),
		SelectedDate: s.SelectedDate(),
		Catalog:      s.catalog.Snapshot(),
		Draft:        s.submitter.Draft(),
		Message:      s.submitter.Message(),
		Schedule:     s.schedule.Snapshot(),
		DebugPageURL: s.debugPageURL,
	}
}

// Subscribe подписывает на изменения состояния
// Медленный подписчик получает только последнее состояние, промежуточные пропускаются
// Возвращаемая функция отменяет подписку и закрывает канал
func (s *Service) Subscribe() (<-chan Snapshot, func()) {
	ch := make(chan Snapshot, subscriberBuffer)

	s.subsMu.Lock()
	s.subs[ch] = struct{}{}
	ch <- s.Snapshot()
	s.subsMu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			s.subsMu.Lock()
			delete(s.subs, ch)
			close(ch)
			s.subsMu.Unlock()
		})
	}

	return ch, cancel
}

// publish рассылает свежее состояние подписчикам
// Снимок берется под subsMu, поэтому подписчик не получит более старое состояние после нового
func (s *Service) publish() {
	s.subsMu.Lock()
	defer s.subsMu.Unlock()

	if len(s.subs) == 0 {
		return
	}

	snap := s.Snapshot()
	for ch := range s.subs {
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- snap:
		default:
		}
	}
}

// applyDefaultService подставляет в форму первую услугу каталога, если услуга еще не выбрана
func (s *Service) applyDefaultService() {
	if id := s.catalog.DefaultServiceID(); id != "" {
		s.submitter.SetDefaultService(id)
	}
}

// beginSchedule регистрирует запрос расписания на выбранную дату
func (s *Service) beginSchedule() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.schedule.Begin(s.selectedDate)
}

// refreshSchedule обновляет расписание после подтвержденной записи
func (s *Service) refreshSchedule(ctx context.Context, confirmation *barbershop.BookingConfirmation) error {
	s.logger.Info("FrontDesk: booking %q confirmed, refreshing schedule for date=%s",
		confirmation.ID, s.SelectedDate())
	return s.schedule.Fetch(ctx, s.beginSchedule())
}
