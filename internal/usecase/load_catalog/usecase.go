package load_catalog

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/m04kA/SMC-BarberFrontDesk/internal/domain"
)

// UseCase загрузка каталога (услуги и мастера) для формы записи
// После загрузки списки не меняются до конца сессии
type UseCase struct {
	client CatalogClient
	logger Logger

	mu       sync.RWMutex
	state    State
	errMsg   string
	services []domain.Service
	barbers  []domain.Barber
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(client CatalogClient, logger Logger) *UseCase {
	return &UseCase{
		client:   client,
		logger:   logger,
		state:    StateLoading,
		services: []domain.Service{},
		barbers:  []domain.Barber{},
	}
}

// Execute параллельно запрашивает услуги и мастеров и дожидается обоих ответов
// Если хотя бы один запрос не удался, оба списка остаются пустыми
func (uc *UseCase) Execute(ctx context.Context) error {
	uc.logger.Info("LoadCatalog: fetching services and barbers")

	var (
		services []domain.Service
		barbers  []domain.Barber
	)

	// 1. Оба запроса уходят одновременно
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s, err := uc.client.ListServices(gctx)
		if err != nil {
			return fmt.Errorf("services: %w", err)
		}
		services = s
		return nil
	})
	g.Go(func() error {
		b, err := uc.client.ListBarbers(gctx)
		if err != nil {
			return fmt.Errorf("barbers: %w", err)
		}
		barbers = b
		return nil
	})

	// 2. Ждем оба ответа
	if err := g.Wait(); err != nil {
		uc.logger.Error("LoadCatalog: failed to load catalog: %v", err)

		uc.mu.Lock()
		uc.state = StateErrored
		uc.errMsg = MsgLoadFailed
		uc.services = []domain.Service{}
		uc.barbers = []domain.Barber{}
		uc.mu.Unlock()

		return fmt.Errorf("%w: %v", ErrLoadFailed, err)
	}

	// 3. Фиксируем справочные данные
	uc.mu.Lock()
	uc.state = StateReady
	uc.errMsg = ""
	uc.services = services
	uc.barbers = barbers
	uc.mu.Unlock()

	uc.logger.Info("LoadCatalog: loaded %d services and %d barbers", len(services), len(barbers))
	return nil
}

// State текущее состояние загрузки
func (uc *UseCase) State() State {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.state
}

// DefaultServiceID первая услуга в порядке ответа бэкенда; пустая строка, если услуг нет
func (uc *UseCase) DefaultServiceID() string {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	if len(uc.services) == 0 {
		return ""
	}
	return uc.services[0].ID
}

// HasService проверяет, что услуга есть в загруженном каталоге
func (uc *UseCase) HasService(id string) bool {
	if id == "" {
		return false
	}

	uc.mu.RLock()
	defer uc.mu.RUnlock()
	for _, s := range uc.services {
		if s.ID == id {
			return true
		}
	}
	return false
}

// HasBarber проверяет, что мастер есть в загруженном каталоге
func (uc *UseCase) HasBarber(id string) bool {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	for _, b := range uc.barbers {
		if b.ID == id {
			return true
		}
	}
	return false
}

// Snapshot возвращает копию каталога для отображения
func (uc *UseCase) Snapshot() Snapshot {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	snap := Snapshot{
		State:    uc.state,
		Error:    uc.errMsg,
		Services: make([]ServiceOption, 0, len(uc.services)),
		Barbers:  make([]BarberOption, 0, len(uc.barbers)),
	}

	for _, s := range uc.services {
		snap.Services = append(snap.Services, ServiceOption{
			ID:              s.ID,
			Title:           s.Title,
			Price:           s.Price,
			DurationMinutes: s.DurationMinutes,
			Label:           s.Label(),
		})
	}
	for _, b := range uc.barbers {
		snap.Barbers = append(snap.Barbers, BarberOption{ID: b.ID, Name: b.Name})
	}
	if len(uc.services) > 0 {
		snap.DefaultServiceID = uc.services[0].ID
	}

	return snap
}
