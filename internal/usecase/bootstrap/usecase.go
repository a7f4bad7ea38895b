package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/m04kA/SMC-BarberFrontDesk/internal/integrations/barbershop"
)

// Outcome итог проверки каталога
type Outcome string

const (
	OutcomePending     Outcome = "pending"     // проверка еще не завершена
	OutcomeReady       Outcome = "ready"       // каталог уже заполнен
	OutcomeSeeded      Outcome = "seeded"      // каталог был пуст, seed выполнен
	OutcomeSeedFailed  Outcome = "seed_failed" // каталог пуст, seed не удался
	OutcomeUnreachable Outcome = "unreachable" // бэкенд недоступен
	OutcomeSkipped     Outcome = "skipped"     // бэкенд ответил ошибкой, проверка прекращена
)

// UseCase одноразовая проверка готовности каталога
// Если каталог пуст, просит бэкенд заполнить его данными по умолчанию
type UseCase struct {
	client       CatalogClient
	debugPageURL string
	logger       Logger
	metrics      Metrics

	once sync.Once
	// seeded выставляется не более одного раза и никогда не сбрасывается
	seeded atomic.Bool

	mu      sync.RWMutex
	outcome Outcome
	warning string
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(client CatalogClient, debugPageURL string, logger Logger, metrics Metrics) *UseCase {
	return &UseCase{
		client:       client,
		debugPageURL: debugPageURL,
		logger:       logger,
		metrics:      metrics,
		outcome:      OutcomePending,
	}
}

// Execute выполняет проверку ровно один раз за время жизни процесса
// Повторные вызовы ничего не делают, в том числе после неудачи
func (uc *UseCase) Execute(ctx context.Context) {
	uc.once.Do(func() {
		outcome := uc.run(ctx)

		uc.mu.Lock()
		uc.outcome = outcome
		uc.mu.Unlock()
	})
}

// Seeded true, если каталог подтвержден непустым или seed прошел успешно
func (uc *UseCase) Seeded() bool {
	return uc.seeded.Load()
}

// Warning предупреждение о недоступности бэкенда; пустая строка, если его нет
func (uc *UseCase) Warning() string {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.warning
}

// Outcome итог проверки
func (uc *UseCase) Outcome() Outcome {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.outcome
}

func (uc *UseCase) run(ctx context.Context) Outcome {
	uc.logger.Info("Bootstrap: checking catalog")

	// 1. Запрашиваем текущий список услуг
	services, err := uc.client.ListServices(ctx)
	switch {
	case err == nil:
		// Продолжаем обработку

	case errors.Is(err, barbershop.ErrUnreachable):
		// 2. Бэкенд недоступен: предупреждаем пользователя, повторов нет
		uc.logger.Error("Bootstrap: backend not reachable: %v", err)
		uc.mu.Lock()
		uc.warning = fmt.Sprintf("Backend not reachable. Open %s page to debug connection.", uc.debugPageURL)
		uc.mu.Unlock()
		return OutcomeUnreachable

	case errors.Is(err, barbershop.ErrNotAList):
		// Ответ не является списком: считаем каталог пустым
		uc.logger.Warn("Bootstrap: services response is not a list, treating catalog as empty")

	default:
		uc.logger.Warn("Bootstrap: catalog check skipped: %v", err)
		return OutcomeSkipped
	}

	// 3. Каталог уже заполнен
	if len(services) > 0 {
		uc.seeded.Store(true)
		uc.logger.Info("Bootstrap: catalog has %d services, nothing to seed", len(services))
		return OutcomeReady
	}

	// 4. Каталог пуст: один seed запрос, ошибки не пробрасываются
	uc.logger.Info("Bootstrap: catalog is empty, requesting seed")
	if err := uc.client.Seed(ctx); err != nil {
		uc.observeSeed("error")
		uc.logger.Warn("Bootstrap: seed request failed: %v", err)
		return OutcomeSeedFailed
	}

	uc.observeSeed("ok")
	uc.seeded.Store(true)
	uc.logger.Info("Bootstrap: catalog seeded")
	return OutcomeSeeded
}

func (uc *UseCase) observeSeed(outcome string) {
	if uc.metrics != nil {
		uc.metrics.ObserveSeedRequest(outcome)
	}
}
