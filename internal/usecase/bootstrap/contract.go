package bootstrap

import (
	"context"

	"github.com/m04kA/SMC-BarberFrontDesk/internal/domain"
)

// CatalogClient интерфейс клиента бэкенда, нужные bootstrap операции
type CatalogClient interface {
	ListServices(ctx context.Context) ([]domain.Service, error)
	Seed(ctx context.Context) error
}

// Metrics учет выданных seed запросов
type Metrics interface {
	ObserveSeedRequest(outcome string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
