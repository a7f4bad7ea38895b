package load_catalog

import (
	"context"

	"github.com/m04kA/SMC-BarberFrontDesk/internal/domain"
)

// CatalogClient интерфейс клиента бэкенда для чтения каталога
type CatalogClient interface {
	ListServices(ctx context.Context) ([]domain.Service, error)
	ListBarbers(ctx context.Context) ([]domain.Barber, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
