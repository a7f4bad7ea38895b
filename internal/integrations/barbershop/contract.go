package barbershop

// Logger интерфейс для логирования
type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Metrics учет вызовов бэкенда
type Metrics interface {
	ObserveBackendCall(operation, outcome string, seconds float64)
}
