package middleware

// Metrics учет HTTP запросов
type Metrics interface {
	ObserveHTTPRequest(method, route, status string, seconds float64)
}

// Logger интерфейс для логирования
type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
