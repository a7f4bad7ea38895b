package middleware

import (
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gorilla/mux"
)

// Logging пишет строку лога на каждый запрос и перехватывает панику обработчика
func Logging(logger Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			started := time.Now()
			rw := wrapResponseWriter(w)

			defer func() {
				if rec := recover(); rec != nil {
					logger.Error("%s %s - Panic: %v\n%s", r.Method, r.URL.Path, rec, debug.Stack())
					if !rw.wroteHeader {
						http.Error(rw, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
					}
				}
			}()

			next.ServeHTTP(rw, r)

			logger.Debug("%s %s -> %d (%s)", r.Method, r.URL.RequestURI(), rw.status, time.Since(started))
		})
	}
}
