package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
)

const unmatchedRoute = "unmatched"

// MetricsMiddleware считает запросы и их длительность по шаблону маршрута
// Шаблон вместо пути, чтобы query и значения параметров не раздували метки
func MetricsMiddleware(metrics Metrics) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			started := time.Now()
			rw := wrapResponseWriter(w)

			// Паника учитывается как 500 и уходит дальше в Logging
			defer func() {
				status := rw.status
				rec := recover()
				if rec != nil {
					status = http.StatusInternalServerError
				}
				metrics.ObserveHTTPRequest(r.Method, routeTemplate(r), strconv.Itoa(status), time.Since(started).Seconds())
				if rec != nil {
					panic(rec)
				}
			}()

			next.ServeHTTP(rw, r)
		})
	}
}

func routeTemplate(r *http.Request) string {
	route := mux.CurrentRoute(r)
	if route == nil {
		return unmatchedRoute
	}
	tmpl, err := route.GetPathTemplate()
	if err != nil {
		return unmatchedRoute
	}
	return tmpl
}
