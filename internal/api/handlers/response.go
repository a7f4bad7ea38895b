package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
)

const msgInternalError = "internal server error"

// ErrorResponse тело ответа с ошибкой
type ErrorResponse struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

// DecodeJSON разбирает JSON тело запроса; неизвестные поля считаются ошибкой
func DecodeJSON(r *http.Request, v interface{}) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(v)
}

// RespondJSON отправляет JSON ответ с указанным статусом
func RespondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(v)
}

// RespondError отправляет ошибку с указанным статусом
func RespondError(w http.ResponseWriter, status int, message string, details ...string) {
	RespondJSON(w, status, ErrorResponse{Error: message, Details: details})
}

// RespondBadRequest 400
func RespondBadRequest(w http.ResponseWriter, message string, details ...string) {
	RespondError(w, http.StatusBadRequest, message, details...)
}

// RespondInternalError 500
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, msgInternalError)
}

// WantsJSON true, если запрос пришел от API клиента, а не от HTML формы
func WantsJSON(r *http.Request) bool {
	return HasMediaType(r.Header.Get("Content-Type"), "application/json") ||
		HasMediaType(r.Header.Get("Accept"), "application/json")
}

// HasMediaType проверяет, есть ли mediaType в заголовке Content-Type или Accept
func HasMediaType(header, mediaType string) bool {
	for _, part := range strings.Split(header, ",") {
		part, _, _ = strings.Cut(part, ";")
		if strings.EqualFold(strings.TrimSpace(part), mediaType) {
			return true
		}
	}
	return false
}
