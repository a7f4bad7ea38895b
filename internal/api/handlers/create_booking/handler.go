package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BarberFrontDesk/internal/api/handlers"
	"github.com/m04kA/SMC-BarberFrontDesk/internal/service/frontdesk"
	"github.com/m04kA/SMC-BarberFrontDesk/internal/usecase/submit_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgValidationFailed   = "validation failed"
	msgUnknownService     = "selected service is not in the catalog"
	msgUnknownBarber      = "selected barber is not in the catalog"
)

type Handler struct {
	frontDesk FrontDesk
	page      PageRenderer
	validator Validator
	logger    Logger
}

func NewHandler(frontDesk FrontDesk, page PageRenderer, validator Validator, logger Logger) *Handler {
	return &Handler{
		frontDesk: frontDesk,
		page:      page,
		validator: validator,
		logger:    logger,
	}
}

// Handle POST /book
// JSON клиенты получают JSON, HTML форма получает redirect на страницу или страницу с ошибками
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	wantsJSON := handlers.WantsJSON(r)

	// 1. Читаем запрос
	req, err := h.decode(r)
	if err != nil {
		h.logger.Warn("POST /book - Invalid request body: %v", err)
		h.reject(w, wantsJSON, msgInvalidRequestBody)
		return
	}
	req.Normalize()

	// 2. Проверяем обязательные поля до обращения к бэкенду
	problems, err := h.validator.Validate(req)
	if err != nil {
		h.logger.Error("POST /book - Failed to validate request: %v", err)
		handlers.RespondInternalError(w)
		return
	}
	if len(problems) > 0 {
		h.logger.Warn("POST /book - Validation failed: %v", problems)
		h.frontDesk.UpdateDraft(req.ToDraft())
		h.reject(w, wantsJSON, msgValidationFailed, problems...)
		return
	}

	// 3. Отправляем запись
	confirmation, err := h.frontDesk.Book(r.Context(), req.ToDraft())
	if err != nil {
		switch {
		case errors.Is(err, frontdesk.ErrUnknownService):
			h.logger.Warn("POST /book - Unknown service: service_id=%q", req.ServiceID)
			h.reject(w, wantsJSON, msgUnknownService)

		case errors.Is(err, frontdesk.ErrUnknownBarber):
			h.logger.Warn("POST /book - Unknown barber: barber_id=%q", req.BarberID)
			h.reject(w, wantsJSON, msgUnknownBarber)

		case errors.Is(err, submit_booking.ErrBookingRejected):
			h.logger.Warn("POST /book - Booking rejected: %v", err)
			h.outcome(w, r, wantsJSON, http.StatusUnprocessableEntity, &BookingResponse{Message: h.frontDesk.Message()})

		default:
			h.logger.Error("POST /book - Failed to submit booking: %v", err)
			h.outcome(w, r, wantsJSON, http.StatusBadGateway, &BookingResponse{Message: h.frontDesk.Message()})
		}
		return
	}

	h.logger.Info("POST /book - Booking confirmed: booking_id=%q, date=%s, time=%s",
		confirmation.ID, req.Date, req.Time)
	h.outcome(w, r, wantsJSON, http.StatusCreated, &BookingResponse{
		ID:      confirmation.ID,
		Status:  confirmation.Status,
		Message: h.frontDesk.Message(),
	})
}

func (h *Handler) decode(r *http.Request) (*CreateBookingRequest, error) {
	if handlers.HasMediaType(r.Header.Get("Content-Type"), "application/json") {
		var req CreateBookingRequest
		if err := handlers.DecodeJSON(r, &req); err != nil {
			return nil, err
		}
		return &req, nil
	}
	return FromForm(r)
}

// reject ответ на запрос, отклоненный до бэкенда
func (h *Handler) reject(w http.ResponseWriter, wantsJSON bool, message string, details ...string) {
	if wantsJSON {
		handlers.RespondBadRequest(w, message, details...)
		return
	}
	if len(details) == 0 {
		details = []string{message}
	}
	h.page.Render(w, http.StatusBadRequest, details)
}

// outcome ответ после обращения к бэкенду; итог для формы уже лежит в состоянии стойки
func (h *Handler) outcome(w http.ResponseWriter, r *http.Request, wantsJSON bool, status int, resp *BookingResponse) {
	if wantsJSON {
		handlers.RespondJSON(w, status, resp)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
