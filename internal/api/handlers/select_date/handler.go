package select_date

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BarberFrontDesk/internal/api/handlers"
	"github.com/m04kA/SMC-BarberFrontDesk/internal/service/frontdesk"
)

const msgInvalidDate = "invalid date format, expected YYYY-MM-DD"

type Handler struct {
	frontDesk FrontDesk
	page      PageRenderer
	logger    Logger
}

func NewHandler(frontDesk FrontDesk, page PageRenderer, logger Logger) *Handler {
	return &Handler{
		frontDesk: frontDesk,
		page:      page,
		logger:    logger,
	}
}

// Handle GET /api/v1/schedule?date=YYYY-MM-DD
// Без параметра date возвращает расписание на уже выбранную дату
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	if query.Has("date") {
		date := query.Get("date")
		if err := h.frontDesk.SelectDate(r.Context(), date); err != nil {
			if errors.Is(err, frontdesk.ErrInvalidDate) {
				h.logger.Warn("GET /api/v1/schedule - Invalid date: %q", date)
				handlers.RespondBadRequest(w, msgInvalidDate)
				return
			}
			// Ошибка загрузки уже лежит в состоянии расписания
			h.logger.Warn("GET /api/v1/schedule - Failed to load schedule: date=%s, error=%v", date, err)
		}
	}

	handlers.RespondJSON(w, http.StatusOK, FromSnapshot(h.frontDesk.Snapshot()))
}

// HandleForm POST /schedule
func (h *Handler) HandleForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.logger.Warn("POST /schedule - Invalid form: %v", err)
		h.page.Render(w, http.StatusBadRequest, []string{msgInvalidDate})
		return
	}

	date := r.PostForm.Get("date")
	if err := h.frontDesk.SelectDate(r.Context(), date); err != nil {
		if errors.Is(err, frontdesk.ErrInvalidDate) {
			h.logger.Warn("POST /schedule - Invalid date: %q", date)
			h.page.Render(w, http.StatusBadRequest, []string{msgInvalidDate})
			return
		}
		h.logger.Warn("POST /schedule - Failed to load schedule: date=%s, error=%v", date, err)
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
