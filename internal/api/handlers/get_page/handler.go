package get_page

import (
	"bytes"
	_ "embed"
	"html/template"
	"net/http"

	"github.com/m04kA/SMC-BarberFrontDesk/internal/api/handlers"
)

//go:embed page.html
var pageTemplate string

var page = template.Must(template.New("page").Parse(pageTemplate))

type Handler struct {
	frontDesk FrontDesk
	logger    Logger
}

func NewHandler(frontDesk FrontDesk, logger Logger) *Handler {
	return &Handler{
		frontDesk: frontDesk,
		logger:    logger,
	}
}

// Handle GET /
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	h.Render(w, http.StatusOK, nil)
}

// Render отрисовывает страницу по текущему состоянию стойки
// formErrors показываются над формой записи
func (h *Handler) Render(w http.ResponseWriter, status int, formErrors []string) {
	data := PageData{
		Snapshot:   h.frontDesk.Snapshot(),
		FormErrors: formErrors,
	}

	// Рендерим в буфер, чтобы ошибка шаблона не оставила половину страницы
	var buf bytes.Buffer
	if err := page.Execute(&buf, data); err != nil {
		h.logger.Error("GET / - Failed to render page: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}
