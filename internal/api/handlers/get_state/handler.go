package get_state

import (
	"net/http"

	"github.com/m04kA/SMC-BarberFrontDesk/internal/api/handlers"
)

type Handler struct {
	frontDesk FrontDesk
}

func NewHandler(frontDesk FrontDesk) *Handler {
	return &Handler{
		frontDesk: frontDesk,
	}
}

// Handle GET /api/v1/state
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, h.frontDesk.Snapshot())
}
