package get_page

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-BarberFrontDesk/internal/domain"
	"github.com/m04kA/SMC-BarberFrontDesk/internal/service/frontdesk"
	"github.com/m04kA/SMC-BarberFrontDesk/internal/service/schedule"
	"github.com/m04kA/SMC-BarberFrontDesk/internal/usecase/load_catalog"
	"github.com/m04kA/SMC-BarberFrontDesk/pkg/logger"
)

type fakeFrontDesk struct {
	snap frontdesk.Snapshot
}

func (f fakeFrontDesk) Snapshot() frontdesk.Snapshot {
	return f.snap
}

func readySnapshot() frontdesk.Snapshot {
	return frontdesk.Snapshot{
		SelectedDate: "2025-10-15",
		Catalog: load_catalog.Snapshot{
			State: load_catalog.StateReady,
			Services: []load_catalog.ServiceOption{
				{ID: "s1", Title: "Haircut", Price: 20, DurationMinutes: 30, Label: "Haircut • $20 • 30m"},
				{ID: "s2", Title: "Shave", Price: 12.5, DurationMinutes: 15, Label: "Shave • $12.5 • 15m"},
			},
			Barbers:          []load_catalog.BarberOption{{ID: "b1", Name: "Max"}},
			DefaultServiceID: "s1",
		},
		Draft:        domain.BookingDraft{ServiceID: "s2", CustomerName: "<Alice>"},
		Message:      "✅ Booking confirmed!",
		DebugPageURL: "/test",
		Schedule: schedule.Snapshot{
			Date:  "2025-10-15",
			State: schedule.StateLoaded,
			Records: []domain.BookingRecord{
				{ID: "x", CustomerName: "Bob", Phone: "555", ServiceTitle: "Haircut", Time: "10:00", DurationMinutes: 30, Status: "confirmed", BarberName: "Max"},
			},
		},
	}
}

func TestHandle_RendersPage(t *testing.T) {
	h := NewHandler(fakeFrontDesk{snap: readySnapshot()}, logger.NewNop())

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))

	body := rec.Body.String()
	assert.Contains(t, body, "Haircut • $20 • 30m")
	assert.Contains(t, body, `<option value="s2" selected>`)
	assert.Contains(t, body, `<option value="">No preference</option>`)
	assert.Contains(t, body, "✅ Booking confirmed!")
	assert.Contains(t, body, "Haircut • 10:00 • 30m • Max")
	assert.Contains(t, body, `href="/test"`)
	assert.Contains(t, body, `value="2025-10-15"`)
	assert.Contains(t, body, "&lt;Alice&gt;")
	assert.NotContains(t, body, "<Alice>")
	assert.NotContains(t, body, schedule.MsgEmpty)
	assert.NotContains(t, body, `class="booking cancelled"`)
}

func TestHandle_CancelledBookingIsMuted(t *testing.T) {
	snap := readySnapshot()
	snap.Schedule.Records = append(snap.Schedule.Records, domain.BookingRecord{
		ID: "y", CustomerName: "Carl", ServiceTitle: "Shave", Time: "11:00", DurationMinutes: 15, Status: domain.StatusCancelled,
	})
	h := NewHandler(fakeFrontDesk{snap: snap}, logger.NewNop())

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	body := rec.Body.String()
	assert.Equal(t, 1, strings.Count(body, `class="booking cancelled"`))
	assert.Equal(t, 1, strings.Count(body, `class="booking"`))
}

func TestHandle_WarningAndEmptySchedule(t *testing.T) {
	snap := readySnapshot()
	snap.Warning = "Backend not reachable. Open /test page to debug connection."
	snap.Schedule = schedule.Snapshot{Date: "2025-10-15", State: schedule.StateLoaded, Records: []domain.BookingRecord{}}
	h := NewHandler(fakeFrontDesk{snap: snap}, logger.NewNop())

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	body := rec.Body.String()
	assert.Contains(t, body, "Backend not reachable. Open /test page to debug connection.")
	assert.Contains(t, body, schedule.MsgEmpty)
}

func TestHandle_CatalogLoading(t *testing.T) {
	snap := readySnapshot()
	snap.Catalog = load_catalog.Snapshot{State: load_catalog.StateLoading}
	snap.Schedule = schedule.Snapshot{Date: "2025-10-15", State: schedule.StateLoading}
	h := NewHandler(fakeFrontDesk{snap: snap}, logger.NewNop())

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	body := rec.Body.String()
	assert.Contains(t, body, "<p>Loading...</p>")
	assert.Contains(t, body, "Loading bookings...")
	assert.NotContains(t, body, `action="/book"`)
	assert.NotContains(t, body, schedule.MsgEmpty)
}

func TestRender_FormErrors(t *testing.T) {
	h := NewHandler(fakeFrontDesk{snap: readySnapshot()}, logger.NewNop())

	rec := httptest.NewRecorder()
	h.Render(rec, http.StatusBadRequest, []string{"phone is a required field"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "phone is a required field")
}
