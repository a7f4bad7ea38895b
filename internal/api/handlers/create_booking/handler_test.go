package create_booking

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberFrontDesk/internal/api/handlers"
	"github.com/m04kA/SMC-BarberFrontDesk/internal/domain"
	"github.com/m04kA/SMC-BarberFrontDesk/internal/integrations/barbershop"
	"github.com/m04kA/SMC-BarberFrontDesk/internal/service/frontdesk"
	"github.com/m04kA/SMC-BarberFrontDesk/internal/usecase/submit_booking"
	"github.com/m04kA/SMC-BarberFrontDesk/pkg/logger"
)

type fakeFrontDesk struct {
	bookErr error
	message string
	booked  []domain.BookingDraft
	draft   domain.BookingDraft
	drafted int
}

func (f *fakeFrontDesk) Book(_ context.Context, draft domain.BookingDraft) (*barbershop.BookingConfirmation, error) {
	f.booked = append(f.booked, draft)
	f.draft = draft
	if f.bookErr != nil {
		return nil, f.bookErr
	}
	return &barbershop.BookingConfirmation{ID: "bk1", Status: "confirmed"}, nil
}

func (f *fakeFrontDesk) UpdateDraft(draft domain.BookingDraft) {
	f.drafted++
	f.draft = draft
}

func (f *fakeFrontDesk) Message() string {
	return f.message
}

type fakePage struct {
	status     int
	formErrors []string
}

func (p *fakePage) Render(w http.ResponseWriter, status int, formErrors []string) {
	p.status = status
	p.formErrors = formErrors
	w.WriteHeader(status)
}

func newHandler(t *testing.T, fd *fakeFrontDesk) (*Handler, *fakePage) {
	t.Helper()
	v, err := handlers.NewValidator()
	require.NoError(t, err)
	page := &fakePage{}
	return NewHandler(fd, page, v, logger.NewNop()), page
}

const validJSON = `{"customer_name":"Alice","phone":"555-0100","service_id":"s1","date":"2025-10-15","time":"10:00"}`

func jsonRequest(body string) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/book", strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	return r
}

func formRequest(values url.Values) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/book", strings.NewReader(values.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return r
}

func TestHandle_JSONConfirmed(t *testing.T) {
	fd := &fakeFrontDesk{message: submit_booking.MsgConfirmed}
	h, _ := newHandler(t, fd)

	rec := httptest.NewRecorder()
	h.Handle(rec, jsonRequest(validJSON))

	assert.Equal(t, http.StatusCreated, rec.Code)
	var resp BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "bk1", resp.ID)
	assert.Equal(t, "✅ Booking confirmed!", resp.Message)

	require.Len(t, fd.booked, 1)
	assert.Equal(t, "Alice", fd.booked[0].CustomerName)
	assert.Empty(t, fd.booked[0].BarberID)
}

func TestHandle_JSONValidationNeverReachesBackend(t *testing.T) {
	fd := &fakeFrontDesk{}
	h, _ := newHandler(t, fd)

	rec := httptest.NewRecorder()
	h.Handle(rec, jsonRequest(`{"customer_name":"  ","phone":"1","service_id":"s1","date":"2025/10/15","time":"10:00"}`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var resp handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, msgValidationFailed, resp.Error)
	require.Len(t, resp.Details, 2)
	assert.Contains(t, resp.Details[0], "customer_name")
	assert.Contains(t, resp.Details[1], "date")

	assert.Empty(t, fd.booked)
	assert.Equal(t, 1, fd.drafted)
}

func TestHandle_JSONInvalidBody(t *testing.T) {
	fd := &fakeFrontDesk{}
	h, _ := newHandler(t, fd)

	rec := httptest.NewRecorder()
	h.Handle(rec, jsonRequest(`{"customer_name":`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, fd.booked)
}

func TestHandle_JSONErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		message    string
		wantStatus int
	}{
		{
			name:       "unknown service",
			err:        fmt.Errorf("%w: %q", frontdesk.ErrUnknownService, "s1"),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown barber",
			err:        fmt.Errorf("%w: %q", frontdesk.ErrUnknownBarber, "b9"),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "rejected by backend",
			err:        fmt.Errorf("%w: Slot taken", submit_booking.ErrBookingRejected),
			message:    "❌ Slot taken",
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "backend unreachable",
			err:        fmt.Errorf("%w: dial tcp", submit_booking.ErrSubmitFailed),
			message:    "❌ Booking failed",
			wantStatus: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fd := &fakeFrontDesk{bookErr: tt.err, message: tt.message}
			h, _ := newHandler(t, fd)

			rec := httptest.NewRecorder()
			h.Handle(rec, jsonRequest(validJSON))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.message != "" {
				var resp BookingResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, tt.message, resp.Message)
			}
		})
	}
}

func TestHandle_FormConfirmedRedirects(t *testing.T) {
	fd := &fakeFrontDesk{message: submit_booking.MsgConfirmed}
	h, page := newHandler(t, fd)

	rec := httptest.NewRecorder()
	h.Handle(rec, formRequest(url.Values{
		"customer_name": {"Bob"},
		"phone":         {"555"},
		"service_id":    {"s2"},
		"date":          {"2025-10-16"},
		"time":          {"14:30"},
		"barber_id":     {"b1"},
		"notes":         {"  short  "},
	}))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
	assert.Zero(t, page.status)

	require.Len(t, fd.booked, 1)
	assert.Equal(t, "b1", fd.booked[0].BarberID)
	assert.Equal(t, "short", fd.booked[0].Notes)
}

func TestHandle_FormRejectedRedirects(t *testing.T) {
	fd := &fakeFrontDesk{bookErr: submit_booking.ErrBookingRejected, message: "❌ Slot taken"}
	h, _ := newHandler(t, fd)

	rec := httptest.NewRecorder()
	h.Handle(rec, formRequest(url.Values{
		"customer_name": {"Bob"},
		"phone":         {"555"},
		"service_id":    {"s2"},
		"date":          {"2025-10-16"},
		"time":          {"14:30"},
	}))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
}

func TestHandle_FormValidationRendersPage(t *testing.T) {
	fd := &fakeFrontDesk{}
	h, page := newHandler(t, fd)

	rec := httptest.NewRecorder()
	h.Handle(rec, formRequest(url.Values{
		"customer_name": {"Bob"},
		"service_id":    {"s2"},
		"date":          {"2025-10-16"},
		"time":          {"25:99"},
	}))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, http.StatusBadRequest, page.status)
	require.Len(t, page.formErrors, 2)
	assert.Equal(t, "phone is a required field", page.formErrors[0])
	assert.Contains(t, page.formErrors[1], "time")

	assert.Empty(t, fd.booked)
	assert.Equal(t, "Bob", fd.draft.CustomerName)
}

func TestHandle_FormUnknownServiceRendersPage(t *testing.T) {
	fd := &fakeFrontDesk{bookErr: frontdesk.ErrUnknownService}
	h, page := newHandler(t, fd)

	rec := httptest.NewRecorder()
	h.Handle(rec, formRequest(url.Values{
		"customer_name": {"Bob"},
		"phone":         {"555"},
		"service_id":    {"zzz"},
		"date":          {"2025-10-16"},
		"time":          {"14:30"},
	}))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, []string{msgUnknownService}, page.formErrors)
}
