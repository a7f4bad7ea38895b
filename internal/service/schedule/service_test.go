package schedule

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberFrontDesk/internal/domain"
	"github.com/m04kA/SMC-BarberFrontDesk/internal/integrations/barbershop"
	"github.com/m04kA/SMC-BarberFrontDesk/pkg/logger"
)

type response struct {
	records []domain.BookingRecord
	err     error
}

// gatedClient отвечает на запрос даты только после release(date)
type gatedClient struct {
	mu        sync.Mutex
	responses map[string]response
	gates     map[string]chan struct{}
	calls     []string
}

func newGatedClient() *gatedClient {
	return &gatedClient{
		responses: map[string]response{},
		gates:     map[string]chan struct{}{},
	}
}

func (c *gatedClient) set(date string, records []domain.BookingRecord, err error, gated bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.responses[date] = response{records: records, err: err}
	if gated {
		c.gates[date] = make(chan struct{})
	}
}

func (c *gatedClient) release(date string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	close(c.gates[date])
}

func (c *gatedClient) ListBookings(ctx context.Context, date string) ([]domain.BookingRecord, error) {
	c.mu.Lock()
	c.calls = append(c.calls, date)
	gate := c.gates[date]
	resp := c.responses[date]
	c.mu.Unlock()

	if gate != nil {
		<-gate
	}
	return resp.records, resp.err
}

func (c *gatedClient) callCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.calls)
}

type staleCounter struct {
	stale atomic.Int32
}

func (c *staleCounter) ObserveStaleSchedule() {
	c.stale.Add(1)
}

func records(ids ...string) []domain.BookingRecord {
	out := make([]domain.BookingRecord, 0, len(ids))
	for i, id := range ids {
		out = append(out, domain.BookingRecord{
			ID:              id,
			CustomerName:    "Customer " + id,
			ServiceTitle:    "Haircut",
			Time:            fmt.Sprintf("1%d:00", i),
			DurationMinutes: 30,
			Status:          domain.StatusConfirmed,
		})
	}
	return out
}

func TestShow_LoadedInReturnedOrder(t *testing.T) {
	client := newGatedClient()
	client.set("2025-10-15", records("b3", "b1", "b2"), nil, false)

	s := NewService(client, logger.NewNop(), nil)
	require.NoError(t, s.Show(context.Background(), "2025-10-15"))

	snap := s.Snapshot()
	assert.Equal(t, StateLoaded, snap.State)
	assert.Equal(t, "2025-10-15", snap.Date)
	assert.Equal(t, records("b3", "b1", "b2"), snap.Records)
	assert.False(t, snap.IsEmpty())
}

func TestShow_EmptyDateIsIdle(t *testing.T) {
	client := newGatedClient()
	s := NewService(client, logger.NewNop(), nil)

	require.NoError(t, s.Show(context.Background(), ""))

	snap := s.Snapshot()
	assert.Equal(t, StateIdle, snap.State)
	assert.Empty(t, snap.Records)
	assert.Equal(t, 0, client.callCount())
}

func TestShow_EmptyListIsDistinctState(t *testing.T) {
	client := newGatedClient()
	client.set("2025-10-15", []domain.BookingRecord{}, nil, true)

	s := NewService(client, logger.NewNop(), nil)

	done := make(chan error)
	go func() { done <- s.Show(context.Background(), "2025-10-15") }()

	assert.Eventually(t, func() bool { return s.Snapshot().State == StateLoading }, time.Second, 5*time.Millisecond)
	assert.False(t, s.Snapshot().IsEmpty())

	client.release("2025-10-15")
	require.NoError(t, <-done)

	snap := s.Snapshot()
	assert.Equal(t, StateLoaded, snap.State)
	assert.True(t, snap.IsEmpty())
	assert.Empty(t, snap.Error)
}

func TestShow_LoadingKeepsPreviousRecords(t *testing.T) {
	client := newGatedClient()
	client.set("2025-10-15", records("b1"), nil, false)
	client.set("2025-10-16", records("b9"), nil, true)

	s := NewService(client, logger.NewNop(), nil)
	require.NoError(t, s.Show(context.Background(), "2025-10-15"))

	done := make(chan error)
	go func() { done <- s.Show(context.Background(), "2025-10-16") }()

	assert.Eventually(t, func() bool { return s.Snapshot().State == StateLoading }, time.Second, 5*time.Millisecond)
	assert.Equal(t, records("b1"), s.Snapshot().Records)

	client.release("2025-10-16")
	require.NoError(t, <-done)
	assert.Equal(t, records("b9"), s.Snapshot().Records)
}

func TestShow_StaleResponseIsDiscarded(t *testing.T) {
	client := newGatedClient()
	client.set("2025-10-15", records("old"), nil, true)
	client.set("2025-10-16", records("new"), nil, true)

	m := &staleCounter{}
	s := NewService(client, logger.NewNop(), m)

	d1 := make(chan error)
	go func() { d1 <- s.Show(context.Background(), "2025-10-15") }()
	assert.Eventually(t, func() bool { return client.callCount() == 1 }, time.Second, 5*time.Millisecond)

	d2 := make(chan error)
	go func() { d2 <- s.Show(context.Background(), "2025-10-16") }()
	assert.Eventually(t, func() bool { return client.callCount() == 2 }, time.Second, 5*time.Millisecond)

	// D2 приходит первым, D1 позже
	client.release("2025-10-16")
	require.NoError(t, <-d2)
	client.release("2025-10-15")
	require.NoError(t, <-d1)

	snap := s.Snapshot()
	assert.Equal(t, "2025-10-16", snap.Date)
	assert.Equal(t, StateLoaded, snap.State)
	assert.Equal(t, records("new"), snap.Records)
	assert.Equal(t, int32(1), m.stale.Load())
}

func TestShow_StaleErrorIsDiscarded(t *testing.T) {
	client := newGatedClient()
	client.set("2025-10-15", nil, fmt.Errorf("%w: boom", barbershop.ErrUnreachable), true)
	client.set("2025-10-16", records("new"), nil, false)

	s := NewService(client, logger.NewNop(), nil)

	d1 := make(chan error)
	go func() { d1 <- s.Show(context.Background(), "2025-10-15") }()
	assert.Eventually(t, func() bool { return client.callCount() == 1 }, time.Second, 5*time.Millisecond)

	require.NoError(t, s.Show(context.Background(), "2025-10-16"))
	client.release("2025-10-15")
	require.NoError(t, <-d1)

	snap := s.Snapshot()
	assert.Equal(t, StateLoaded, snap.State)
	assert.Empty(t, snap.Error)
	assert.Equal(t, records("new"), snap.Records)
}

func TestShow_ErrorDiscardsRecords(t *testing.T) {
	client := newGatedClient()
	client.set("2025-10-15", records("b1"), nil, false)
	client.set("2025-10-16", nil, &barbershop.StatusError{}, false)

	s := NewService(client, logger.NewNop(), nil)
	require.NoError(t, s.Show(context.Background(), "2025-10-15"))

	err := s.Show(context.Background(), "2025-10-16")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLoadFailed)

	snap := s.Snapshot()
	assert.Equal(t, StateErrored, snap.State)
	assert.Empty(t, snap.Records)
	assert.Equal(t, MsgLoadFailed, snap.Error)
	assert.False(t, snap.IsEmpty())
}

func TestShow_ErrorUsesBackendDetail(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bookings", r.URL.Path)
		assert.Equal(t, "not-a-date", r.URL.Query().Get("date"))
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"detail":"Invalid date"}`)
	}))
	defer ts.Close()

	client := barbershop.NewClient(ts.URL, time.Second, logger.NewNop(), nil)
	s := NewService(client, logger.NewNop(), nil)

	err := s.Show(context.Background(), "not-a-date")
	require.Error(t, err)

	snap := s.Snapshot()
	assert.Equal(t, StateErrored, snap.State)
	assert.Equal(t, "Invalid date", snap.Error)
}

func TestErrorMessage_GenericWithoutDetail(t *testing.T) {
	assert.Equal(t, MsgLoadFailed, errorMessage(fmt.Errorf("%w: x", barbershop.ErrInvalidResponse)))
	assert.Equal(t, MsgLoadFailed, errorMessage(fmt.Errorf("%w: x", barbershop.ErrUnreachable)))
}

func TestRefresh_UsesCurrentDateAndNotifies(t *testing.T) {
	client := newGatedClient()
	client.set("2025-10-15", records("b1"), nil, false)

	s := NewService(client, logger.NewNop(), nil)

	var changes atomic.Int32
	s.OnChange(func() { changes.Add(1) })

	require.NoError(t, s.Show(context.Background(), "2025-10-15"))
	client.set("2025-10-15", records("b1", "b2"), nil, false)
	require.NoError(t, s.Refresh(context.Background()))

	assert.Equal(t, 2, client.callCount())
	assert.Equal(t, records("b1", "b2"), s.Snapshot().Records)
	// loading + loaded на каждый запрос
	assert.Equal(t, int32(4), changes.Load())
}

func TestFetch_SupersededBeforeSendSkipsBackend(t *testing.T) {
	client := newGatedClient()
	client.set("2025-10-15", records("old"), nil, false)
	client.set("2025-10-16", records("new"), nil, false)

	s := NewService(client, logger.NewNop(), nil)

	first := s.Begin("2025-10-15")
	second := s.Begin("2025-10-16")
	assert.Greater(t, second, first)
	assert.Equal(t, "2025-10-16", s.Date())
	assert.Equal(t, StateLoading, s.Snapshot().State)

	require.NoError(t, s.Fetch(context.Background(), second))
	require.NoError(t, s.Fetch(context.Background(), first))

	assert.Equal(t, 1, client.callCount())
	snap := s.Snapshot()
	assert.Equal(t, "2025-10-16", snap.Date)
	assert.Equal(t, records("new"), snap.Records)
}
