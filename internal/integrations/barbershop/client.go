package barbershop

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberFrontDesk/internal/domain"
)

// Операции бэкенда, используются как метки метрик и в логах
const (
	OpListServices  = "list_services"
	OpListBarbers   = "list_barbers"
	OpSeed          = "seed"
	OpCreateBooking = "create_booking"
	OpListBookings  = "list_bookings"
)

const requestIDHeader = "X-Request-ID"

// ErrNotAList возвращается, когда вместо JSON массива пришло другое корректное JSON значение
var ErrNotAList = fmt.Errorf("%w: expected a JSON array", ErrInvalidResponse)

// Client клиент для работы с бэкендом барбершопа
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
	metrics    Metrics
}

// NewClient создает новый экземпляр клиента бэкенда
func NewClient(baseURL string, timeout time.Duration, log Logger, metrics Metrics) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log:     log,
		metrics: metrics,
	}
}

// ListServices получает список услуг (GET /services)
func (c *Client) ListServices(ctx context.Context) ([]domain.Service, error) {
	status, body, err := c.do(ctx, OpListServices, http.MethodGet, "/services", nil)
	if err != nil {
		return nil, err
	}
	if err := checkStatus(OpListServices, status, body, ErrUnexpectedStatus); err != nil {
		return nil, err
	}
	return decodeList[domain.Service](body)
}

// ListBarbers получает список мастеров (GET /barbers)
func (c *Client) ListBarbers(ctx context.Context) ([]domain.Barber, error) {
	status, body, err := c.do(ctx, OpListBarbers, http.MethodGet, "/barbers", nil)
	if err != nil {
		return nil, err
	}
	if err := checkStatus(OpListBarbers, status, body, ErrUnexpectedStatus); err != nil {
		return nil, err
	}
	return decodeList[domain.Barber](body)
}

// Seed просит бэкенд заполнить каталог данными по умолчанию (POST /seed без тела)
func (c *Client) Seed(ctx context.Context) error {
	status, body, err := c.do(ctx, OpSeed, http.MethodPost, "/seed", nil)
	if err != nil {
		return err
	}
	return checkStatus(OpSeed, status, body, ErrUnexpectedStatus)
}

// CreateBooking отправляет запись (POST /book)
// Тело ответа разбирается как JSON при любом статусе: в ошибке бэкенд кладет detail
func (c *Client) CreateBooking(ctx context.Context, payload BookingPayload) (*BookingConfirmation, error) {
	status, body, err := c.do(ctx, OpCreateBooking, http.MethodPost, "/book", payload)
	if err != nil {
		return nil, err
	}

	if !json.Valid(body) {
		return nil, fmt.Errorf("%w: %s returned %d with non-JSON body", ErrInvalidResponse, OpCreateBooking, status)
	}

	if err := checkStatus(OpCreateBooking, status, body, ErrBookingRejected); err != nil {
		return nil, err
	}

	confirmation := &BookingConfirmation{}
	// Подтверждение может быть не объектом, тогда id и status остаются пустыми
	_ = json.Unmarshal(body, confirmation)

	return confirmation, nil
}

// ListBookings получает записи на дату (GET /bookings?date=YYYY-MM-DD)
func (c *Client) ListBookings(ctx context.Context, date string) ([]domain.BookingRecord, error) {
	path := "/bookings?date=" + url.QueryEscape(date)

	status, body, err := c.do(ctx, OpListBookings, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	if err := checkStatus(OpListBookings, status, body, ErrUnexpectedStatus); err != nil {
		return nil, err
	}
	return decodeList[domain.BookingRecord](body)
}

// do выполняет запрос и возвращает статус и тело ответа
// Ошибка возвращается только при сбое транспорта или чтения тела
func (c *Client) do(ctx context.Context, op, method, path string, payload interface{}) (int, []byte, error) {
	started := time.Now()
	outcome := "ok"
	defer func() {
		if c.metrics != nil {
			c.metrics.ObserveBackendCall(op, outcome, time.Since(started).Seconds())
		}
	}()

	var reqBody io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			outcome = "internal"
			return 0, nil, fmt.Errorf("%w: failed to encode %s payload: %v", ErrInternal, op, err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		outcome = "internal"
		return 0, nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	requestID := uuid.NewString()
	req.Header.Set(requestIDHeader, requestID)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		outcome = "unreachable"
		c.log.Warn("Backend %s %s failed, request_id=%s: %v", method, path, requestID, err)
		return 0, nil, fmt.Errorf("%w: %s: %v", ErrUnreachable, op, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		outcome = "unreachable"
		return 0, nil, fmt.Errorf("%w: %s: failed to read response: %v", ErrUnreachable, op, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		outcome = fmt.Sprintf("status_%dxx", resp.StatusCode/100)
	}

	c.log.Debug("Backend %s %s -> %d, request_id=%s, took=%s",
		method, path, resp.StatusCode, requestID, time.Since(started))

	return resp.StatusCode, body, nil
}

// checkStatus превращает не-2xx ответ в *StatusError с нужным видом ошибки
func checkStatus(op string, status int, body []byte, kind error) error {
	if status >= 200 && status <= 299 {
		return nil
	}

	var errResp ErrorResponse
	_ = json.Unmarshal(body, &errResp)

	return &StatusError{
		Operation:  op,
		StatusCode: status,
		Detail:     errResp.Message(),
		kind:       kind,
	}
}

// decodeList разбирает JSON массив; null считается пустым списком
func decodeList[T any](body []byte) ([]T, error) {
	trimmed := bytes.TrimSpace(body)
	if !json.Valid(trimmed) {
		return nil, fmt.Errorf("%w: malformed JSON", ErrInvalidResponse)
	}

	if len(trimmed) == 0 || (trimmed[0] != '[' && !bytes.Equal(trimmed, []byte("null"))) {
		return nil, ErrNotAList
	}

	var items []T
	if err := json.Unmarshal(trimmed, &items); err != nil {
		return nil, fmt.Errorf("%w: unexpected item shape: %v", ErrInvalidResponse, err)
	}

	if items == nil {
		items = []T{}
	}

	return items, nil
}
