package wire

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"booking-widget/internal/dto/response"
	"booking-widget/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type envelope struct {
	Status  bool                      `json:"status"`
	Message string                    `json:"message"`
	Data    *response.BookingResponse `json:"data"`
	Errors  map[string]string         `json:"errors"`
}

func newTestApp(t *testing.T) *App {
	t.Helper()
	return Wiring(nil, &utils.Config{}, zap.NewNop())
}

func do(t *testing.T, h http.Handler, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}
	return rec, env
}

func TestRouter_BookingFlow(t *testing.T) {
	app := newTestApp(t)

	rec, env := do(t, app.Router, http.MethodGet, "/api/booking", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Status)
	assert.Equal(t, &response.BookingResponse{}, env.Data)

	rec, env = do(t, app.Router, http.MethodPatch, "/api/booking", `{"date":"2024-06-01","service":"haircut"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "2024-06-01", *env.Data.Date)
	assert.Nil(t, env.Data.Time)
	assert.Equal(t, "haircut", *env.Data.Service)
	assert.False(t, env.Data.Confirmed)

	rec, env = do(t, app.Router, http.MethodPost, "/api/booking/confirm", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Data.Confirmed)
	assert.Equal(t, "haircut", *env.Data.Service)

	assert.True(t, app.Store.Booking().Confirmed)
}

func TestRouter_PatchNullClears(t *testing.T) {
	app := newTestApp(t)

	do(t, app.Router, http.MethodPatch, "/api/booking", `{"time":"14:30","service":"nails"}`)
	rec, env := do(t, app.Router, http.MethodPatch, "/api/booking", `{"service":null}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "14:30", *env.Data.Time)
	assert.Nil(t, env.Data.Service)
}

func TestRouter_PatchInvalidBody(t *testing.T) {
	app := newTestApp(t)

	rec, env := do(t, app.Router, http.MethodPatch, "/api/booking", `{"date":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, env.Status)
	assert.Equal(t, "Invalid request body", env.Message)
}

func TestRouter_PatchValidationFailed(t *testing.T) {
	app := newTestApp(t)

	rec, env := do(t, app.Router, http.MethodPatch, "/api/booking", `{"date":"June 1","time":"25:99"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, env.Errors, "Date")
	assert.Contains(t, env.Errors, "Time")
	assert.Nil(t, app.Store.Booking().Date)
}

func TestRouter_ConfirmedCannotBeReset(t *testing.T) {
	app := newTestApp(t)

	do(t, app.Router, http.MethodPost, "/api/booking/confirm", "")
	rec, env := do(t, app.Router, http.MethodPatch, "/api/booking", `{"confirmed":false}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Data.Confirmed)
}

func TestRouter_RequestIDHeader(t *testing.T) {
	app := newTestApp(t)

	rec, _ := do(t, app.Router, http.MethodGet, "/api/booking", "")

	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestRouter_HealthAndMetrics(t *testing.T) {
	app := newTestApp(t)

	rec, _ := do(t, app.Router, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())

	do(t, app.Router, http.MethodPost, "/api/booking/confirm", "")

	rec, _ = do(t, app.Router, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `booking_mutations_total{mutation="confirmBooking"}`)
	assert.Contains(t, rec.Body.String(), "booking_confirmations_total")
}

func TestRouter_NotFoundAndMethodNotAllowed(t *testing.T) {
	app := newTestApp(t)

	rec, env := do(t, app.Router, http.MethodGet, "/api/unknown", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, env.Status)

	rec, _ = do(t, app.Router, http.MethodDelete, "/api/booking", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
