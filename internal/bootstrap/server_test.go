package bootstrap

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Domenick1991/bookingservice/config"
	"github.com/Domenick1991/bookingservice/internal/repository"
	"github.com/Domenick1991/bookingservice/internal/service/booking"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(swagger bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{HTTP: config.HTTPConfig{Swagger: swagger}}
	return NewRouter(cfg, booking.NewBookingService(repository.NewBookingRepository()))
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestNewRouter_Health(t *testing.T) {
	w := get(newTestRouter(false), "/healthz")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestNewRouter_BookingRoutes(t *testing.T) {
	r := newTestRouter(false)

	w := get(r, "/bookingservice/bookings/currencies")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = get(r, "/bookingservice/sum/USD")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "0", w.Body.String())
}

func TestNewRouter_Docs(t *testing.T) {
	w := get(newTestRouter(true), "/docs/openapi.json")
	require.Equal(t, http.StatusOK, w.Code)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	paths, ok := doc["paths"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, paths, "/bookingservice/bookings")
	assert.Contains(t, paths, "/bookingservice/sum/{currency}")

	w = get(newTestRouter(true), "/swagger/index.html")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestNewRouter_DocsDisabled(t *testing.T) {
	w := get(newTestRouter(false), "/docs/openapi.json")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestNewServers(t *testing.T) {
	cfg := &config.Config{HTTP: config.HTTPConfig{Address: ":0"}}
	s := newServers(cfg, booking.NewBookingService(repository.NewBookingRepository()))

	assert.NotNil(t, s.grpcServer)
	assert.Equal(t, ":0", s.httpServer.Addr)
	info := s.grpcServer.GetServiceInfo()
	assert.Contains(t, info, "bookingservice.v1.BookingService")
}
