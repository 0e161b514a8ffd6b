package v1

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shenikar/dispatch_feed_sync/internal/config"
	"github.com/shenikar/dispatch_feed_sync/internal/models"
	"github.com/shenikar/dispatch_feed_sync/internal/service"
	"github.com/shenikar/dispatch_feed_sync/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var apiKeyHeader = map[string]string{"X-API-Key": "test-api-key"}

// newTestHandler создает новый экземпляр Handler с мокированным сервисом
func newTestHandler(t *testing.T) (*Handler, *mocks.MockFeedService, *gin.Engine) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockFeedService(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		APIKeys: []string{"test-api-key"},
	}

	handler := NewHandler(mockService, logger, cfg)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return handler, mockService, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealthCheck(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, http.MethodGet, "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestReadinessCheck(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{name: "ready", wantCode: http.StatusOK},
		{name: "not ready", err: service.ErrNotReady, wantCode: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, mockService, router := newTestHandler(t)
			mockService.EXPECT().CheckReadiness(gomock.Any()).Return(tt.err)

			w := makeRequest(router, http.MethodGet, "/api/v1/system/ready", nil)

			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}

func TestGetFeedStatus(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	started := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	mockService.EXPECT().Status().Return(models.FeedStatus{
		LastAttempt:     &started,
		LastSuccess:     &started,
		CachedIncidents: 12,
		LastCycle: &models.CycleResult{
			StartedAt:     started,
			Duration:      1500 * time.Millisecond,
			Success:       true,
			LiveCount:     12,
			NewCount:      2,
			KnownCount:    10,
			ResolvedCount: 1,
			Incidents:     models.IncidentResult{Upserted: 12, Resolved: 1, Failed: 0},
			Assigned:      models.UnitResult{Affected: 3, Failed: 1},
			Unassigned:    models.UnitResult{Affected: 2, Skipped: 1},
		},
	})

	w := makeRequest(router, http.MethodGet, "/api/v1/feed/status", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp FeedStatusResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 12, resp.CachedIncidents)
	require.NotNil(t, resp.LastCycle)
	assert.Equal(t, 1.5, resp.LastCycle.DurationSeconds)
	assert.Equal(t, 2, resp.LastCycle.New)
	assert.Equal(t, 1, resp.LastCycle.FailedUnits)
	assert.Equal(t, 1, resp.LastCycle.SkippedUnits)
	assert.Equal(t, 3, resp.LastCycle.UnitsAssigned)
}

func TestGetFeedStatus_BeforeFirstCycle(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().Status().Return(models.FeedStatus{})

	w := makeRequest(router, http.MethodGet, "/api/v1/feed/status", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"cached_incidents":0}`, w.Body.String())
}

func TestListFeedRequests_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	count := 4
	expected := []*models.FeedRequest{
		{ID: uuid.New(), RequestedAt: time.Now().UTC(), ExecutionTime: 250 * time.Millisecond, Success: true, Parser: "arcgis", Incidents: &count},
		{ID: uuid.New(), RequestedAt: time.Now().UTC(), Success: false, Parser: "arcgis", Message: "timeout"},
	}
	mockService.EXPECT().RecentRequests(gomock.Any(), 10).Return(expected, nil)

	w := makeRequest(router, http.MethodGet, "/api/v1/feed/requests?limit=10", nil, apiKeyHeader)
	require.Equal(t, http.StatusOK, w.Code)

	var resp []FeedRequestResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, expected[0].ID, resp[0].ID)
	assert.Equal(t, 0.25, resp[0].ExecutionSeconds)
	assert.Equal(t, "timeout", resp[1].Message)
}

func TestListFeedRequests_DefaultLimit(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().RecentRequests(gomock.Any(), defaultRequestsLimit).Return([]*models.FeedRequest{}, nil)

	w := makeRequest(router, http.MethodGet, "/api/v1/feed/requests", nil, apiKeyHeader)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestListFeedRequests_InvalidLimit(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{name: "not a number", url: "/api/v1/feed/requests?limit=abc"},
		{name: "too large", url: "/api/v1/feed/requests?limit=1000"},
		{name: "negative", url: "/api/v1/feed/requests?limit=-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, mockService, router := newTestHandler(t)
			mockService.EXPECT().RecentRequests(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

			w := makeRequest(router, http.MethodGet, tt.url, nil, apiKeyHeader)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestListFeedRequests_ServiceError(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().RecentRequests(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

	w := makeRequest(router, http.MethodGet, "/api/v1/feed/requests", nil, apiKeyHeader)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestResolveStale(t *testing.T) {
	tests := []struct {
		name     string
		result   models.ResolveResult
		err      error
		wantCode int
		wantBody string
	}{
		{name: "success", result: models.ResolveResult{Incidents: 3, Units: 7}, wantCode: http.StatusOK, wantBody: `{"incidents":3,"units":7}`},
		{name: "in progress", err: service.ErrPassInProgress, wantCode: http.StatusConflict, wantBody: `{"error":"resolver pass already in progress"}`},
		{name: "disabled", err: service.ErrResolverDisabled, wantCode: http.StatusServiceUnavailable, wantBody: `{"error":"resolver is disabled"}`},
		{name: "storage error", err: errors.New("deadlock"), wantCode: http.StatusInternalServerError, wantBody: `{"error":"internal server error"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, mockService, router := newTestHandler(t)
			mockService.EXPECT().ResolveStale(gomock.Any()).Return(tt.result, tt.err)

			w := makeRequest(router, http.MethodPost, "/api/v1/feed/resolve-stale", nil, apiKeyHeader)

			assert.Equal(t, tt.wantCode, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestAPIKeyAuth(t *testing.T) {
	tests := []struct {
		name     string
		headers  map[string]string
		wantCode int
		wantBody string
	}{
		{name: "missing key", headers: map[string]string{}, wantCode: http.StatusUnauthorized, wantBody: "API key required"},
		{name: "invalid key", headers: map[string]string{"X-API-Key": "wrong"}, wantCode: http.StatusUnauthorized, wantBody: "Invalid API key"},
		{name: "bearer token", headers: map[string]string{"Authorization": "Bearer test-api-key"}, wantCode: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, mockService, router := newTestHandler(t)
			if tt.wantCode == http.StatusOK {
				mockService.EXPECT().ResolveStale(gomock.Any()).Return(models.ResolveResult{}, nil)
			}

			w := makeRequest(router, http.MethodPost, "/api/v1/feed/resolve-stale", nil, tt.headers)

			assert.Equal(t, tt.wantCode, w.Code)
			if tt.wantBody != "" {
				assert.Contains(t, w.Body.String(), tt.wantBody)
			}
		})
	}
}
