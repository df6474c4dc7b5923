package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vango/internal/models"
	"vango/internal/pricing"
	"vango/internal/services"
	"vango/internal/utils"
	"vango/pkg/logger"
)

type stubCache struct {
	entries map[string][]byte
}

func (s *stubCache) Get(ctx context.Context, key string, dest interface{}) error {
	data, ok := s.entries[key]
	if !ok {
		return services.ErrQuoteNotFound
	}
	return json.Unmarshal(data, dest)
}

func (s *stubCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	s.entries[key] = data
	return nil
}

func (s *stubCache) Delete(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		delete(s.entries, key)
	}
	return nil
}

func (s *stubCache) Exists(ctx context.Context, key string) (bool, error) {
	_, ok := s.entries[key]
	return ok, nil
}

func (s *stubCache) GetTTL(ctx context.Context, key string) (time.Duration, error) {
	return time.Minute, nil
}

func newQuoteRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log, err := logger.NewLogger(&logger.Config{Level: logger.ErrorLevel, Format: "text"})
	require.NoError(t, err)

	cfg := pricing.DefaultConfig()
	quoteService := services.NewQuoteService(&cfg, nil, &stubCache{entries: make(map[string][]byte)}, log, utils.QuoteTTL)
	handler := NewQuoteHandler(quoteService)

	r := gin.New()
	r.POST("/api/v1/quotes", handler.CreateQuote)
	r.GET("/api/v1/quotes/:ref", handler.GetQuote)
	return r
}

func postQuote(t *testing.T, r *gin.Engine, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/quotes", bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateQuoteEndpoint(t *testing.T) {
	r := newQuoteRouter(t)

	w := postQuote(t, r, models.QuoteRequest{
		PickupAddress:   "12 Oldham Road, Manchester",
		DeliveryAddress: "4 Mill Lane, Stockport",
		DistanceMiles:   10,
		VanSize:         "medium",
		MoveDate:        "2026-03-04T10:00",
		EstimatedHours:  2,
	})

	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Status string       `json:"status"`
		Data   models.Quote `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
	assert.NotEmpty(t, resp.Data.Reference)
	assert.Greater(t, resp.Data.Breakdown.Total, 0.0)
	assert.Equal(t, "GBP", resp.Data.Breakdown.Currency)
}

func TestCreateQuoteEndpoint_ValidationFailure(t *testing.T) {
	r := newQuoteRouter(t)

	w := postQuote(t, r, models.QuoteRequest{
		DeliveryAddress: "4 Mill Lane, Stockport",
		DistanceMiles:   10,
		MoveDate:        "2026-03-04",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Status string `json:"status"`
		Error  struct {
			Code    string            `json:"code"`
			Details map[string]string `json:"details"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
	assert.Contains(t, resp.Error.Details, "PickupAddress")
}

func TestGetQuoteEndpoint_RoundTrip(t *testing.T) {
	r := newQuoteRouter(t)

	w := postQuote(t, r, models.QuoteRequest{
		PickupAddress:   "1 High Street, London",
		DeliveryAddress: "2 Park Road, Croydon",
		DistanceMiles:   12,
		MoveDate:        "2026-03-04T10:00",
		EstimatedHours:  3,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		Data models.Quote `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/quotes/"+created.Data.Reference, nil)
	got := httptest.NewRecorder()
	r.ServeHTTP(got, req)

	require.Equal(t, http.StatusOK, got.Code)

	var fetched struct {
		Data models.Quote `json:"data"`
	}
	require.NoError(t, json.Unmarshal(got.Body.Bytes(), &fetched))
	assert.Equal(t, created.Data.Breakdown.Total, fetched.Data.Breakdown.Total)
}

func TestGetQuoteEndpoint_NotFound(t *testing.T) {
	r := newQuoteRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/quotes/unknown", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
