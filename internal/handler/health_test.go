package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type MockHealthChecker struct {
	PingFunc func(ctx context.Context) error
}

func (m *MockHealthChecker) Ping(ctx context.Context) error {
	if m.PingFunc != nil {
		return m.PingFunc(ctx)
	}
	return nil // Default: healthy
}

func TestHealth(t *testing.T) {
	h := &Handler{health: &MockHealthChecker{}}

	req := httptest.NewRequest(http.MethodGet, "/v1/healthz", nil)
	rr := httptest.NewRecorder()

	h.Health(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "ok", rr.Body.String())
}

func TestReady(t *testing.T) {
	t.Run("200 when the database answers", func(t *testing.T) {
		h := &Handler{health: &MockHealthChecker{}}

		req := httptest.NewRequest(http.MethodGet, "/v1/readyz", nil)
		rr := httptest.NewRecorder()

		h.Ready(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "ok", rr.Body.String())
	})

	t.Run("503 when the database is down", func(t *testing.T) {
		h := &Handler{health: &MockHealthChecker{
			PingFunc: func(ctx context.Context) error {
				return errors.New("connection refused")
			},
		}}

		req := httptest.NewRequest(http.MethodGet, "/v1/readyz", nil)
		rr := httptest.NewRecorder()

		h.Ready(rr, req)

		assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
		assert.Equal(t, "database unavailable", rr.Body.String())
	})

	t.Run("ping runs under a deadline", func(t *testing.T) {
		var hasDeadline bool
		h := &Handler{health: &MockHealthChecker{
			PingFunc: func(ctx context.Context) error {
				_, hasDeadline = ctx.Deadline()
				return nil
			},
		}}

		req := httptest.NewRequest(http.MethodGet, "/v1/readyz", nil)
		rr := httptest.NewRecorder()

		h.Ready(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.True(t, hasDeadline, "ping context should carry a deadline")
	})

	t.Run("timed-out ping reads as unavailable", func(t *testing.T) {
		h := &Handler{health: &MockHealthChecker{
			PingFunc: func(ctx context.Context) error {
				return context.DeadlineExceeded
			},
		}}

		req := httptest.NewRequest(http.MethodGet, "/v1/readyz", nil)
		rr := httptest.NewRecorder()

		h.Ready(rr, req)

		assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
		assert.Equal(t, "database unavailable", rr.Body.String())
	})
}
