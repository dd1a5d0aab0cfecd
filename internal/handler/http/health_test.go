package http_test

import (
	"context"
	"encoding/json"
	"errors"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	handler "github.com/calebmoores/content-dashboard/internal/handler/http"
)

type stubPinger struct {
	err error
}

func (p stubPinger) Ping(context.Context) error { return p.err }

func TestHealthHandler_Healthy(t *testing.T) {
	h := handler.HealthHandler{Store: stubPinger{}, Version: "1.2.3"}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(nethttp.MethodGet, "/healthz", nil))

	if rec.Code != nethttp.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp handler.HealthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Status != "healthy" {
		t.Errorf("status = %q, want healthy", resp.Status)
	}
	if resp.Version != "1.2.3" {
		t.Errorf("version = %q, want 1.2.3", resp.Version)
	}
	if resp.Checks["store"].Status != "healthy" {
		t.Errorf("store check = %+v, want healthy", resp.Checks["store"])
	}
}

func TestHealthHandler_StoreDown(t *testing.T) {
	h := handler.HealthHandler{Store: stubPinger{err: errors.New("disk gone")}, Version: "dev"}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(nethttp.MethodGet, "/healthz", nil))

	if rec.Code != nethttp.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}

	var resp handler.HealthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Status != "unhealthy" {
		t.Errorf("status = %q, want unhealthy", resp.Status)
	}
	if resp.Checks["store"].Message != "disk gone" {
		t.Errorf("store message = %q", resp.Checks["store"].Message)
	}
}

func TestHealthHandler_NoStore(t *testing.T) {
	h := handler.HealthHandler{Version: "dev"}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(nethttp.MethodGet, "/healthz", nil))

	if rec.Code != nethttp.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}
}
