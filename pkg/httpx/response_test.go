package httpx_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ghuser/stockroom/pkg/httpx"
)

func TestJSON_setsHeaders(t *testing.T) {
	w := httptest.NewRecorder()
	httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
		t.Errorf("unexpected Content-Type: %q", ct)
	}
	if xct := w.Header().Get("X-Content-Type-Options"); xct != "nosniff" {
		t.Errorf("expected nosniff, got %q", xct)
	}
}

func TestJSONError(t *testing.T) {
	w := httptest.NewRecorder()
	httpx.JSONError(w, http.StatusBadRequest, "customer_name is required")

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if body["error"] != "customer_name is required" {
		t.Errorf("unexpected error message: %q", body["error"])
	}
}

func TestJSONErrorDetails(t *testing.T) {
	w := httptest.NewRecorder()
	httpx.JSONErrorDetails(w, http.StatusBadRequest, "insufficient stock", map[string]any{
		"available": 10,
		"requested": 15,
		"error":     "ignored",
	})

	var body map[string]any
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if body["error"] != "insufficient stock" {
		t.Errorf("error key overridden: %v", body["error"])
	}
	if body["available"] != float64(10) || body["requested"] != float64(15) {
		t.Errorf("unexpected details: %v", body)
	}
}

func TestSafeError(t *testing.T) {
	err := errors.New("pq: relation missing")
	if got := httpx.SafeError(err, http.StatusInternalServerError, true); got != "Internal Server Error" {
		t.Errorf("production 500: got %q", got)
	}
	if got := httpx.SafeError(err, http.StatusInternalServerError, false); got != err.Error() {
		t.Errorf("development 500: got %q", got)
	}
	if got := httpx.SafeError(err, http.StatusBadRequest, true); got != err.Error() {
		t.Errorf("production 400: got %q", got)
	}
}
