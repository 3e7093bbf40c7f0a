package home_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mahmudul-dev/bloodlink/internal/app/features/home"
	"go.uber.org/zap"
)

func TestServe(t *testing.T) {
	handler := home.NewHandler(zap.NewNop())

	req := httptest.NewRequest("GET", "/", nil)
	rec := httptest.NewRecorder()

	handler.Serve(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	if got := rec.Body.String(); got != "Blood Connection Successfully Complete" {
		t.Errorf("body: got %q", got)
	}
}
