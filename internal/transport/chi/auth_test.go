package chi

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func authHandler(apiKeys []string) http.Handler {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return BearerAuthMiddleware(apiKeys)(next)
}

func TestBearerAuth_Disabled(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/v1/plan", http.NoBody)
	rec := httptest.NewRecorder()
	authHandler(nil).ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("auth must be disabled without keys, got %d", rec.Code)
	}
}

func TestBearerAuth_ValidToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/v1/plan", http.NoBody)
	req.Header.Set("Authorization", "Bearer secret")
	rec := httptest.NewRecorder()
	authHandler([]string{"secret"}).ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}

func TestBearerAuth_InvalidToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/v1/plan", http.NoBody)
	req.Header.Set("Authorization", "Bearer wrong")
	rec := httptest.NewRecorder()
	authHandler([]string{"secret"}).ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestBearerAuth_MissingHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/v1/plan", http.NoBody)
	rec := httptest.NewRecorder()
	authHandler([]string{"secret"}).ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestBearerAuth_ExemptPaths(t *testing.T) {
	for _, path := range []string{"/health", "/metrics"} {
		req := httptest.NewRequest(http.MethodGet, path, http.NoBody)
		rec := httptest.NewRecorder()
		authHandler([]string{"secret"}).ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Errorf("%s must be exempt, got %d", path, rec.Code)
		}
	}
}

func TestBearerAuth_NonBearerScheme(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/v1/plan", http.NoBody)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	rec := httptest.NewRecorder()
	authHandler([]string{"secret"}).ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}
