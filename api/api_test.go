package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"viralagent/auth"
	"viralagent/types"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeRunner struct {
	summary *types.RunSummary
	err     error
	calls   int
}

func (f *fakeRunner) Run(ctx context.Context) (*types.RunSummary, error) {
	f.calls++
	return f.summary, f.err
}

func newTestRouter(runner Runner) *gin.Engine {
	return NewRouter(runner, auth.NewMemoryStore(time.Minute))
}

func TestHealthEndpoint(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	newTestRouter(&fakeRunner{}).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("status field = %q", body["status"])
	}
	if _, err := time.Parse(time.RFC3339, body["time"]); err != nil {
		t.Errorf("time field %q is not RFC3339: %v", body["time"], err)
	}
}

func TestAutomationRunSuccess(t *testing.T) {
	runner := &fakeRunner{summary: &types.RunSummary{RunID: "run-1", Product: "Gadget"}}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/automation/run", nil)
	newTestRouter(runner).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if runner.calls != 1 {
		t.Errorf("runner calls = %d", runner.calls)
	}

	var body struct {
		Status string           `json:"status"`
		Result types.RunSummary `json:"result"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Status != "success" || body.Result.RunID != "run-1" {
		t.Errorf("body = %+v", body)
	}
}

func TestAutomationRunFailure(t *testing.T) {
	runner := &fakeRunner{err: errors.New("no products found for today's niche")}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/automation/run", nil)
	newTestRouter(runner).ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "no products") {
		t.Errorf("body = %s", w.Body.String())
	}
}

func TestCronTriggerGatedInProduction(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("CRON_SECRET", "topsecret")
	runner := &fakeRunner{summary: &types.RunSummary{RunID: "run-1"}}
	router := newTestRouter(runner)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/automation/run", nil)
	router.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status without header = %d", w.Code)
	}
	if runner.calls != 0 {
		t.Error("runner executed without authorization")
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/automation/run", nil)
	req.Header.Set("X-Cron-Trigger", "topsecret")
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status with header = %d", w.Code)
	}
}

func TestCronTriggerRequiresConfiguredSecret(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("CRON_SECRET", "")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/automation/run", nil)
	req.Header.Set("X-Cron-Trigger", "")
	newTestRouter(&fakeRunner{}).ServeHTTP(w, req)

	// An unset secret must never authorize, even with a matching empty header.
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestCronTriggerOpenOutsideProduction(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	runner := &fakeRunner{summary: &types.RunSummary{RunID: "run-1"}}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/automation/run", nil)
	newTestRouter(runner).ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestAuthStartRedirects(t *testing.T) {
	t.Setenv("TIKTOK_CLIENT_KEY", "client-key-1")
	t.Setenv("TIKTOK_REDIRECT_BASE_URL", "https://app.example.com")

	store := auth.NewMemoryStore(time.Minute)
	router := NewRouter(&fakeRunner{}, store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/tiktok", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusFound {
		t.Fatalf("status = %d", w.Code)
	}

	loc, err := url.Parse(w.Header().Get("Location"))
	if err != nil {
		t.Fatalf("location parse: %v", err)
	}
	q := loc.Query()
	if q.Get("client_key") != "client-key-1" {
		t.Errorf("client_key = %q", q.Get("client_key"))
	}
	if q.Get("code_challenge_method") != "S256" {
		t.Errorf("code_challenge_method = %q", q.Get("code_challenge_method"))
	}
	if q.Get("redirect_uri") != "https://app.example.com/api/auth/tiktok/callback" {
		t.Errorf("redirect_uri = %q", q.Get("redirect_uri"))
	}
	state := q.Get("state")
	if state == "" {
		t.Fatal("redirect carries no state")
	}

	// The verifier for this state must be claimable and must hash to the
	// challenge sent in the redirect.
	verifier, ok, err := store.Take(context.Background(), state)
	if err != nil || !ok {
		t.Fatalf("Take(%q) = (%v, %v)", state, ok, err)
	}
	if auth.Challenge(verifier) != q.Get("code_challenge") {
		t.Error("code_challenge does not match the stored verifier")
	}
}

func TestAuthStartWithoutClientKey(t *testing.T) {
	t.Setenv("TIKTOK_CLIENT_KEY", "")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/tiktok", nil)
	newTestRouter(&fakeRunner{}).ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestAuthCallbackUnknownState(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/tiktok/callback?code=abc&state=never-issued", nil)
	newTestRouter(&fakeRunner{}).ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "unknown or expired") {
		t.Errorf("body = %s", w.Body.String())
	}
}

func TestAuthCallbackMissingParams(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/tiktok/callback", nil)
	newTestRouter(&fakeRunner{}).ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestAuthDebugEchoesRedirectURI(t *testing.T) {
	t.Setenv("TIKTOK_REDIRECT_BASE_URL", "")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/debug", nil)
	req.Host = "agent.example.com"
	req.Header.Set("X-Forwarded-Proto", "https")
	newTestRouter(&fakeRunner{}).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "https://agent.example.com/api/auth/tiktok/callback") {
		t.Errorf("body = %s", w.Body.String())
	}
}
