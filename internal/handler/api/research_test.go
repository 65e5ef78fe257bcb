package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"GemScout/internal/catalog"
	"GemScout/internal/domain/models"
	"GemScout/internal/service/credentials"
	"GemScout/internal/store"
	"GemScout/internal/usecase"
	xhttp "GemScout/pkg/http"
	"GemScout/pkg/logger"
)

type fakeAnalyzer struct {
	analysisFn func(inst models.Instrument) (*models.AnalysisResult, error)
	pulseFn    func(inst models.Instrument) (string, error)
}

func (f *fakeAnalyzer) RequestAnalysis(_ context.Context, _ string, inst models.Instrument) (*models.AnalysisResult, error) {
	if f.analysisFn != nil {
		return f.analysisFn(inst)
	}
	return &models.AnalysisResult{
		ReportBody:   "# Report",
		Verdict:      models.VerdictGem,
		Confidence:   90,
		SubjectLabel: inst.Symbol + " - Resolved",
	}, nil
}

func (f *fakeAnalyzer) RequestMarketPulse(_ context.Context, _ string, inst models.Instrument) (string, error) {
	if f.pulseFn != nil {
		return f.pulseFn(inst)
	}
	return "pulse", nil
}

type fakeMetrics struct{}

func (fakeMetrics) RecordRun(string)                 {}
func (fakeMetrics) RecordVerdict(string)             {}
func (fakeMetrics) RecordFailure(string)             {}
func (fakeMetrics) RecordRunDuration(string, float64) {}
func (fakeMetrics) RecordWatchlistSize(int)          {}

func newTestServer(t *testing.T, analyzer *fakeAnalyzer, fallbackKey string) *echo.Echo {
	t.Helper()

	log := logger.NewNop()
	st, err := store.NewBoltStore(filepath.Join(t.TempDir(), "state.db"), log)
	if err != nil {
		t.Fatalf("store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	cat, err := catalog.New(log)
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}

	o, err := usecase.New(analyzer, st, cat, credentials.NewResolver(fallbackKey), fakeMetrics{}, log)
	if err != nil {
		t.Fatalf("orchestrator: %v", err)
	}

	e := echo.New()
	NewResearchHandler(log, o, cat).RegisterRoutes(e)
	return e
}

func doJSON(t *testing.T, e *echo.Echo, method, path, body string) (*httptest.ResponseRecorder, xhttp.APIResponse) {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("{}")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var env xhttp.APIResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("%s %s: response is not an API envelope: %v\n%s", method, path, err, rec.Body.String())
	}
	return rec, env
}

func TestCatalogEndpoints(t *testing.T) {
	e := newTestServer(t, &fakeAnalyzer{}, "fallback-key")

	_, env := doJSON(t, e, http.MethodGet, "/api/catalog", "")
	if env.Status != http.StatusOK {
		t.Errorf("catalog status = %d", env.Status)
	}
	instruments, ok := env.Data.([]interface{})
	if !ok || len(instruments) == 0 {
		t.Errorf("catalog data = %v", env.Data)
	}

	_, env = doJSON(t, e, http.MethodGet, "/api/catalog/search?q=LUCK", "")
	if env.Status != http.StatusOK {
		t.Errorf("search status = %d", env.Status)
	}

	_, env = doJSON(t, e, http.MethodGet, "/api/catalog/sectors", "")
	if env.Status != http.StatusOK {
		t.Errorf("sectors status = %d", env.Status)
	}
}

func TestSearchRequiresQuery(t *testing.T) {
	e := newTestServer(t, &fakeAnalyzer{}, "fallback-key")

	_, env := doJSON(t, e, http.MethodGet, "/api/catalog/search", "")
	if env.Status != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 for missing q", env.Status)
	}
}

func TestSelectThenAnalyzeFlow(t *testing.T) {
	e := newTestServer(t, &fakeAnalyzer{}, "fallback-key")

	_, env := doJSON(t, e, http.MethodPost, "/api/select", `{"symbol":"LUCK"}`)
	if env.Status != http.StatusOK {
		t.Fatalf("select status = %d: %+v", env.Status, env)
	}

	_, env = doJSON(t, e, http.MethodPost, "/api/analyze", "")
	if env.Status != http.StatusOK {
		t.Fatalf("analyze status = %d: %+v", env.Status, env)
	}

	state := env.Data.(map[string]interface{})
	if state["status"] != string(models.StatusCompleted) {
		t.Errorf("run status = %v, want COMPLETED", state["status"])
	}
	if state["result"] == nil {
		t.Errorf("analyze response carries no result")
	}
}

func TestAnalyzeWithoutSelection(t *testing.T) {
	e := newTestServer(t, &fakeAnalyzer{}, "fallback-key")

	_, env := doJSON(t, e, http.MethodPost, "/api/analyze", "")
	if env.Status != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", env.Status)
	}
	if !strings.Contains(envErrorCodes(t, env), "ERR_NO_SELECTION") {
		t.Errorf("error codes %q missing ERR_NO_SELECTION", envErrorCodes(t, env))
	}
}

func TestAnalyzeWithoutCredential(t *testing.T) {
	e := newTestServer(t, &fakeAnalyzer{}, "")

	doJSON(t, e, http.MethodPost, "/api/select", `{"symbol":"LUCK"}`)
	_, env := doJSON(t, e, http.MethodPost, "/api/analyze", "")
	if env.Status != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", env.Status)
	}
	if !strings.Contains(envErrorCodes(t, env), "ERR_NEED_CREDENTIAL") {
		t.Errorf("error codes %q missing ERR_NEED_CREDENTIAL", envErrorCodes(t, env))
	}
}

func TestAnalyzeUpstreamFailure(t *testing.T) {
	analyzer := &fakeAnalyzer{
		pulseFn: func(models.Instrument) (string, error) {
			return "", &models.TransportError{Op: "market pulse", Err: context.DeadlineExceeded}
		},
	}
	e := newTestServer(t, analyzer, "fallback-key")

	doJSON(t, e, http.MethodPost, "/api/select", `{"symbol":"LUCK"}`)
	_, env := doJSON(t, e, http.MethodPost, "/api/analyze", "")
	if env.Status != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", env.Status)
	}
	if !strings.Contains(envErrorCodes(t, env), "ERR_UPSTREAM") {
		t.Errorf("error codes %q missing ERR_UPSTREAM", envErrorCodes(t, env))
	}
}

func TestSelectValidation(t *testing.T) {
	e := newTestServer(t, &fakeAnalyzer{}, "fallback-key")

	_, env := doJSON(t, e, http.MethodPost, "/api/select", `{"slot":"tertiary","symbol":"LUCK"}`)
	if env.Status != http.StatusBadRequest {
		t.Errorf("bad slot status = %d, want 400", env.Status)
	}

	_, env = doJSON(t, e, http.MethodPost, "/api/select", `{}`)
	if env.Status != http.StatusBadRequest {
		t.Errorf("missing symbol status = %d, want 400", env.Status)
	}
}

func TestWatchlistLifecycle(t *testing.T) {
	e := newTestServer(t, &fakeAnalyzer{}, "fallback-key")

	doJSON(t, e, http.MethodPost, "/api/select", `{"symbol":"LUCK"}`)
	doJSON(t, e, http.MethodPost, "/api/analyze", "")

	_, env := doJSON(t, e, http.MethodPost, "/api/watchlist", "")
	if env.Status != http.StatusOK {
		t.Fatalf("save status = %d", env.Status)
	}
	entries := env.Data.([]interface{})
	if len(entries) != 1 {
		t.Fatalf("watchlist = %v, want 1 entry", entries)
	}

	// Duplicate save stays a 200 no-op.
	_, env = doJSON(t, e, http.MethodPost, "/api/watchlist", "")
	if env.Status != http.StatusOK || len(env.Data.([]interface{})) != 1 {
		t.Errorf("duplicate save changed the list: %+v", env)
	}

	id := entries[0].(map[string]interface{})["id"].(string)
	_, env = doJSON(t, e, http.MethodPost, "/api/watchlist/"+escapePath(id)+"/open", "")
	if env.Status != http.StatusOK {
		t.Errorf("open status = %d", env.Status)
	}

	_, env = doJSON(t, e, http.MethodDelete, "/api/watchlist/"+escapePath(id), "")
	if env.Status != http.StatusOK || len(env.Data.([]interface{})) != 0 {
		t.Errorf("remove left %+v", env.Data)
	}
}

func TestOpenUnknownWatchlistEntry(t *testing.T) {
	e := newTestServer(t, &fakeAnalyzer{}, "fallback-key")

	_, env := doJSON(t, e, http.MethodPost, "/api/watchlist/nope/open", "")
	if env.Status != http.StatusNotFound {
		t.Errorf("status = %d, want 404", env.Status)
	}
}

func TestProfileRoundTrip(t *testing.T) {
	e := newTestServer(t, &fakeAnalyzer{}, "fallback-key")

	body := `{"displayName":"Sana","email":"sana@example.com","experienceLevel":"Pro","riskTolerance":"High","credential":"user-key-123"}`
	_, env := doJSON(t, e, http.MethodPut, "/api/profile", body)
	if env.Status != http.StatusOK {
		t.Fatalf("put profile status = %d: %+v", env.Status, env)
	}

	_, env = doJSON(t, e, http.MethodGet, "/api/profile", "")
	profile := env.Data.(map[string]interface{})
	if profile["displayName"] != "Sana" || profile["riskTolerance"] != "High" {
		t.Errorf("profile = %+v", profile)
	}
}

func TestProfileValidation(t *testing.T) {
	e := newTestServer(t, &fakeAnalyzer{}, "fallback-key")

	_, env := doJSON(t, e, http.MethodPut, "/api/profile", `{"email":"not-an-email"}`)
	if env.Status != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 for invalid email", env.Status)
	}
}

func TestStateRedactsCredential(t *testing.T) {
	e := newTestServer(t, &fakeAnalyzer{}, "fallback-key")

	body := `{"displayName":"Sana","experienceLevel":"Pro","riskTolerance":"High","credential":"user-key-123"}`
	doJSON(t, e, http.MethodPut, "/api/profile", body)

	_, env := doJSON(t, e, http.MethodGet, "/api/state", "")
	state := env.Data.(map[string]interface{})
	profile := state["profile"].(map[string]interface{})
	if _, present := profile["credential"]; present {
		t.Errorf("state endpoint must not return the stored credential: %+v", profile)
	}

	// The profile editor surface still returns it.
	_, env = doJSON(t, e, http.MethodGet, "/api/profile", "")
	profile = env.Data.(map[string]interface{})
	if profile["credential"] != "user-key-123" {
		t.Errorf("profile endpoint should return the credential, got %+v", profile)
	}
}

func TestThemeToggle(t *testing.T) {
	e := newTestServer(t, &fakeAnalyzer{}, "fallback-key")

	_, env := doJSON(t, e, http.MethodPost, "/api/theme/toggle", "")
	state := env.Data.(map[string]interface{})
	if state["darkMode"] != true {
		t.Errorf("darkMode = %v, want true after toggle", state["darkMode"])
	}
}

func envErrorCodes(t *testing.T, env xhttp.APIResponse) string {
	t.Helper()
	b, err := json.Marshal(env.Data)
	if err != nil {
		t.Fatalf("marshal error data: %v", err)
	}
	return string(b)
}

func escapePath(s string) string {
	return strings.ReplaceAll(s, " ", "%20")
}
