package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"GemScout/internal/domain/models"
	"GemScout/pkg/cache"
	pkghttp "GemScout/pkg/http"
	"GemScout/pkg/logger"
)

func testInstrument() models.Instrument {
	return models.Instrument{Symbol: "LUCK", Name: "Lucky Cement Limited", Sector: "Cement", ReferencePrice: 920.50}
}

func newTestClient(t *testing.T, handler http.Handler, pulses cache.Service) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := NewClient(Config{
		BaseURL:       srv.URL,
		AnalysisModel: "analysis-model",
		PulseModel:    "pulse-model",
	}, pkghttp.NewClient(pkghttp.WithTimeout(5*time.Second)), pulses, time.Minute, logger.NewNop())
	return c, srv
}

func candidateResponse(text string) string {
	resp := map[string]interface{}{
		"candidates": []map[string]interface{}{
			{"content": map[string]interface{}{"parts": []map[string]string{{"text": text}}}},
		},
	}
	b, _ := json.Marshal(resp)
	return string(b)
}

func TestRequestAnalysisParsesStructuredPayload(t *testing.T) {
	payload := `{"verdict":"GEM","confidence":85,"officialName":"Lucky Cement Limited","officialSymbol":"LUCK","markdownReport":"# Report","financialData":[{"year":"2024","eps":105.2,"peRatio":8.7,"revenue":115000}]}`

	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, "analysis-model") {
			t.Errorf("request path %q does not target the analysis model", r.URL.Path)
		}
		if r.URL.Query().Get("key") != "test-key-123" {
			t.Errorf("credential not forwarded as key query param")
		}
		w.Write([]byte(candidateResponse(payload)))
	}), nil)

	res, err := c.RequestAnalysis(context.Background(), "test-key-123", testInstrument())
	if err != nil {
		t.Fatalf("RequestAnalysis() error = %v", err)
	}
	if res.Verdict != models.VerdictGem {
		t.Errorf("verdict = %s, want GEM", res.Verdict)
	}
	if res.Confidence != 85 {
		t.Errorf("confidence = %v, want 85", res.Confidence)
	}
	if res.SubjectLabel != "LUCK - Lucky Cement Limited" {
		t.Errorf("subject label = %q", res.SubjectLabel)
	}
	if len(res.FinancialSeries) != 1 || res.FinancialSeries[0].Year != "2024" {
		t.Errorf("financial series = %+v", res.FinancialSeries)
	}
}

func TestRequestAnalysisRecoversFencedJSON(t *testing.T) {
	fenced := "```json\n{\"verdict\":\"WATCH\",\"confidence\":60,\"markdownReport\":\"ok\"}\n```"

	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(candidateResponse(fenced)))
	}), nil)

	res, err := c.RequestAnalysis(context.Background(), "test-key-123", testInstrument())
	if err != nil {
		t.Fatalf("RequestAnalysis() error = %v", err)
	}
	if res.Verdict != models.VerdictWatch {
		t.Errorf("verdict = %s, want WATCH after fence cleanup", res.Verdict)
	}
}

func TestRequestAnalysisDegradesToUnknownOnGarbage(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(candidateResponse("this is not json at all")))
	}), nil)

	res, err := c.RequestAnalysis(context.Background(), "test-key-123", testInstrument())
	if err != nil {
		t.Fatalf("unparseable payload must not surface as error, got %v", err)
	}
	if res.Verdict != models.VerdictUnknown {
		t.Errorf("verdict = %s, want UNKNOWN", res.Verdict)
	}
	if res.SubjectLabel != "LUCK" {
		t.Errorf("subject label = %q, want raw symbol", res.SubjectLabel)
	}
}

func TestRequestAnalysisMissingCredential(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"API key not valid"}`, http.StatusForbidden)
	}), nil)

	_, err := c.RequestAnalysis(context.Background(), "bad-key-000", testInstrument())
	if !errors.Is(err, models.ErrMissingCredential) {
		t.Fatalf("error = %v, want ErrMissingCredential", err)
	}
}

func TestRequestAnalysisTransportError(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream exploded", http.StatusInternalServerError)
	}), nil)

	_, err := c.RequestAnalysis(context.Background(), "test-key-123", testInstrument())
	var transportErr *models.TransportError
	if !errors.As(err, &transportErr) {
		t.Fatalf("error = %v, want *TransportError", err)
	}
}

func TestRequestMarketPulseAppendsSources(t *testing.T) {
	resp := map[string]interface{}{
		"candidates": []map[string]interface{}{
			{
				"content": map[string]interface{}{"parts": []map[string]string{{"text": "- Dividend announced"}}},
				"groundingMetadata": map[string]interface{}{
					"groundingChunks": []map[string]interface{}{
						{"web": map[string]string{"uri": "https://news.example/1", "title": "PSX Notice"}},
						{"web": map[string]string{"uri": "https://news.example/2", "title": "Business Daily"}},
						{},
						{"web": map[string]string{"uri": "https://news.example/3", "title": "Tribune"}},
						{"web": map[string]string{"uri": "https://news.example/4", "title": "Dropped"}},
					},
				},
			},
		},
	}
	body, _ := json.Marshal(resp)

	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, "pulse-model") {
			t.Errorf("request path %q does not target the pulse model", r.URL.Path)
		}
		w.Write(body)
	}), nil)

	pulse, err := c.RequestMarketPulse(context.Background(), "test-key-123", testInstrument())
	if err != nil {
		t.Fatalf("RequestMarketPulse() error = %v", err)
	}
	if !strings.Contains(pulse, "- Dividend announced") {
		t.Errorf("pulse missing narrative: %q", pulse)
	}
	if !strings.Contains(pulse, "**Verified News Sources:**") {
		t.Errorf("pulse missing sources header: %q", pulse)
	}
	if strings.Count(pulse, "https://news.example/") != 3 {
		t.Errorf("pulse should cite exactly 3 sources: %q", pulse)
	}
	if strings.Contains(pulse, "Dropped") {
		t.Errorf("fourth source must not be cited: %q", pulse)
	}
}

func TestRequestMarketPulseEmptyText(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[]}`))
	}), nil)

	pulse, err := c.RequestMarketPulse(context.Background(), "test-key-123", testInstrument())
	if err != nil {
		t.Fatalf("RequestMarketPulse() error = %v", err)
	}
	if pulse != "No recent material news found." {
		t.Errorf("pulse = %q", pulse)
	}
}

func TestRequestMarketPulseUsesCache(t *testing.T) {
	calls := 0
	pulses := cache.NewMemoryCache()
	t.Cleanup(func() { pulses.Close() })

	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte(candidateResponse("fresh pulse")))
	}), pulses)

	for i := 0; i < 2; i++ {
		pulse, err := c.RequestMarketPulse(context.Background(), "test-key-123", testInstrument())
		if err != nil {
			t.Fatalf("RequestMarketPulse() call %d error = %v", i, err)
		}
		if pulse != "fresh pulse" {
			t.Errorf("pulse = %q", pulse)
		}
	}
	if calls != 1 {
		t.Errorf("upstream called %d times, want 1 (second served from cache)", calls)
	}
}
