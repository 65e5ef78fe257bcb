package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"GemScout/internal/domain/models"
	"GemScout/pkg/cache"
	pkghttp "GemScout/pkg/http"
	"GemScout/pkg/logger"
)

const (
	defaultBaseURL  = "https://generativelanguage.googleapis.com"
	maxOutputTokens = 65536
	maxPulseSources = 3

	fallbackReport = "### Analysis Error\n\nThe AI successfully analyzed the data but the response format was incomplete.\n\n**Please try analyzing the stock again.**"
)

// Config holds the upstream endpoint and model names.
type Config struct {
	BaseURL       string
	AnalysisModel string
	PulseModel    string
}

// Client talks to the generateContent REST endpoint. The structured analysis
// goes to the heavier analysis model; the market pulse uses the fast model
// and caches per symbol.
type Client struct {
	cfg      Config
	http     *pkghttp.Client
	pulses   cache.Service
	pulseTTL time.Duration
	log      *logger.Logger
	now      func() time.Time
}

type Option func(*Client)

func WithClock(now func() time.Time) Option {
	return func(c *Client) {
		c.now = now
	}
}

func NewClient(cfg Config, httpClient *pkghttp.Client, pulses cache.Service, pulseTTL time.Duration, log *logger.Logger, opts ...Option) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}

	c := &Client{
		cfg:      cfg,
		http:     httpClient,
		pulses:   pulses,
		pulseTTL: pulseTTL,
		log:      log,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// RequestAnalysis runs the structured valuation for one instrument. A
// response the client cannot parse is not an error: it degrades to a local
// UNKNOWN result so the caller can still render something.
func (c *Client) RequestAnalysis(ctx context.Context, credential string, inst models.Instrument) (*models.AnalysisResult, error) {
	req := &generateRequest{
		Contents:          []content{{Parts: []part{{Text: analysisPrompt(inst, c.now())}}}},
		SystemInstruction: &content{Parts: []part{{Text: systemInstruction}}},
		Tools:             []tool{{GoogleSearch: &googleSearch{}}},
		GenerationConfig: &generationConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   analysisSchema,
			MaxOutputTokens:  maxOutputTokens,
		},
	}

	cand, err := c.generate(ctx, credential, c.cfg.AnalysisModel, "analysis", req)
	if err != nil {
		return nil, err
	}

	payload, ok := parsePayload(candidateText(cand))
	if !ok {
		c.log.Warn("analysis payload unparseable, degrading to UNKNOWN",
			logger.String("symbol", inst.Symbol))
		return unparsedResult(inst), nil
	}

	verdict := models.Verdict(payload.Verdict)
	if !verdict.Valid() {
		verdict = models.VerdictUnknown
	}

	report := payload.MarkdownReport
	if report == "" {
		report = "Analysis failed to generate text."
	}

	label := inst.Symbol
	if payload.OfficialName != "" {
		sym := payload.OfficialSymbol
		if sym == "" {
			sym = inst.Symbol
		}
		label = fmt.Sprintf("%s - %s", sym, payload.OfficialName)
	}

	series := make([]models.FinancialMetric, 0, len(payload.FinancialData))
	for _, d := range payload.FinancialData {
		series = append(series, models.FinancialMetric{
			Year:    d.Year,
			EPS:     d.EPS,
			PERatio: d.PERatio,
			Revenue: d.Revenue,
		})
	}

	return &models.AnalysisResult{
		ReportBody:      report,
		Verdict:         verdict,
		Confidence:      payload.Confidence,
		FinancialSeries: series,
		SubjectLabel:    label,
	}, nil
}

// RequestMarketPulse fetches the recent-news narrative with up to three
// source citations appended. Results are cached per symbol.
func (c *Client) RequestMarketPulse(ctx context.Context, credential string, inst models.Instrument) (string, error) {
	cacheKey := "pulse:" + inst.Symbol
	if c.pulses != nil {
		var cached string
		if err := c.pulses.Get(ctx, cacheKey, &cached); err == nil {
			return cached, nil
		}
	}

	req := &generateRequest{
		Contents: []content{{Parts: []part{{Text: pulsePrompt(inst)}}}},
		Tools:    []tool{{GoogleSearch: &googleSearch{}}},
	}

	cand, err := c.generate(ctx, credential, c.cfg.PulseModel, "market pulse", req)
	if err != nil {
		return "", err
	}

	text := strings.TrimSpace(candidateText(cand))
	if text == "" {
		text = "No recent material news found."
	}
	pulse := text + pulseSources(cand)

	if c.pulses != nil {
		if err := c.pulses.Set(ctx, cacheKey, pulse, c.pulseTTL); err != nil {
			c.log.Warn("pulse cache write failed", logger.Error(err))
		}
	}
	return pulse, nil
}

func (c *Client) generate(ctx context.Context, credential, model, op string, req *generateRequest) (*candidate, error) {
	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.cfg.BaseURL, model)

	var resp generateResponse
	err := c.http.SendAndParse(ctx, &pkghttp.RequestOptions{
		Method:      pkghttp.MethodPost,
		URL:         url,
		QueryParams: map[string][]string{"key": {credential}},
		Body:        req,
	}, &resp)
	if err != nil {
		var statusErr *pkghttp.StatusError
		if errors.As(err, &statusErr) &&
			(statusErr.StatusCode == http.StatusUnauthorized || statusErr.StatusCode == http.StatusForbidden) {
			return nil, models.ErrMissingCredential
		}
		return nil, &models.TransportError{Op: op, Err: err}
	}

	if len(resp.Candidates) == 0 {
		return &candidate{}, nil
	}
	return &resp.Candidates[0], nil
}

func candidateText(cand *candidate) string {
	var b strings.Builder
	for _, p := range cand.Content.Parts {
		b.WriteString(p.Text)
	}
	return b.String()
}

// parsePayload decodes the structured verdict. Models occasionally wrap the
// JSON in markdown fences despite the response MIME type, so one cleanup
// pass strips those before giving up.
func parsePayload(text string) (*analysisPayload, bool) {
	var payload analysisPayload
	if err := json.Unmarshal([]byte(text), &payload); err == nil {
		return &payload, true
	}

	cleaned := strings.ReplaceAll(text, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	cleaned = strings.TrimSpace(cleaned)
	if err := json.Unmarshal([]byte(cleaned), &payload); err == nil {
		return &payload, true
	}
	return nil, false
}

func unparsedResult(inst models.Instrument) *models.AnalysisResult {
	return &models.AnalysisResult{
		ReportBody:      fallbackReport,
		Verdict:         models.VerdictUnknown,
		Confidence:      0,
		FinancialSeries: []models.FinancialMetric{},
		SubjectLabel:    inst.Symbol,
	}
}

func pulseSources(cand *candidate) string {
	if cand.GroundingMetadata == nil {
		return ""
	}

	links := make([]string, 0, maxPulseSources)
	for _, chunk := range cand.GroundingMetadata.GroundingChunks {
		if chunk.Web == nil {
			continue
		}
		links = append(links, fmt.Sprintf("- [%s](%s)", chunk.Web.Title, chunk.Web.URI))
		if len(links) == maxPulseSources {
			break
		}
	}
	if len(links) == 0 {
		return ""
	}
	return "\n\n**Verified News Sources:**\n" + strings.Join(links, "\n")
}
