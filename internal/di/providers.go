package di

import (
	"fmt"
	"time"

	"GemScout/internal/catalog"
	"GemScout/internal/domain/repository"
	"GemScout/internal/handler/api"
	"GemScout/internal/service/credentials"
	"GemScout/internal/service/gemini"
	"GemScout/internal/store"
	"GemScout/internal/usecase"
	"GemScout/pkg/cache"
	"GemScout/pkg/config"
	xhttp "GemScout/pkg/http"
	"GemScout/pkg/logger"
	"GemScout/pkg/metrics"
	"GemScout/pkg/server"
)

const defaultGeminiTimeout = 2 * time.Minute

// ProvideLogger creates the application logger from config.
func ProvideLogger(cfg *config.Config) (*logger.Logger, error) {
	return logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
}

// ProvideMetrics creates the Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return metrics.New()
}

// ProvideHTTPClient creates the outbound client for the inference service.
// Analysis runs are slow by nature, so the timeout is generous.
func ProvideHTTPClient(cfg *config.Config) *xhttp.Client {
	timeout := cfg.Gemini.Timeout
	if timeout <= 0 {
		timeout = defaultGeminiTimeout
	}
	return xhttp.NewClient(xhttp.WithTimeout(timeout))
}

// ProvidePulseCache creates the market-pulse cache, Redis-backed when
// configured, in-process otherwise.
func ProvidePulseCache(cfg *config.Config) (cache.Service, error) {
	if cfg.Pulse.Redis.Enabled {
		c, err := cache.NewRedisCache(
			cache.WithRedisHost(cfg.Pulse.Redis.Host),
			cache.WithRedisPort(cfg.Pulse.Redis.Port),
			cache.WithRedisPassword(cfg.Pulse.Redis.Password),
			cache.WithRedisDB(cfg.Pulse.Redis.DB),
		)
		if err != nil {
			return nil, fmt.Errorf("redis cache: %w", err)
		}
		return c, nil
	}
	return cache.NewMemoryCache(), nil
}

// ProvideCatalog builds the instrument catalog and its search index.
func ProvideCatalog(log *logger.Logger) (repository.Catalog, error) {
	return catalog.New(log)
}

// ProvideStateStore opens the bbolt-backed state store.
func ProvideStateStore(cfg *config.Config, log *logger.Logger) (repository.StateStore, error) {
	return store.NewBoltStore(cfg.Store.Path, log)
}

// ProvideCredentials creates the credential resolver with the instance-level
// key as fallback.
func ProvideCredentials(cfg *config.Config) *credentials.Resolver {
	return credentials.NewResolver(cfg.Gemini.APIKey)
}

// ProvideAnalyzer creates the Gemini-backed analysis client.
func ProvideAnalyzer(
	cfg *config.Config,
	httpClient *xhttp.Client,
	pulseCache cache.Service,
	log *logger.Logger,
) repository.Analyzer {
	return gemini.NewClient(gemini.Config{
		BaseURL:       cfg.Gemini.BaseURL,
		AnalysisModel: cfg.Gemini.AnalysisModel,
		PulseModel:    cfg.Gemini.PulseModel,
	}, httpClient, pulseCache, cfg.Pulse.CacheTTL, log)
}

// ProvideOrchestrator creates the state orchestrator, loading persisted
// collections from the store.
func ProvideOrchestrator(
	analyzer repository.Analyzer,
	st repository.StateStore,
	cat repository.Catalog,
	creds *credentials.Resolver,
	m repository.Metrics,
	log *logger.Logger,
) (*usecase.Orchestrator, error) {
	return usecase.New(analyzer, st, cat, creds, m, log)
}

// ProvideHandlers assembles the HTTP route surface.
func ProvideHandlers(
	log *logger.Logger,
	orchestrator *usecase.Orchestrator,
	cat repository.Catalog,
) []xhttp.Handler {
	return []xhttp.Handler{
		api.NewResearchHandler(log, orchestrator, cat),
		api.NewStreamHandler(log, orchestrator),
	}
}

// ProvideApp creates the application server.
func ProvideApp(
	cfg *config.Config,
	log *logger.Logger,
	st repository.StateStore,
	pulseCache cache.Service,
	handlers []xhttp.Handler,
) *server.App {
	return server.New(cfg, log, st, pulseCache, handlers)
}
