package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"GemScout/internal/domain/repository"
	"GemScout/pkg/cache"
	"GemScout/pkg/config"
	xhttp "GemScout/pkg/http"
	"GemScout/pkg/logger"
)

// App encapsulates the service lifecycle: the HTTP intent surface in front,
// the state store and pulse cache behind it.
type App struct {
	cfg        *config.Config
	log        *logger.Logger
	store      repository.StateStore
	pulseCache cache.Service
	httpServer *xhttp.Server
}

func New(
	cfg *config.Config,
	log *logger.Logger,
	store repository.StateStore,
	pulseCache cache.Service,
	handlers []xhttp.Handler,
) *App {
	httpServer := xhttp.NewServer(handlers,
		xhttp.WithPort(cfg.Server.Port),
		xhttp.WithTimeouts(cfg.Server.ReadTimeout, cfg.Server.WriteTimeout, cfg.Server.ShutdownTimeout),
	)

	return &App{
		cfg:        cfg,
		log:        log,
		store:      store,
		pulseCache: pulseCache,
		httpServer: httpServer,
	}
}

// Run starts the HTTP server and blocks until an interrupt arrives.
func (a *App) Run() error {
	if err := a.httpServer.Start(); err != nil {
		return err
	}
	a.log.Info("dashboard service up",
		logger.Int("port", a.cfg.Server.Port),
		logger.String("environment", a.cfg.Environment))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	a.log.Info("shutdown signal received")
	return a.shutdown()
}

func (a *App) shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := a.httpServer.Stop(ctx); err != nil {
		a.log.Error("http shutdown error", logger.Error(err))
	}

	if a.pulseCache != nil {
		if err := a.pulseCache.Close(); err != nil {
			a.log.Warn("pulse cache close error", logger.Error(err))
		}
	}

	if err := a.store.Close(); err != nil {
		a.log.Error("state store close error", logger.Error(err))
		return err
	}

	a.log.Info("shutdown complete")
	return nil
}
