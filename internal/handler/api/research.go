package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"GemScout/internal/domain/models"
	"GemScout/internal/domain/repository"
	"GemScout/internal/usecase"
	xhttp "GemScout/pkg/http"
	xlogger "GemScout/pkg/logger"
)

// ResearchHandler exposes the research dashboard intents over HTTP. Every
// mutating endpoint returns the resulting state snapshot so the caller never
// needs a follow-up read.
type ResearchHandler struct {
	logger       *xlogger.Logger
	orchestrator *usecase.Orchestrator
	catalog      repository.Catalog
}

func NewResearchHandler(logger *xlogger.Logger, orchestrator *usecase.Orchestrator, catalog repository.Catalog) *ResearchHandler {
	return &ResearchHandler{logger: logger, orchestrator: orchestrator, catalog: catalog}
}

func (h *ResearchHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")

	g.GET("/catalog", h.Catalog)
	g.GET("/catalog/search", h.Search)
	g.GET("/catalog/sectors", h.Sectors)

	g.GET("/state", h.State)
	g.POST("/select", h.Select)
	g.POST("/comparison/toggle", h.ToggleComparison)
	g.POST("/theme/toggle", h.ToggleTheme)
	g.POST("/reset", h.Reset)
	g.POST("/analyze", h.Analyze)

	g.GET("/watchlist", h.Watchlist)
	g.POST("/watchlist", h.SaveWatchlist)
	g.DELETE("/watchlist/:id", h.RemoveWatchlist)
	g.POST("/watchlist/:id/open", h.OpenWatchlist)

	g.GET("/history", h.History)
	g.POST("/history/select", h.SelectRecent)

	g.GET("/profile", h.Profile)
	g.PUT("/profile", h.SetProfile)
}

func (h *ResearchHandler) Catalog(c echo.Context) error {
	return xhttp.SuccessResponse(c, h.catalog.All())
}

func (h *ResearchHandler) Search(c echo.Context) error {
	req := &models.SearchRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	results, err := h.catalog.Search(req.Q)
	if err != nil {
		h.logger.Error("catalog search error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, results)
}

func (h *ResearchHandler) Sectors(c echo.Context) error {
	return xhttp.SuccessResponse(c, h.catalog.Sectors())
}

func (h *ResearchHandler) State(c echo.Context) error {
	return xhttp.SuccessResponse(c, redactState(h.orchestrator.State()))
}

func (h *ResearchHandler) Select(c echo.Context) error {
	req := &models.SelectRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	if err := h.orchestrator.Select(usecase.Slot(req.Slot), req.Symbol); err != nil {
		return h.intentError(c, err)
	}
	return xhttp.SuccessResponse(c, redactState(h.orchestrator.State()))
}

func (h *ResearchHandler) ToggleComparison(c echo.Context) error {
	if err := h.orchestrator.ToggleComparison(); err != nil {
		return h.intentError(c, err)
	}
	return xhttp.SuccessResponse(c, redactState(h.orchestrator.State()))
}

func (h *ResearchHandler) ToggleTheme(c echo.Context) error {
	h.orchestrator.ToggleTheme()
	return xhttp.SuccessResponse(c, redactState(h.orchestrator.State()))
}

func (h *ResearchHandler) Reset(c echo.Context) error {
	h.orchestrator.Reset()
	return xhttp.SuccessResponse(c, redactState(h.orchestrator.State()))
}

// Analyze blocks until the fan-out joins, mirroring the all-or-nothing run
// semantics: the response either carries the completed state or the mapped
// failure.
func (h *ResearchHandler) Analyze(c echo.Context) error {
	if err := h.orchestrator.RunAnalysis(c.Request().Context()); err != nil {
		return h.intentError(c, err)
	}
	return xhttp.SuccessResponse(c, redactState(h.orchestrator.State()))
}

func (h *ResearchHandler) Watchlist(c echo.Context) error {
	return xhttp.SuccessResponse(c, h.orchestrator.State().Watchlist)
}

func (h *ResearchHandler) SaveWatchlist(c echo.Context) error {
	req := &models.WatchlistSaveRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	if err := h.orchestrator.SaveToWatchlist(usecase.Slot(req.Slot)); err != nil {
		return h.intentError(c, err)
	}
	return xhttp.SuccessResponse(c, h.orchestrator.State().Watchlist)
}

func (h *ResearchHandler) RemoveWatchlist(c echo.Context) error {
	if err := h.orchestrator.RemoveFromWatchlist(c.Param("id")); err != nil {
		return h.intentError(c, err)
	}
	return xhttp.SuccessResponse(c, h.orchestrator.State().Watchlist)
}

func (h *ResearchHandler) OpenWatchlist(c echo.Context) error {
	if err := h.orchestrator.OpenWatchlistEntry(c.Param("id")); err != nil {
		return h.intentError(c, err)
	}
	return xhttp.SuccessResponse(c, redactState(h.orchestrator.State()))
}

func (h *ResearchHandler) History(c echo.Context) error {
	return xhttp.SuccessResponse(c, h.orchestrator.State().History)
}

func (h *ResearchHandler) SelectRecent(c echo.Context) error {
	req := &models.HistorySelectRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	if err := h.orchestrator.SelectRecent(req.Symbol); err != nil {
		return h.intentError(c, err)
	}
	return xhttp.SuccessResponse(c, redactState(h.orchestrator.State()))
}

func (h *ResearchHandler) Profile(c echo.Context) error {
	return xhttp.SuccessResponse(c, h.orchestrator.State().Profile)
}

func (h *ResearchHandler) SetProfile(c echo.Context) error {
	req := &models.ProfileRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	profile := models.UserProfile{
		DisplayName:     req.DisplayName,
		Email:           req.Email,
		ExperienceLevel: req.ExperienceLevel,
		RiskTolerance:   req.RiskTolerance,
		Credential:      req.Credential,
	}
	if err := h.orchestrator.SetProfile(profile); err != nil {
		return h.intentError(c, err)
	}
	return xhttp.SuccessResponse(c, h.orchestrator.State().Profile)
}

// redactState strips the stored credential from full-state responses. The
// profile endpoints are the only surface that returns it.
func redactState(s models.AppState) models.AppState {
	s.Profile.Credential = ""
	return s
}

// intentError maps domain failures onto the response taxonomy.
func (h *ResearchHandler) intentError(c echo.Context, err error) error {
	var transportErr *models.TransportError

	switch {
	case errors.Is(err, models.ErrNoPrimary):
		return xhttp.AppErrorResponse(c,
			xhttp.NewAppError("ERR_NO_SELECTION", "symbol", err.Error(), http.StatusBadRequest))
	case errors.Is(err, models.ErrNoSecondary):
		return xhttp.AppErrorResponse(c,
			xhttp.NewAppError("ERR_NO_SECONDARY", "symbol", err.Error(), http.StatusBadRequest))
	case errors.Is(err, models.ErrRunActive):
		return xhttp.AppErrorResponse(c,
			xhttp.NewAppError("ERR_RUN_ACTIVE", "", err.Error(), http.StatusConflict))
	case errors.Is(err, models.ErrMissingCredential):
		return xhttp.AppErrorResponse(c,
			xhttp.NewAppError("ERR_NEED_CREDENTIAL", "credential", err.Error(), http.StatusUnauthorized))
	case errors.Is(err, models.ErrNotFound):
		return xhttp.AppErrorResponse(c, xhttp.NotFoundError(err.Error()))
	case errors.As(err, &transportErr):
		h.logger.Error("upstream failure", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, xhttp.BadGatewayError(transportErr.Error()))
	default:
		h.logger.Error("intent error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
}
