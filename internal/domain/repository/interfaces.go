package repository

import (
	"context"

	"GemScout/internal/domain/models"
)

// Analyzer is the boundary to the external inference service. "Not found"
// is never an error: it comes back as a well-formed result with verdict
// UNKNOWN. Errors are reserved for credential and transport failures.
type Analyzer interface {
	// RequestAnalysis runs the full structured analysis for one instrument.
	RequestAnalysis(ctx context.Context, credential string, inst models.Instrument) (*models.AnalysisResult, error)
	// RequestMarketPulse fetches the short recent-news narrative, with source
	// citations appended.
	RequestMarketPulse(ctx context.Context, credential string, inst models.Instrument) (string, error)
}

// StateStore owns the serialized form of the three persisted collections.
// Each collection loads and saves independently; a corrupt document yields
// that collection's empty default without failing the others.
type StateStore interface {
	Load() (*models.PersistedState, error)
	SaveWatchlist(entries []models.WatchlistEntry) error
	SaveHistory(entries []models.HistoryEntry) error
	SaveProfile(profile models.UserProfile) error
	Close() error
}

// Catalog is the static lookup table of tradable instruments.
type Catalog interface {
	All() []models.Instrument
	Lookup(symbol string) (models.Instrument, bool)
	Sectors() []SectorGroup
	Search(query string) ([]models.Instrument, error)
}

// SectorGroup lists the instruments of one sector, in catalog order.
type SectorGroup struct {
	Sector      string              `json:"sector"`
	Instruments []models.Instrument `json:"instruments"`
}

// Metrics records orchestrator observability signals.
type Metrics interface {
	RecordRun(mode string)
	RecordVerdict(verdict string)
	RecordFailure(kind string)
	RecordRunDuration(mode string, seconds float64)
	RecordWatchlistSize(n int)
}
