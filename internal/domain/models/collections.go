package models

import "time"

// MaxHistory caps the recent-search collection.
const MaxHistory = 8

// WatchlistEntry is a saved analysis. ID is the result's SubjectLabel and is
// unique within the collection.
type WatchlistEntry struct {
	AnalysisResult
	ID          string    `json:"id"`
	Symbol      string    `json:"symbol"`
	SavedAt     time.Time `json:"savedAt"`
	PriceAtSave float64   `json:"priceAtSave"`
}

// HistoryEntry is one recent search, most-recent-first in the collection,
// deduplicated by symbol.
type HistoryEntry struct {
	Symbol      string    `json:"symbol"`
	DisplayName string    `json:"displayName"`
	Timestamp   time.Time `json:"timestamp"`
}

// Experience levels for the user profile.
const (
	ExperienceBeginner     = "Beginner"
	ExperienceIntermediate = "Intermediate"
	ExperiencePro          = "Pro"
)

// Risk tolerance levels for the user profile.
const (
	RiskLow    = "Low"
	RiskMedium = "Medium"
	RiskHigh   = "High"
)

// UserProfile is the single process-wide profile, replaced wholesale on save.
type UserProfile struct {
	DisplayName     string `json:"displayName"`
	Email           string `json:"email"`
	ExperienceLevel string `json:"experienceLevel"`
	RiskTolerance   string `json:"riskTolerance"`
	Credential      string `json:"credential,omitempty"`
}

// DefaultProfile is the profile used when nothing has been persisted yet.
func DefaultProfile() UserProfile {
	return UserProfile{
		ExperienceLevel: ExperienceBeginner,
		RiskTolerance:   RiskMedium,
	}
}

// PersistedState is everything the state store owns, one document per field.
type PersistedState struct {
	Watchlist []WatchlistEntry
	History   []HistoryEntry
	Profile   UserProfile
}
