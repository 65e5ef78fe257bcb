package store

import (
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	bolt "go.etcd.io/bbolt"

	"GemScout/internal/domain/models"
	"GemScout/pkg/logger"
)

func newTestStore(t *testing.T) *BoltStore {
	t.Helper()
	s, err := NewBoltStore(filepath.Join(t.TempDir(), "state.db"), logger.NewNop())
	if err != nil {
		t.Fatalf("NewBoltStore() error = %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestLoadFreshStore(t *testing.T) {
	s := newTestStore(t)

	state, err := s.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(state.Watchlist) != 0 || len(state.History) != 0 {
		t.Errorf("fresh store should have empty collections, got %+v", state)
	}
	if state.Profile.ExperienceLevel != models.ExperienceBeginner {
		t.Errorf("fresh profile = %+v, want defaults", state.Profile)
	}
}

func TestRoundTrip(t *testing.T) {
	s := newTestStore(t)
	savedAt := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	watchlist := []models.WatchlistEntry{{
		AnalysisResult: models.AnalysisResult{
			ReportBody:   "# Report",
			Verdict:      models.VerdictGem,
			Confidence:   80,
			SubjectLabel: "LUCK - Lucky Cement Limited",
		},
		ID:          "LUCK - Lucky Cement Limited",
		Symbol:      "LUCK",
		SavedAt:     savedAt,
		PriceAtSave: 920.50,
	}}
	history := []models.HistoryEntry{
		{Symbol: "MEBL", DisplayName: "MEBL - Meezan Bank Limited", Timestamp: savedAt},
	}
	profile := models.UserProfile{
		DisplayName:     "Asad",
		ExperienceLevel: models.ExperiencePro,
		RiskTolerance:   models.RiskHigh,
		Credential:      "user-key-123",
	}

	if err := s.SaveWatchlist(watchlist); err != nil {
		t.Fatalf("SaveWatchlist() error = %v", err)
	}
	if err := s.SaveHistory(history); err != nil {
		t.Fatalf("SaveHistory() error = %v", err)
	}
	if err := s.SaveProfile(profile); err != nil {
		t.Fatalf("SaveProfile() error = %v", err)
	}

	state, err := s.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(state.Watchlist) != 1 || state.Watchlist[0].ID != "LUCK - Lucky Cement Limited" {
		t.Errorf("watchlist = %+v", state.Watchlist)
	}
	if state.Watchlist[0].Verdict != models.VerdictGem || state.Watchlist[0].PriceAtSave != 920.50 {
		t.Errorf("watchlist entry lost fields: %+v", state.Watchlist[0])
	}
	if len(state.History) != 1 || state.History[0].Symbol != "MEBL" {
		t.Errorf("history = %+v", state.History)
	}
	if state.Profile != profile {
		t.Errorf("profile = %+v, want %+v", state.Profile, profile)
	}
}

func TestPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.db")

	s, err := NewBoltStore(path, logger.NewNop())
	if err != nil {
		t.Fatalf("NewBoltStore() error = %v", err)
	}
	if err := s.SaveHistory([]models.HistoryEntry{{Symbol: "SYS", DisplayName: "SYS"}}); err != nil {
		t.Fatalf("SaveHistory() error = %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	s2, err := NewBoltStore(path, logger.NewNop())
	if err != nil {
		t.Fatalf("reopen error = %v", err)
	}
	defer s2.Close()

	state, err := s2.Load()
	if err != nil {
		t.Fatalf("Load() after reopen error = %v", err)
	}
	if len(state.History) != 1 || state.History[0].Symbol != "SYS" {
		t.Errorf("history after reopen = %+v", state.History)
	}
}

func TestCorruptDocumentDoesNotPoisonOthers(t *testing.T) {
	s := newTestStore(t)

	if err := s.SaveWatchlist([]models.WatchlistEntry{{ID: "kept", Symbol: "FFC"}}); err != nil {
		t.Fatalf("SaveWatchlist() error = %v", err)
	}

	// Scribble over the history document directly.
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketState).Put(keyHistory, []byte("{not json"))
	})
	if err != nil {
		t.Fatalf("corrupting history: %v", err)
	}

	state, err := s.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(state.History) != 0 {
		t.Errorf("corrupt history should load empty, got %+v", state.History)
	}
	if len(state.Watchlist) != 1 || state.Watchlist[0].ID != "kept" {
		t.Errorf("watchlist should survive corrupt sibling, got %+v", state.Watchlist)
	}
	if state.Profile.RiskTolerance != models.RiskMedium {
		t.Errorf("profile should fall back to defaults, got %+v", state.Profile)
	}
}

func TestSaveOverwritesWholesale(t *testing.T) {
	s := newTestStore(t)

	if err := s.SaveHistory([]models.HistoryEntry{{Symbol: "A"}, {Symbol: "B"}}); err != nil {
		t.Fatalf("SaveHistory() error = %v", err)
	}
	if err := s.SaveHistory([]models.HistoryEntry{{Symbol: "C"}}); err != nil {
		t.Fatalf("SaveHistory() error = %v", err)
	}

	state, err := s.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(state.History) != 1 || state.History[0].Symbol != "C" {
		t.Errorf("history = %+v, want single C entry", state.History)
	}

	var raw []byte
	s.db.View(func(tx *bolt.Tx) error {
		raw = tx.Bucket(bucketState).Get(keyHistory)
		return nil
	})
	var decoded []models.HistoryEntry
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("stored document is not valid JSON: %v", err)
	}
}
