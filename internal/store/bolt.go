package store

import (
	"encoding/json"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"

	"GemScout/internal/domain/models"
	"GemScout/pkg/logger"
)

var bucketState = []byte("state")

// Each collection lives under its own key so one corrupt document never
// takes the others down with it.
var (
	keyWatchlist = []byte("watchlist")
	keyHistory   = []byte("history")
	keyProfile   = []byte("profile")
)

// BoltStore persists the dashboard state in a single-file bbolt database.
type BoltStore struct {
	db  *bolt.DB
	log *logger.Logger
}

func NewBoltStore(path string, log *logger.Logger) (*BoltStore, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open state db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketState)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("init state bucket: %w", err)
	}

	return &BoltStore{db: db, log: log}, nil
}

// Load reads all three collections. A missing or unreadable document yields
// that collection's default; the read itself never fails on bad content.
func (s *BoltStore) Load() (*models.PersistedState, error) {
	state := &models.PersistedState{
		Watchlist: []models.WatchlistEntry{},
		History:   []models.HistoryEntry{},
		Profile:   models.DefaultProfile(),
	}

	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketState)

		if raw := b.Get(keyWatchlist); raw != nil {
			var watchlist []models.WatchlistEntry
			if err := json.Unmarshal(raw, &watchlist); err != nil {
				s.log.Warn("watchlist document unreadable, starting empty", logger.Error(err))
			} else {
				state.Watchlist = watchlist
			}
		}

		if raw := b.Get(keyHistory); raw != nil {
			var history []models.HistoryEntry
			if err := json.Unmarshal(raw, &history); err != nil {
				s.log.Warn("history document unreadable, starting empty", logger.Error(err))
			} else {
				state.History = history
			}
		}

		if raw := b.Get(keyProfile); raw != nil {
			var profile models.UserProfile
			if err := json.Unmarshal(raw, &profile); err != nil {
				s.log.Warn("profile document unreadable, using defaults", logger.Error(err))
			} else {
				state.Profile = profile
			}
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("load state: %w", err)
	}
	return state, nil
}

func (s *BoltStore) SaveWatchlist(entries []models.WatchlistEntry) error {
	return s.put(keyWatchlist, entries)
}

func (s *BoltStore) SaveHistory(entries []models.HistoryEntry) error {
	return s.put(keyHistory, entries)
}

func (s *BoltStore) SaveProfile(profile models.UserProfile) error {
	return s.put(keyProfile, profile)
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}

func (s *BoltStore) put(key []byte, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	err = s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketState).Put(key, raw)
	})
	if err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}
