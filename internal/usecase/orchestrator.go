package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"GemScout/internal/domain/models"
	"GemScout/internal/domain/repository"
	"GemScout/internal/service/credentials"
	"GemScout/pkg/logger"
)

// Slot addresses one of the two selection positions.
type Slot string

const (
	SlotPrimary   Slot = "primary"
	SlotSecondary Slot = "secondary"
)

// Orchestrator owns the application state and is the only writer to it.
// Views dispatch intents through its methods and read back snapshots; the
// run loop fans analysis requests out to the inference boundary and joins
// them all-or-nothing.
type Orchestrator struct {
	mu    sync.Mutex
	state models.AppState

	analyzer repository.Analyzer
	store    repository.StateStore
	catalog  repository.Catalog
	creds    *credentials.Resolver
	metrics  repository.Metrics
	log      *logger.Logger

	now       func() time.Time
	listeners []func(models.AppState)
}

type Option func(*Orchestrator)

func WithClock(now func() time.Time) Option {
	return func(o *Orchestrator) {
		o.now = now
	}
}

// New loads the persisted collections and starts with an idle run state.
func New(
	analyzer repository.Analyzer,
	store repository.StateStore,
	catalog repository.Catalog,
	creds *credentials.Resolver,
	metrics repository.Metrics,
	log *logger.Logger,
	opts ...Option,
) (*Orchestrator, error) {
	persisted, err := store.Load()
	if err != nil {
		return nil, err
	}

	o := &Orchestrator{
		state: models.AppState{
			Status:    models.StatusIdle,
			Watchlist: persisted.Watchlist,
			History:   persisted.History,
			Profile:   persisted.Profile,
		},
		analyzer: analyzer,
		store:    store,
		catalog:  catalog,
		creds:    creds,
		metrics:  metrics,
		log:      log,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(o)
	}

	metrics.RecordWatchlistSize(len(o.state.Watchlist))
	return o, nil
}

// OnChange registers a listener invoked with a state snapshot after every
// mutation. Listeners run outside the state lock.
func (o *Orchestrator) OnChange(fn func(models.AppState)) {
	o.mu.Lock()
	o.listeners = append(o.listeners, fn)
	o.mu.Unlock()
}

// State returns a defensive snapshot of the current application state.
func (o *Orchestrator) State() models.AppState {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.snapshotLocked()
}

// Select resolves a symbol and places it in the given slot. A new selection
// always discards previously rendered results.
func (o *Orchestrator) Select(slot Slot, symbol string) error {
	o.mu.Lock()
	if o.state.Status == models.StatusAnalyzing {
		o.mu.Unlock()
		return models.ErrRunActive
	}

	inst, _ := o.catalog.Lookup(symbol)
	switch slot {
	case SlotSecondary:
		o.state.Secondary = &inst
	default:
		o.state.Primary = &inst
	}
	o.clearRunLocked()
	o.mu.Unlock()

	o.notify()
	return nil
}

// ToggleComparison flips comparison mode. Both selections and any rendered
// results are discarded so the two modes never show mixed output.
func (o *Orchestrator) ToggleComparison() error {
	o.mu.Lock()
	if o.state.Status == models.StatusAnalyzing {
		o.mu.Unlock()
		return models.ErrRunActive
	}

	o.state.ComparisonMode = !o.state.ComparisonMode
	o.state.Primary = nil
	o.state.Secondary = nil
	o.clearRunLocked()
	o.mu.Unlock()

	o.notify()
	return nil
}

// Reset discards selections and results and returns the run state to idle.
func (o *Orchestrator) Reset() {
	o.mu.Lock()
	o.state.Primary = nil
	o.state.Secondary = nil
	o.clearRunLocked()
	o.mu.Unlock()

	o.notify()
}

// ToggleTheme flips the UI theme. Not persisted.
func (o *Orchestrator) ToggleTheme() bool {
	o.mu.Lock()
	o.state.DarkMode = !o.state.DarkMode
	dark := o.state.DarkMode
	o.mu.Unlock()

	o.notify()
	return dark
}

// RunAnalysis executes one analysis run over the current selection: two
// concurrent requests per subject (report and market pulse), four in
// comparison mode. The join is all-or-nothing; any request failure discards
// every partial result.
func (o *Orchestrator) RunAnalysis(ctx context.Context) error {
	o.mu.Lock()
	if o.state.Status == models.StatusAnalyzing {
		o.mu.Unlock()
		return models.ErrRunActive
	}
	if o.state.Primary == nil {
		o.mu.Unlock()
		return models.ErrNoPrimary
	}
	if o.state.ComparisonMode && o.state.Secondary == nil {
		o.mu.Unlock()
		return models.ErrNoSecondary
	}

	credential, ok := o.creds.Resolve(o.state.Profile.Credential)
	if !ok {
		o.state.NeedCredential = true
		o.mu.Unlock()
		o.notify()
		return models.ErrMissingCredential
	}

	primary := *o.state.Primary
	comparison := o.state.ComparisonMode
	var secondary models.Instrument
	if comparison {
		secondary = *o.state.Secondary
	}

	o.state.Status = models.StatusAnalyzing
	o.state.Result = nil
	o.state.SecondaryResult = nil
	o.state.NotIdentified = false
	o.state.NeedCredential = false
	o.mu.Unlock()
	o.notify()

	mode := "single"
	if comparison {
		mode = "comparison"
	}
	o.metrics.RecordRun(mode)
	started := o.now()

	run, err := o.fanOut(ctx, credential, primary, secondary, comparison)
	if err != nil {
		o.finishFailed(err)
		return err
	}

	run.primary.InsightsText = run.primaryPulse
	if comparison {
		run.secondary.InsightsText = run.secondaryPulse
	}

	o.mu.Lock()
	o.state.Result = run.primary
	o.state.NotIdentified = run.primary.Verdict == models.VerdictUnknown
	if comparison {
		o.state.SecondaryResult = run.secondary
	}
	o.recordHistoryLocked(primary, run.primary)
	if comparison {
		o.recordHistoryLocked(secondary, run.secondary)
	}
	o.state.Status = models.StatusCompleted
	o.mu.Unlock()
	o.notify()

	o.metrics.RecordVerdict(string(run.primary.Verdict))
	if comparison {
		o.metrics.RecordVerdict(string(run.secondary.Verdict))
	}
	o.metrics.RecordRunDuration(mode, o.now().Sub(started).Seconds())

	o.log.Info("analysis run completed",
		logger.String("mode", mode),
		logger.String("subject", run.primary.SubjectLabel),
		logger.String("verdict", string(run.primary.Verdict)))
	return nil
}

type runOutput struct {
	primary        *models.AnalysisResult
	secondary      *models.AnalysisResult
	primaryPulse   string
	secondaryPulse string
}

// fanOut issues the per-subject requests concurrently and joins them. It sets
// no deadline of its own; timeouts belong to the inference client.
func (o *Orchestrator) fanOut(ctx context.Context, credential string, primary, secondary models.Instrument, comparison bool) (*runOutput, error) {
	type item struct {
		name string
		val  interface{}
		err  error
	}
	ch := make(chan item, 4)
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		v, err := o.analyzer.RequestAnalysis(ctx, credential, primary)
		ch <- item{"primary", v, err}
	}()
	wg.Add(1)
	go func() {
		defer wg.Done()
		v, err := o.analyzer.RequestMarketPulse(ctx, credential, primary)
		ch <- item{"primaryPulse", v, err}
	}()
	if comparison {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := o.analyzer.RequestAnalysis(ctx, credential, secondary)
			ch <- item{"secondary", v, err}
		}()
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := o.analyzer.RequestMarketPulse(ctx, credential, secondary)
			ch <- item{"secondaryPulse", v, err}
		}()
	}

	go func() { wg.Wait(); close(ch) }()

	out := &runOutput{}
	var runErr error
	for it := range ch {
		if it.err != nil {
			// A credential failure anywhere wins over transport failures:
			// it routes the user to the key prompt instead of a dead end.
			if runErr == nil || errors.Is(it.err, models.ErrMissingCredential) {
				runErr = it.err
			}
			continue
		}
		switch it.name {
		case "primary":
			out.primary = it.val.(*models.AnalysisResult)
		case "primaryPulse":
			out.primaryPulse = it.val.(string)
		case "secondary":
			out.secondary = it.val.(*models.AnalysisResult)
		case "secondaryPulse":
			out.secondaryPulse = it.val.(string)
		}
	}

	if runErr != nil {
		return nil, runErr
	}
	return out, nil
}

func (o *Orchestrator) finishFailed(err error) {
	o.mu.Lock()
	if errors.Is(err, models.ErrMissingCredential) {
		o.state.Status = models.StatusIdle
		o.state.NeedCredential = true
		o.metrics.RecordFailure("credential")
	} else {
		o.state.Status = models.StatusError
		o.metrics.RecordFailure("transport")
	}
	o.mu.Unlock()
	o.notify()

	o.log.Error("analysis run failed", logger.Error(err))
}

// SaveToWatchlist stores the rendered result of the given slot. Saving with
// no result, an unidentified subject, or a subject already on the list is a
// silent no-op.
func (o *Orchestrator) SaveToWatchlist(slot Slot) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	result := o.state.Result
	selection := o.state.Primary
	if slot == SlotSecondary {
		result = o.state.SecondaryResult
		selection = o.state.Secondary
	}
	if result == nil || result.SubjectLabel == "" || result.Verdict == models.VerdictUnknown {
		return nil
	}
	for _, e := range o.state.Watchlist {
		if e.ID == result.SubjectLabel {
			return nil
		}
	}

	entry := models.WatchlistEntry{
		AnalysisResult: *result,
		ID:             result.SubjectLabel,
		SavedAt:        o.now(),
	}
	if selection != nil {
		entry.Symbol = selection.Symbol
		entry.PriceAtSave = selection.ReferencePrice
	}

	o.state.Watchlist = append([]models.WatchlistEntry{entry}, o.state.Watchlist...)
	if err := o.store.SaveWatchlist(o.state.Watchlist); err != nil {
		return err
	}
	o.metrics.RecordWatchlistSize(len(o.state.Watchlist))
	return nil
}

// RemoveFromWatchlist drops the entry with the given id. Unknown ids are a
// no-op.
func (o *Orchestrator) RemoveFromWatchlist(id string) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	kept := o.state.Watchlist[:0:0]
	for _, e := range o.state.Watchlist {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(o.state.Watchlist) {
		return nil
	}

	o.state.Watchlist = kept
	if err := o.store.SaveWatchlist(o.state.Watchlist); err != nil {
		return err
	}
	o.metrics.RecordWatchlistSize(len(o.state.Watchlist))
	return nil
}

// OpenWatchlistEntry restores a saved analysis for display without a new
// run. Comparison mode is left and the saved report becomes the rendered
// result.
func (o *Orchestrator) OpenWatchlistEntry(id string) error {
	o.mu.Lock()
	if o.state.Status == models.StatusAnalyzing {
		o.mu.Unlock()
		return models.ErrRunActive
	}

	var found *models.WatchlistEntry
	for i := range o.state.Watchlist {
		if o.state.Watchlist[i].ID == id {
			found = &o.state.Watchlist[i]
			break
		}
	}
	if found == nil {
		o.mu.Unlock()
		return models.ErrNotFound
	}

	inst, _ := o.catalog.Lookup(found.Symbol)
	result := found.AnalysisResult

	o.state.ComparisonMode = false
	o.state.Primary = &inst
	o.state.Secondary = nil
	o.state.Result = &result
	o.state.SecondaryResult = nil
	o.state.Status = models.StatusCompleted
	o.state.NotIdentified = false
	o.state.NeedCredential = false
	o.mu.Unlock()

	o.notify()
	return nil
}

// SelectRecent re-selects a symbol from the search history.
func (o *Orchestrator) SelectRecent(symbol string) error {
	return o.Select(SlotPrimary, symbol)
}

// SetProfile replaces the stored profile wholesale. A usable credential on
// the new profile clears a pending credential prompt.
func (o *Orchestrator) SetProfile(p models.UserProfile) error {
	o.mu.Lock()
	o.state.Profile = p
	if o.creds.Available(p.Credential) {
		o.state.NeedCredential = false
	}
	err := o.store.SaveProfile(p)
	o.mu.Unlock()

	if err != nil {
		return err
	}
	o.notify()
	return nil
}

// recordHistoryLocked files one completed subject into the recent-search
// collection. Unidentified subjects never enter history.
func (o *Orchestrator) recordHistoryLocked(inst models.Instrument, result *models.AnalysisResult) {
	if result.Verdict == models.VerdictUnknown {
		return
	}

	display := result.SubjectLabel
	if display == "" {
		display = inst.Symbol
	}

	entry := models.HistoryEntry{
		Symbol:      strings.ToUpper(inst.Symbol),
		DisplayName: display,
		Timestamp:   o.now(),
	}

	history := make([]models.HistoryEntry, 0, models.MaxHistory)
	history = append(history, entry)
	for _, h := range o.state.History {
		if h.Symbol == entry.Symbol {
			continue
		}
		history = append(history, h)
		if len(history) == models.MaxHistory {
			break
		}
	}
	o.state.History = history

	if err := o.store.SaveHistory(o.state.History); err != nil {
		o.log.Warn("history write failed", logger.Error(err))
	}
}

func (o *Orchestrator) clearRunLocked() {
	o.state.Status = models.StatusIdle
	o.state.Result = nil
	o.state.SecondaryResult = nil
	o.state.NotIdentified = false
	o.state.NeedCredential = false
}

func (o *Orchestrator) snapshotLocked() models.AppState {
	snap := o.state

	if o.state.Primary != nil {
		p := *o.state.Primary
		snap.Primary = &p
	}
	if o.state.Secondary != nil {
		s := *o.state.Secondary
		snap.Secondary = &s
	}
	if o.state.Result != nil {
		r := *o.state.Result
		snap.Result = &r
	}
	if o.state.SecondaryResult != nil {
		r := *o.state.SecondaryResult
		snap.SecondaryResult = &r
	}
	// Collections stay non-nil so they encode as [] rather than null.
	snap.Watchlist = append(make([]models.WatchlistEntry, 0, len(o.state.Watchlist)), o.state.Watchlist...)
	snap.History = append(make([]models.HistoryEntry, 0, len(o.state.History)), o.state.History...)
	return snap
}

func (o *Orchestrator) notify() {
	o.mu.Lock()
	snap := o.snapshotLocked()
	listeners := append(make([]func(models.AppState), 0, len(o.listeners)), o.listeners...)
	o.mu.Unlock()

	for _, fn := range listeners {
		fn(snap)
	}
}
