package models

// AppState is the orchestrator-owned application state, handed to views as a
// snapshot. Views never mutate it; they dispatch intents instead.
type AppState struct {
	Primary         *Instrument     `json:"primary,omitempty"`
	Secondary       *Instrument     `json:"secondary,omitempty"`
	ComparisonMode  bool            `json:"comparisonMode"`
	Status          RunStatus       `json:"status"`
	Result          *AnalysisResult `json:"result,omitempty"`
	SecondaryResult *AnalysisResult `json:"secondaryResult,omitempty"`
	// NotIdentified is set when the last completed run could not identify the
	// primary subject (verdict UNKNOWN).
	NotIdentified bool `json:"notIdentified"`
	// NeedCredential is set when the last run was refused or aborted for the
	// lack of a usable credential.
	NeedCredential bool             `json:"needCredential"`
	DarkMode       bool             `json:"darkMode"`
	Watchlist      []WatchlistEntry `json:"watchlist"`
	History        []HistoryEntry   `json:"history"`
	Profile        UserProfile      `json:"profile"`
}
