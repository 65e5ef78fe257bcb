package models

// Verdict is the categorical investment judgment attached to an analysis.
type Verdict string

const (
	VerdictGem     Verdict = "GEM"
	VerdictWatch   Verdict = "WATCH"
	VerdictTrap    Verdict = "TRAP"
	VerdictUnknown Verdict = "UNKNOWN"
)

// Valid reports whether v is one of the four known verdict categories.
func (v Verdict) Valid() bool {
	switch v {
	case VerdictGem, VerdictWatch, VerdictTrap, VerdictUnknown:
		return true
	}
	return false
}

// FinancialMetric is one year of the historical series attached to a report.
type FinancialMetric struct {
	Year    string  `json:"year"`
	EPS     float64 `json:"eps"`
	PERatio float64 `json:"peRatio"`
	Revenue float64 `json:"revenue"`
}

// AnalysisResult is a completed analysis for one instrument. Immutable after
// the orchestrator merges the report and the market pulse.
type AnalysisResult struct {
	ReportBody      string            `json:"reportBody"`
	Verdict         Verdict           `json:"verdict"`
	Confidence      float64           `json:"confidence"`
	InsightsText    string            `json:"insightsText,omitempty"`
	FinancialSeries []FinancialMetric `json:"financialSeries"`
	// SubjectLabel identifies the instrument the result describes, using the
	// identity resolved by the analysis ("SYMBOL - Official Name"), which may
	// differ from the raw input symbol.
	SubjectLabel string `json:"subjectLabel,omitempty"`
}

// RunStatus is the analysis run state machine:
// IDLE -> ANALYZING -> {COMPLETED, ERROR} -> IDLE on reset.
type RunStatus string

const (
	StatusIdle      RunStatus = "IDLE"
	StatusAnalyzing RunStatus = "ANALYZING"
	StatusCompleted RunStatus = "COMPLETED"
	StatusError     RunStatus = "ERROR"
)
