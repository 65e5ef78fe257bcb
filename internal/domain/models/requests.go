package models

// Requests for the research HTTP endpoints. Defined in domain for
// consistency and reuse.

type SelectRequest struct {
	Slot   string `json:"slot" default:"primary" validate:"oneof=primary secondary"`
	Symbol string `json:"symbol" validate:"required,min=1,max=64"`
}

type SearchRequest struct {
	Q string `query:"q" json:"q" validate:"required,min=1,max=64"`
}

type WatchlistSaveRequest struct {
	Slot string `json:"slot" default:"primary" validate:"oneof=primary secondary"`
}

type HistorySelectRequest struct {
	Symbol string `json:"symbol" validate:"required,min=1,max=64"`
}

type ProfileRequest struct {
	DisplayName     string `json:"displayName" validate:"max=100"`
	Email           string `json:"email" validate:"omitempty,email"`
	ExperienceLevel string `json:"experienceLevel" default:"Beginner" validate:"oneof=Beginner Intermediate Pro"`
	RiskTolerance   string `json:"riskTolerance" default:"Medium" validate:"oneof=Low Medium High"`
	Credential      string `json:"credential" validate:"max=256"`
}
