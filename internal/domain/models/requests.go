package models

// Requests and static payloads for the HTTP endpoints.

// SymbolRequest is the path-scoped request for quote and sentiment lookups.
// Validation sees the raw path param; alphanum is case-insensitive, and the
// usecase upper-cases the symbol afterwards.
type SymbolRequest struct {
	Symbol string `param:"symbol" json:"symbol" validate:"required,alphanum,min=1,max=10"`
}

// GamificationStatus mirrors the dashboard's static gamification payload.
type GamificationStatus struct {
	InvestorLevel     string   `json:"investor_level"`
	AnalysisPoints    int      `json:"analysis_points"`
	Badges            []string `json:"badges"`
	NextLevelProgress int      `json:"next_level_progress"`
}

// DefaultGamificationStatus returns the fixed demo payload.
func DefaultGamificationStatus() GamificationStatus {
	return GamificationStatus{
		InvestorLevel:     "Intermedio",
		AnalysisPoints:    1250,
		Badges:            []string{"Primer Análisis", "Toro de Oro", "Visualizador"},
		NextLevelProgress: 75,
	}
}
