package models

// Sentiment is a coarse directional judgment.
type Sentiment string

const (
	SentimentBullish Sentiment = "Bullish"
	SentimentBearish Sentiment = "Bearish"
	SentimentNeutral Sentiment = "Neutral"
)

// Valid reports whether s is one of the three allowed labels.
func (s Sentiment) Valid() bool {
	switch s {
	case SentimentBullish, SentimentBearish, SentimentNeutral:
		return true
	}
	return false
}

// SentimentResult is always fully populated: a failed analysis yields the
// fallback tuple, never a partial result.
type SentimentResult struct {
	Sentiment     Sentiment `json:"sentiment"`
	Justification string    `json:"justification"`
}

var fallbackJustifications = map[string]string{
	"es": "No se pudo obtener el análisis en este momento. Datos simulados.",
	"en": "The analysis could not be obtained at this time. Simulated data.",
}

// FallbackSentiment is the deterministic substitute returned when the
// generative backend fails. Language selects the justification text.
func FallbackSentiment(language string) SentimentResult {
	text, ok := fallbackJustifications[language]
	if !ok {
		text = fallbackJustifications["es"]
	}
	return SentimentResult{
		Sentiment:     SentimentNeutral,
		Justification: text,
	}
}
