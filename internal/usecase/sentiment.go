package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"TraderPulse/internal/domain/models"
	"TraderPulse/internal/domain/repository"
	xlogger "TraderPulse/pkg/logger"
)

var languageNames = map[string]string{
	"es": "Spanish",
	"en": "English",
}

// SentimentService asks the generative backend for a directional judgment
// on a symbol. It absorbs every backend fault locally: the caller always
// receives a populated SentimentResult, degraded to the fixed fallback when
// anything goes wrong.
type SentimentService struct {
	gen      repository.TextGenerator
	logger   *xlogger.Logger
	metrics  repository.Metrics
	language string
}

// NewSentimentService creates a sentiment analyzer for the configured language.
func NewSentimentService(gen repository.TextGenerator, l *xlogger.Logger, m repository.Metrics, language string) *SentimentService {
	return &SentimentService{
		gen:      gen,
		logger:   l,
		metrics:  m,
		language: language,
	}
}

var _ repository.SentimentAnalyzer = (*SentimentService)(nil)

// AnalyzeSentiment never fails outward. Transport errors, malformed payloads,
// and out-of-contract labels all degrade to the fallback tuple.
func (s *SentimentService) AnalyzeSentiment(ctx context.Context, symbol string, quote *models.RealtimeQuote) models.SentimentResult {
	prompt, err := s.buildPrompt(symbol, quote)
	if err != nil {
		return s.fallback(symbol, "prompt", err)
	}

	raw, err := s.gen.GenerateJSON(ctx, prompt)
	if err != nil {
		return s.fallback(symbol, "generate", err)
	}

	var result models.SentimentResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return s.fallback(symbol, "parse", err)
	}
	if !result.Sentiment.Valid() || result.Justification == "" {
		return s.fallback(symbol, "schema",
			fmt.Errorf("out-of-contract result: sentiment=%q", result.Sentiment))
	}

	return result
}

func (s *SentimentService) buildPrompt(symbol string, quote *models.RealtimeQuote) (string, error) {
	quoteJSON, err := json.Marshal(quote)
	if err != nil {
		return "", fmt.Errorf("marshal quote context: %w", err)
	}

	language, ok := languageNames[s.language]
	if !ok {
		language = languageNames["es"]
	}

	return fmt.Sprintf(`Act as a financial analyst. Analyze the following market data for %s:
%s

Provide a sentiment analysis.
Output must be strict JSON with the following schema:
{
    "sentiment": "Bullish" | "Bearish" | "Neutral",
    "justification": "A brief explanation in %s (max 2 sentences)."
}`, symbol, quoteJSON, language), nil
}

func (s *SentimentService) fallback(symbol, reason string, err error) models.SentimentResult {
	s.logger.Warn("sentiment analysis degraded",
		xlogger.String("symbol", symbol),
		xlogger.String("reason", reason),
		xlogger.Error(err),
	)
	s.metrics.RecordSentimentFallback(reason)
	return models.FallbackSentiment(s.language)
}
