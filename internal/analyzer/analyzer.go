package analyzer

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/akeller/revu/internal/llm"
	"github.com/akeller/revu/internal/models"
)

// Analyzer classifies customer reviews and aggregates the results into
// reports. Every model call is synchronous; batches are processed strictly
// one review at a time in input order.
type Analyzer struct {
	gen         llm.Generator
	temperature float64
	logger      *slog.Logger
}

// New creates an Analyzer. temperature controls sampling for sentiment
// extraction; summary generation uses its own fixed setting.
func New(gen llm.Generator, temperature float64) *Analyzer {
	return &Analyzer{
		gen:         gen,
		temperature: temperature,
		logger:      slog.Default(),
	}
}

// Analyze classifies a single review. Remote-call, parse, and validation
// failures never propagate: the returned record degrades to neutral defaults
// with the failure message attached under Error.
func (a *Analyzer) Analyze(ctx context.Context, review string) models.Record {
	text, err := a.gen.Generate(ctx, llm.Request{
		System:      sentimentSystemPrompt,
		User:        buildSentimentPrompt(review),
		Temperature: a.temperature,
	})
	if err != nil {
		a.logger.Warn("sentiment extraction failed",
			slog.String("error", err.Error()))
		return models.FallbackRecord(review, err.Error())
	}

	var parsed struct {
		Sentiment models.Sentiment `json:"sentiment"`
		Score     int              `json:"score"`
		KeyPoints []string         `json:"key_points"`
		Emotions  []string         `json:"emotions"`
	}
	cleaned := llm.CleanJSONResponse(text)
	if err := json.Unmarshal([]byte(cleaned), &parsed); err != nil {
		a.logger.Warn("sentiment response is not valid JSON",
			slog.String("error", err.Error()),
			slog.String("content", cleaned))
		return models.FallbackRecord(review, fmt.Sprintf("parse model response: %v", err))
	}

	// Validation failures are treated the same as transport failures rather
	// than passing unvalidated model output through.
	if !parsed.Sentiment.Valid() {
		a.logger.Warn("model returned unknown sentiment label",
			slog.String("sentiment", string(parsed.Sentiment)))
		return models.FallbackRecord(review, fmt.Sprintf("invalid sentiment label: %q", parsed.Sentiment))
	}
	if parsed.Score < 1 || parsed.Score > 5 {
		a.logger.Warn("model returned out-of-range score",
			slog.Int("score", parsed.Score))
		return models.FallbackRecord(review, fmt.Sprintf("score out of range: %d", parsed.Score))
	}

	if parsed.KeyPoints == nil {
		parsed.KeyPoints = []string{}
	}
	if parsed.Emotions == nil {
		parsed.Emotions = []string{}
	}

	return models.Record{
		Review:    review,
		Sentiment: parsed.Sentiment,
		Score:     parsed.Score,
		KeyPoints: parsed.KeyPoints,
		Emotions:  parsed.Emotions,
	}
}

// AnalyzeBatch analyzes reviews sequentially, preserving input order. The
// optional progress callback is invoked after each review with the number
// completed so far and the total.
func (a *Analyzer) AnalyzeBatch(ctx context.Context, reviews []string, progress func(done, total int)) []models.Record {
	records := make([]models.Record, 0, len(reviews))
	for i, review := range reviews {
		records = append(records, a.Analyze(ctx, review))
		if progress != nil {
			progress(i+1, len(reviews))
		}
	}
	return records
}
