package analyzer

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/akeller/revu/internal/llm"
	"github.com/akeller/revu/internal/models"
)

const (
	topKeyPoints      = 10
	topEmotions       = 5
	maxSampleReviews  = 5
	sampleTruncateLen = 200

	// The executive summary is phrased more freely than extraction, so it
	// always uses this setting regardless of the configured temperature.
	summaryTemperature = 0.5
)

// noReviewsSummary is returned by Summarize for an empty record list, with
// no model call made.
const noReviewsSummary = "No reviews were analyzed, so there is nothing to summarize."

// Summarize generates an executive summary of the analyzed reviews. On any
// remote failure it returns a string describing the error instead of
// propagating it.
func (a *Analyzer) Summarize(ctx context.Context, records []models.Record) string {
	if len(records) == 0 {
		return noReviewsSummary
	}

	user, err := buildSummaryPrompt(aggregate(records), sampleReviews(records))
	if err != nil {
		return fmt.Sprintf("Error generating summary: %v", err)
	}

	text, err := a.gen.Generate(ctx, llm.Request{
		System:      summarySystemPrompt,
		User:        user,
		Temperature: summaryTemperature,
	})
	if err != nil {
		a.logger.Warn("summary generation failed",
			slog.String("error", err.Error()))
		return fmt.Sprintf("Error generating summary: %v", err)
	}
	return strings.TrimSpace(text)
}

// BuildReport folds the records into distributional statistics and attaches
// the executive summary. The only remote call is the one delegated to
// Summarize.
func (a *Analyzer) BuildReport(ctx context.Context, records []models.Record) models.Report {
	dist := make(map[models.Sentiment]int)
	scoreSum := 0
	failed := 0
	for _, r := range records {
		dist[r.Sentiment]++
		scoreSum += r.Score
		if r.Failed() {
			failed++
		}
	}

	total := len(records)
	avg := 0.0
	if total > 0 {
		avg = float64(scoreSum) / float64(total)
	}

	return models.Report{
		ID:                    newReportID(),
		GeneratedAt:           time.Now().UTC(),
		TotalReviews:          total,
		SentimentDistribution: dist,
		AverageRating:         round2(avg),
		PositivePercentage:    percentage(dist[models.SentimentPositive], total),
		NegativePercentage:    percentage(dist[models.SentimentNegative], total),
		NeutralPercentage:     percentage(dist[models.SentimentNeutral], total),
		FailedReviews:         failed,
		Summary:               a.Summarize(ctx, records),
		DetailedResults:       records,
	}
}

// aggregate computes the statistics embedded into the summary prompt.
func aggregate(records []models.Record) summaryData {
	breakdown := make(map[models.Sentiment]int)
	scoreSum := 0
	var keyPoints, emotions []string
	for _, r := range records {
		breakdown[r.Sentiment]++
		scoreSum += r.Score
		keyPoints = append(keyPoints, r.KeyPoints...)
		emotions = append(emotions, r.Emotions...)
	}

	avg := 0.0
	if len(records) > 0 {
		avg = float64(scoreSum) / float64(len(records))
	}

	return summaryData{
		TotalReviews:       len(records),
		SentimentBreakdown: breakdown,
		AverageScore:       avg,
		CommonPoints:       topFrequent(keyPoints, topKeyPoints),
		CommonEmotions:     topFrequent(emotions, topEmotions),
	}
}

// topFrequent returns the n most frequent items, most frequent first. Ties
// are broken by first appearance in the input, so the selection is
// deterministic for identical inputs.
func topFrequent(items []string, n int) []string {
	counts := make(map[string]int)
	var order []string
	for _, item := range items {
		if counts[item] == 0 {
			order = append(order, item)
		}
		counts[item]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > n {
		order = order[:n]
	}
	if order == nil {
		order = []string{}
	}
	return order
}

// sampleReviews returns up to maxSampleReviews review texts, each truncated
// to sampleTruncateLen characters with an ellipsis.
func sampleReviews(records []models.Record) []string {
	samples := make([]string, 0, maxSampleReviews)
	for _, r := range records {
		if len(samples) == maxSampleReviews {
			break
		}
		samples = append(samples, truncateReview(r.Review))
	}
	return samples
}

func truncateReview(review string) string {
	if len(review) > sampleTruncateLen {
		return review[:sampleTruncateLen] + "..."
	}
	return review
}

// percentage returns count/total as a percent rounded to one decimal,
// guarding the empty-batch case.
func percentage(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(count)/float64(total)*1000) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// newReportID generates a new ULID string.
func newReportID() string {
	entropy := rand.New(rand.NewSource(time.Now().UnixNano()))
	return ulid.MustNew(ulid.Timestamp(time.Now()), ulid.Monotonic(entropy, 0)).String()
}
