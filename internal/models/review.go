package models

import "time"

// Sentiment is the coarse three-way classification of a review.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

// Valid reports whether s is one of the three known labels.
func (s Sentiment) Valid() bool {
	switch s {
	case SentimentPositive, SentimentNegative, SentimentNeutral:
		return true
	}
	return false
}

// Record is the result of analyzing a single customer review.
// Review always holds the input text verbatim. Error is non-empty iff the
// extraction call failed, in which case the record carries neutral defaults.
type Record struct {
	Review    string    `json:"review"`
	Sentiment Sentiment `json:"sentiment"`
	Score     int       `json:"score"` // 1 = very negative, 5 = very positive
	KeyPoints []string  `json:"key_points"`
	Emotions  []string  `json:"emotions"`
	Error     string    `json:"error,omitempty"`
}

// Failed reports whether this record came from a failed extraction.
func (r Record) Failed() bool { return r.Error != "" }

// FallbackRecord returns the neutral record substituted when extraction fails.
func FallbackRecord(review, errMsg string) Record {
	return Record{
		Review:    review,
		Sentiment: SentimentNeutral,
		Score:     3,
		KeyPoints: []string{},
		Emotions:  []string{},
		Error:     errMsg,
	}
}

// Report is the complete analysis output for a batch of reviews.
//
// Percentages are rounded to one decimal independently per label, so they
// may not sum to exactly 100. FailedReviews counts records whose extraction
// failed, so callers can tell "all genuinely neutral" apart from "all failed".
type Report struct {
	ID                    string            `json:"report_id"`
	GeneratedAt           time.Time         `json:"generated_at"`
	TotalReviews          int               `json:"total_reviews"`
	SentimentDistribution map[Sentiment]int `json:"sentiment_distribution"`
	AverageRating         float64           `json:"average_rating"`
	PositivePercentage    float64           `json:"positive_percentage"`
	NegativePercentage    float64           `json:"negative_percentage"`
	NeutralPercentage     float64           `json:"neutral_percentage"`
	FailedReviews         int               `json:"failed_reviews"`
	Summary               string            `json:"summary"`
	DetailedResults       []Record          `json:"detailed_results"`
}
