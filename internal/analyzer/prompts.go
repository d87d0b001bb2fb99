package analyzer

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/akeller/revu/internal/models"
)

const sentimentSystemPrompt = "You are a sentiment analysis expert. Always respond with valid JSON."

const summarySystemPrompt = "You are a business analyst expert at summarizing customer feedback."

// buildSentimentPrompt constructs the user prompt for single-review analysis.
// The review text is embedded verbatim.
func buildSentimentPrompt(review string) string {
	var sb strings.Builder
	sb.WriteString(`Analyze the sentiment of this customer review. Provide your response in JSON format with:
- sentiment: "positive", "negative", or "neutral"
- score: a number from 1-5 (1=very negative, 5=very positive)
- key_points: list of main points mentioned
- emotions: list of emotions detected (e.g., satisfied, frustrated, excited)

Review: `)
	sb.WriteString(review)
	sb.WriteString("\n\nRespond with valid JSON only.")
	return sb.String()
}

// summaryData is the aggregate embedded into the executive-summary prompt.
type summaryData struct {
	TotalReviews       int                      `json:"total_reviews"`
	SentimentBreakdown map[models.Sentiment]int `json:"sentiment_breakdown"`
	AverageScore       float64                  `json:"average_score"`
	CommonPoints       []string                 `json:"common_points"`
	CommonEmotions     []string                 `json:"common_emotions"`
}

// buildSummaryPrompt constructs the user prompt for executive-summary
// generation from the aggregate data and a handful of sample reviews.
func buildSummaryPrompt(data summaryData, samples []string) (string, error) {
	dataJSON, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal summary data: %w", err)
	}
	samplesJSON, err := json.MarshalIndent(samples, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal sample reviews: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("Based on the following customer review analysis data, generate a concise executive summary:\n\n")
	sb.WriteString("Data:\n")
	sb.Write(dataJSON)
	sb.WriteString("\n\nSample reviews:\n")
	sb.Write(samplesJSON)
	sb.WriteString(`

Generate a professional summary that includes:
1. Overall sentiment overview
2. Key themes and patterns
3. Main customer concerns or praises
4. Actionable insights for business improvement

Keep it under 300 words.`)
	return sb.String(), nil
}
