package output

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/akeller/revu/internal/models"
)

// RenderReport prints the report to the UI as colored tables.
func (u *UI) RenderReport(report models.Report) error {
	fmt.Fprintf(u.Out, "\n%s\n\n", Cyan("REVIEW ANALYSIS REPORT"))
	fmt.Fprintf(u.Out, "Total reviews:  %d\n", report.TotalReviews)
	fmt.Fprintf(u.Out, "Average rating: %s / 5\n", RatingColor(report.AverageRating))
	if report.FailedReviews > 0 {
		fmt.Fprintf(u.Out, "Failed:         %d\n", report.FailedReviews)
	}
	fmt.Fprintln(u.Out)

	dist := u.Table([]string{"Sentiment", "Count", "Percentage"})
	rows := []struct {
		label models.Sentiment
		pct   float64
	}{
		{models.SentimentPositive, report.PositivePercentage},
		{models.SentimentNegative, report.NegativePercentage},
		{models.SentimentNeutral, report.NeutralPercentage},
	}
	for _, r := range rows {
		_ = dist.Append([]string{
			SentimentColor(r.label),
			fmt.Sprintf("%d", report.SentimentDistribution[r.label]),
			fmt.Sprintf("%.1f%%", r.pct),
		})
	}
	if err := dist.Render(); err != nil {
		return err
	}

	fmt.Fprintf(u.Out, "\n%s\n\n%s\n\n", Cyan("EXECUTIVE SUMMARY"), report.Summary)

	details := u.Table([]string{"#", "Sentiment", "Score", "Review"})
	for i, rec := range report.DetailedResults {
		review := rec.Review
		if len(review) > 60 {
			review = review[:60] + "..."
		}
		_ = details.Append([]string{
			fmt.Sprintf("%d", i+1),
			SentimentColor(rec.Sentiment),
			fmt.Sprintf("%d", rec.Score),
			review,
		})
	}
	return details.Render()
}

// RenderMarkdown prints the report as a markdown document.
func (u *UI) RenderMarkdown(report models.Report) {
	fmt.Fprintln(u.Out, "# Review Analysis Report")
	fmt.Fprintln(u.Out)
	fmt.Fprintf(u.Out, "- Total reviews: %d\n", report.TotalReviews)
	fmt.Fprintf(u.Out, "- Average rating: %.2f / 5\n", report.AverageRating)
	fmt.Fprintf(u.Out, "- Failed analyses: %d\n", report.FailedReviews)
	fmt.Fprintln(u.Out)
	fmt.Fprintln(u.Out, "| Sentiment | Count | Percentage |")
	fmt.Fprintln(u.Out, "|-----------|-------|------------|")
	fmt.Fprintf(u.Out, "| positive | %d | %.1f%% |\n", report.SentimentDistribution[models.SentimentPositive], report.PositivePercentage)
	fmt.Fprintf(u.Out, "| negative | %d | %.1f%% |\n", report.SentimentDistribution[models.SentimentNegative], report.NegativePercentage)
	fmt.Fprintf(u.Out, "| neutral | %d | %.1f%% |\n", report.SentimentDistribution[models.SentimentNeutral], report.NeutralPercentage)
	fmt.Fprintln(u.Out)
	fmt.Fprintln(u.Out, "## Executive Summary")
	fmt.Fprintln(u.Out)
	fmt.Fprintln(u.Out, report.Summary)
	fmt.Fprintln(u.Out)
	fmt.Fprintln(u.Out, "## Reviews")
	fmt.Fprintln(u.Out)
	for i, rec := range report.DetailedResults {
		review := strings.ReplaceAll(rec.Review, "\n", " ")
		fmt.Fprintf(u.Out, "%d. **%s** (%d/5) - %s\n", i+1, rec.Sentiment, rec.Score, review)
	}
}

// RenderJSON prints the report as indented JSON.
func (u *UI) RenderJSON(report models.Report) error {
	enc := json.NewEncoder(u.Out)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

// SaveReport writes the report to path as indented JSON. This is the single
// persisted artifact of a run.
func SaveReport(report models.Report, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
