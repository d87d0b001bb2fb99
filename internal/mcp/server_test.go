package mcp

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	mcpgo "github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akeller/revu/internal/models"
)

// fakeAnalyzer implements ReviewAnalyzer with canned per-review records.
type fakeAnalyzer struct {
	analyzed []string
}

func (f *fakeAnalyzer) Analyze(_ context.Context, review string) models.Record {
	f.analyzed = append(f.analyzed, review)
	return models.Record{
		Review:    review,
		Sentiment: models.SentimentPositive,
		Score:     4,
		KeyPoints: []string{"quality"},
		Emotions:  []string{"satisfied"},
	}
}

func (f *fakeAnalyzer) AnalyzeBatch(ctx context.Context, reviews []string, progress func(done, total int)) []models.Record {
	records := make([]models.Record, 0, len(reviews))
	for i, r := range reviews {
		records = append(records, f.Analyze(ctx, r))
		if progress != nil {
			progress(i+1, len(reviews))
		}
	}
	return records
}

func (f *fakeAnalyzer) BuildReport(_ context.Context, records []models.Record) models.Report {
	return models.Report{
		ID:              "01FAKEREPORT",
		TotalReviews:    len(records),
		Summary:         "fake summary",
		DetailedResults: records,
	}
}

// callToolReq builds a mcpgo.CallToolRequest with the given name and arguments.
func callToolReq(name string, args map[string]any) mcpgo.CallToolRequest {
	return mcpgo.CallToolRequest{
		Params: mcpgo.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	}
}

// resultText extracts the concatenated text from a CallToolResult.
func resultText(t *testing.T, result *mcpgo.CallToolResult) string {
	t.Helper()
	var b strings.Builder
	for _, c := range result.Content {
		tc, ok := c.(mcpgo.TextContent)
		if ok {
			b.WriteString(tc.Text)
		}
	}
	return b.String()
}

// resultJSON parses the text result as JSON into the provided target.
func resultJSON(t *testing.T, result *mcpgo.CallToolResult, target any) {
	t.Helper()
	text := resultText(t, result)
	err := json.Unmarshal([]byte(text), target)
	require.NoError(t, err, "failed to parse result JSON: %s", text)
}

func TestHandleAnalyzeReview(t *testing.T) {
	fa := &fakeAnalyzer{}
	srv := NewServer(fa)

	req := callToolReq("revu_analyze_review", map[string]any{"review": "Great product"})
	result, err := srv.handleAnalyzeReview(context.Background(), req)
	require.NoError(t, err)
	require.False(t, result.IsError)

	var record models.Record
	resultJSON(t, result, &record)
	assert.Equal(t, "Great product", record.Review)
	assert.Equal(t, models.SentimentPositive, record.Sentiment)
	assert.Equal(t, 4, record.Score)
	assert.Equal(t, []string{"Great product"}, fa.analyzed)
}

func TestHandleAnalyzeReview_MissingArgument(t *testing.T) {
	srv := NewServer(&fakeAnalyzer{})

	req := callToolReq("revu_analyze_review", nil)
	result, err := srv.handleAnalyzeReview(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestHandleReviewReport(t *testing.T) {
	fa := &fakeAnalyzer{}
	srv := NewServer(fa)

	req := callToolReq("revu_review_report", map[string]any{
		"reviews": []any{"first", "second", "third"},
	})
	result, err := srv.handleReviewReport(context.Background(), req)
	require.NoError(t, err)
	require.False(t, result.IsError)

	var report models.Report
	resultJSON(t, result, &report)
	assert.Equal(t, 3, report.TotalReviews)
	assert.Equal(t, "fake summary", report.Summary)
	require.Len(t, report.DetailedResults, 3)
	assert.Equal(t, "first", report.DetailedResults[0].Review)
	assert.Equal(t, []string{"first", "second", "third"}, fa.analyzed)
}

func TestHandleReviewReport_EmptyReviews(t *testing.T) {
	srv := NewServer(&fakeAnalyzer{})

	req := callToolReq("revu_review_report", map[string]any{"reviews": []any{}})
	result, err := srv.handleReviewReport(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, result.IsError)

	req = callToolReq("revu_review_report", nil)
	result, err = srv.handleReviewReport(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestMCPServerRegistersTools(t *testing.T) {
	srv := NewServer(&fakeAnalyzer{})
	assert.NotNil(t, srv.MCPServer())
}
