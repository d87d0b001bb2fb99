package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/akeller/revu/internal/models"
)

// ReviewAnalyzer is the subset of the analyzer the MCP tools need.
type ReviewAnalyzer interface {
	Analyze(ctx context.Context, review string) models.Record
	AnalyzeBatch(ctx context.Context, reviews []string, progress func(done, total int)) []models.Record
	BuildReport(ctx context.Context, records []models.Record) models.Report
}

// Server exposes review sentiment analysis as MCP tools.
type Server struct {
	analyzer ReviewAnalyzer
}

// NewServer creates the MCP server wrapper around an analyzer.
func NewServer(a ReviewAnalyzer) *Server {
	return &Server{analyzer: a}
}

// MCPServer returns a configured mcp-go server with all tools registered.
func (s *Server) MCPServer() *server.MCPServer {
	srv := server.NewMCPServer("revu", "1.0.0", server.WithToolCapabilities(true))

	srv.AddTool(s.analyzeReviewTool())
	srv.AddTool(s.reviewReportTool())

	return srv
}

// ServeStdio starts the stdio transport, blocking until ctx is cancelled.
func (s *Server) ServeStdio(ctx context.Context) error {
	srv := s.MCPServer()
	stdioServer := server.NewStdioServer(srv)
	return stdioServer.Listen(ctx, os.Stdin, os.Stdout)
}

// revu_analyze_review
func (s *Server) analyzeReviewTool() (mcp.Tool, server.ToolHandlerFunc) {
	tool := mcp.NewTool("revu_analyze_review",
		mcp.WithDescription("Analyze the sentiment of a single customer review. Returns a JSON object with sentiment (positive/negative/neutral), score (1-5), key_points, and emotions."),
		mcp.WithString("review", mcp.Required(), mcp.Description("The review text to analyze")),
	)
	return tool, s.handleAnalyzeReview
}

func (s *Server) handleAnalyzeReview(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	review, err := request.RequireString("review")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("missing review argument: %v", err)), nil
	}

	record := s.analyzer.Analyze(ctx, review)
	data, err := json.Marshal(record)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal record: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

// revu_review_report
func (s *Server) reviewReportTool() (mcp.Tool, server.ToolHandlerFunc) {
	tool := mcp.NewTool("revu_review_report",
		mcp.WithDescription("Analyze a batch of customer reviews and build a full report: sentiment distribution, average rating, percentages, an executive summary, and per-review results."),
		mcp.WithArray("reviews", mcp.Required(), mcp.Description("The review texts to analyze"),
			mcp.WithStringItems()),
	)
	return tool, s.handleReviewReport
}

func (s *Server) handleReviewReport(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	reviews := request.GetStringSlice("reviews", nil)
	if len(reviews) == 0 {
		return mcp.NewToolResultError("reviews must be a non-empty array of strings"), nil
	}

	records := s.analyzer.AnalyzeBatch(ctx, reviews, nil)
	report := s.analyzer.BuildReport(ctx, records)

	data, err := json.Marshal(report)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal report: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
