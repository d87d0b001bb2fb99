package llm

import (
	"context"
	"strings"
)

// Request describes a single text-generation call: one system-role
// instruction establishing the persona, one user-role message with the
// task-specific prompt, and sampling settings.
type Request struct {
	System      string
	User        string
	Temperature float64
	MaxTokens   int64
}

// Generator abstracts a remote text-generation service so the analyzer is
// testable without live network access.
type Generator interface {
	Generate(ctx context.Context, req Request) (string, error)
	ModelName() string
}

// CleanJSONResponse strips markdown fencing and surrounding prose from a
// model response that is expected to contain a JSON object.
func CleanJSONResponse(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	// Some model responses include extra prose around JSON.
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start >= 0 && end > start {
		content = content[start : end+1]
	}
	return content
}
