package input

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LoadReviews reads review texts from a file. JSON files may contain either
// a top-level array of strings or an object with a "reviews" array; text
// files are split on newlines with blank lines skipped.
func LoadReviews(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return parseJSONReviews(data)
	case ".txt":
		return parseTextReviews(data), nil
	default:
		return nil, fmt.Errorf("unsupported file type %q (use .json or .txt)", filepath.Ext(path))
	}
}

func parseJSONReviews(data []byte) ([]string, error) {
	var reviews []string
	if err := json.Unmarshal(data, &reviews); err == nil {
		return reviews, nil
	}

	var wrapped struct {
		Reviews []string `json:"reviews"`
	}
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return nil, fmt.Errorf("parse reviews JSON: %w", err)
	}
	if wrapped.Reviews == nil {
		return nil, fmt.Errorf(`reviews JSON must be an array of strings or an object with a "reviews" array`)
	}
	return wrapped.Reviews, nil
}

func parseTextReviews(data []byte) []string {
	var reviews []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			reviews = append(reviews, line)
		}
	}
	return reviews
}

// SampleReviews returns a built-in set of reviews for trying the tool
// without a data file.
func SampleReviews() []string {
	return []string{
		"Absolutely love this product! The quality exceeded my expectations and shipping was super fast. Will definitely order again.",
		"Terrible experience. The item arrived broken and customer service took two weeks to respond to my emails.",
		"It's okay. Does what it says but nothing special. The price feels a bit high for what you get.",
		"Best purchase I've made this year. The battery lasts forever and the build quality is fantastic.",
		"Very disappointed. The sizing chart is completely wrong and the return process was a nightmare.",
		"The product works fine. Delivery took a little longer than promised but the packaging was solid.",
		"Customer support was incredibly helpful when I had setup questions. The product itself is intuitive and well designed.",
		"Stopped working after three days. Asked for a refund and still waiting. Would not recommend to anyone.",
	}
}
