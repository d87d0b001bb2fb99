package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/akeller/revu/internal/llm"
)

// newGenerator creates an LLM generator for the configured provider, failing
// fast when no credential is configured.
func newGenerator() (llm.Generator, error) {
	provider := viper.GetString("provider")

	switch provider {
	case "openai":
		apiKey := viper.GetString("openai.api_key")
		if apiKey == "" {
			apiKey = os.Getenv("OPENAI_API_KEY")
		}
		if apiKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY not set (set env var or openai.api_key in config)")
		}
		return llm.NewOpenAI(apiKey, viper.GetString("openai.model")), nil

	case "anthropic":
		apiKey := viper.GetString("anthropic.api_key")
		if apiKey == "" {
			apiKey = os.Getenv("ANTHROPIC_API_KEY")
		}
		if apiKey == "" {
			return nil, fmt.Errorf("ANTHROPIC_API_KEY not set (set env var or anthropic.api_key in config)")
		}
		return llm.NewAnthropic(apiKey, viper.GetString("anthropic.model")), nil

	default:
		return nil, fmt.Errorf("unknown provider: %s (use: openai, anthropic)", provider)
	}
}
