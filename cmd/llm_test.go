package cmd

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetProviderConfig(t *testing.T) {
	t.Helper()
	viper.Reset()
	viper.SetDefault("provider", "openai")
	viper.SetDefault("openai.model", "gpt-4o-mini")
	viper.SetDefault("anthropic.model", "claude-haiku-4-5-20251001")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("ANTHROPIC_API_KEY", "")
}

func TestNewGenerator_UnknownProvider(t *testing.T) {
	resetProviderConfig(t)
	viper.Set("provider", "cohere")

	_, err := newGenerator()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown provider")
}

func TestNewGenerator_MissingOpenAIKey(t *testing.T) {
	resetProviderConfig(t)

	_, err := newGenerator()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OPENAI_API_KEY")
}

func TestNewGenerator_MissingAnthropicKey(t *testing.T) {
	resetProviderConfig(t)
	viper.Set("provider", "anthropic")

	_, err := newGenerator()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ANTHROPIC_API_KEY")
}

func TestNewGenerator_OpenAI(t *testing.T) {
	resetProviderConfig(t)
	viper.Set("openai.api_key", "sk-test")

	gen, err := newGenerator()
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o-mini", gen.ModelName())
}

func TestNewGenerator_Anthropic(t *testing.T) {
	resetProviderConfig(t)
	viper.Set("provider", "anthropic")
	viper.Set("anthropic.api_key", "sk-ant-test")

	gen, err := newGenerator()
	require.NoError(t, err)
	assert.Equal(t, "claude-haiku-4-5-20251001", gen.ModelName())
}
