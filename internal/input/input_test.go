package input

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadReviews(t *testing.T) {
	t.Run("text file one review per line", func(t *testing.T) {
		path := writeTemp(t, "reviews.txt", "Great product\n\n  Too expensive  \nJust okay\n")

		reviews, err := LoadReviews(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"Great product", "Too expensive", "Just okay"}, reviews)
	})

	t.Run("json array of strings", func(t *testing.T) {
		path := writeTemp(t, "reviews.json", `["first review", "second review"]`)

		reviews, err := LoadReviews(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"first review", "second review"}, reviews)
	})

	t.Run("json object with reviews array", func(t *testing.T) {
		path := writeTemp(t, "reviews.json", `{"reviews": ["a", "b", "c"]}`)

		reviews, err := LoadReviews(path)
		require.NoError(t, err)
		assert.Len(t, reviews, 3)
	})

	t.Run("json object without reviews key", func(t *testing.T) {
		path := writeTemp(t, "reviews.json", `{"items": ["a"]}`)

		_, err := LoadReviews(path)
		assert.Error(t, err)
	})

	t.Run("invalid json", func(t *testing.T) {
		path := writeTemp(t, "reviews.json", `not json at all`)

		_, err := LoadReviews(path)
		assert.Error(t, err)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		path := writeTemp(t, "reviews.csv", "a,b")

		_, err := LoadReviews(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported file type")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadReviews(filepath.Join(t.TempDir(), "nope.txt"))
		assert.Error(t, err)
	})

	t.Run("empty text file", func(t *testing.T) {
		path := writeTemp(t, "reviews.txt", "\n\n")

		reviews, err := LoadReviews(path)
		require.NoError(t, err)
		assert.Empty(t, reviews)
	})
}

func TestSampleReviews(t *testing.T) {
	reviews := SampleReviews()
	assert.NotEmpty(t, reviews)
	for _, r := range reviews {
		assert.NotEmpty(t, r)
	}
}
