package nicobar_test

import (
	"strings"
	"testing"
	"time"

	"github.com/fwojciec/nicobar"
	"github.com/stretchr/testify/assert"
)

func validPrompt() nicobar.ArticlePrompt {
	return nicobar.ArticlePrompt{
		Task:     "write",
		Topic:    "x",
		Style:    "s",
		Tone:     "t",
		Audience: "a",
		Length:   "short",
	}
}

func TestArticlePrompt_Validate(t *testing.T) {
	t.Parallel()

	t.Run("accepts complete prompt", func(t *testing.T) {
		t.Parallel()

		p := validPrompt()
		assert.NoError(t, p.Validate())
	})

	t.Run("rejects blank field", func(t *testing.T) {
		t.Parallel()

		p := validPrompt()
		p.Tone = "  "

		err := p.Validate()

		assert.Equal(t, nicobar.EINVALID, nicobar.ErrorCode(err))
		assert.Equal(t, "article prompt tone required", nicobar.ErrorMessage(err))
	})
}

func TestSummarize(t *testing.T) {
	t.Parallel()

	t.Run("uses second paragraph", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "Body text.", nicobar.Summarize("# Title\n\nBody text.\n\nMore."))
	})

	t.Run("keeps short single paragraph", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "Just one.", nicobar.Summarize("Just one."))
	})

	t.Run("truncates long single paragraph", func(t *testing.T) {
		t.Parallel()

		content := strings.Repeat("é", 250)
		assert.Equal(t, strings.Repeat("é", 200), nicobar.Summarize(content))
	})
}

func TestArticle_Simplify(t *testing.T) {
	t.Parallel()

	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	a := &nicobar.Article{
		ID: "id-1",
		UnsavedArticle: nicobar.UnsavedArticle{
			Title:                       "Go",
			Content:                     "# Go\n\nGo is fun.",
			Tags:                        []string{"go"},
			EstimatedReadingTimeMinutes: 4,
			Date:                        date,
		},
	}

	got := a.Simplify()

	assert.Equal(t, nicobar.SimpleArticle{
		ID:                          "id-1",
		Title:                       "Go",
		Content:                     "Go is fun.",
		Tags:                        []string{"go"},
		EstimatedReadingTimeMinutes: 4,
		Date:                        date,
	}, got)
}

func TestProvider_Validate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, nicobar.ProviderTCBScans.Validate())
	assert.Equal(t, "https://nifteam.com/", nicobar.ProviderNIFTeam.BaseURL())

	err := nicobar.Provider("mangadex").Validate()
	assert.Equal(t, nicobar.EINVALID, nicobar.ErrorCode(err))
}
