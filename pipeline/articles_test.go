package pipeline_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/fwojciec/nicobar"
	"github.com/fwojciec/nicobar/aitext"
	"github.com/fwojciec/nicobar/mock"
	"github.com/fwojciec/nicobar/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func testPrompt() nicobar.ArticlePrompt {
	return nicobar.ArticlePrompt{
		Task:     "write",
		Topic:    "goroutines",
		Style:    "tutorial",
		Tone:     "friendly",
		Audience: "beginners",
		Length:   "short",
	}
}

const fencedAnswer = "Sure!\n```json\n" +
	`{"content":"Hello","tags":["go"],"estimatedReadingTimeMinutes":"3","relatedTopicsTags":[],"title":"T"}` +
	"\n```"

func newArticles(asker nicobar.Asker, store nicobar.ArticleService) *pipeline.Articles {
	return &pipeline.Articles{
		Asker: asker,
		Store: store,
		Text:  aitext.NewPipeline(nicobar.FencedDialect, aitext.WithClock(func() time.Time { return fixedNow })),
	}
}

func TestArticles_GenerateUnsaved(t *testing.T) {
	t.Parallel()

	t.Run("asks with built prompt and maps answer", func(t *testing.T) {
		t.Parallel()

		var asked string
		asker := &mock.Asker{
			AskFn: func(ctx context.Context, prompt string) (string, error) {
				asked = prompt
				return fencedAnswer, nil
			},
		}

		got, err := newArticles(asker, nil).GenerateUnsaved(context.Background(), testPrompt())

		require.NoError(t, err)
		assert.Equal(t, "Hello", got.Content)
		assert.Equal(t, 3, got.EstimatedReadingTimeMinutes)
		assert.Equal(t, fixedNow, got.Date)
		assert.Equal(t, testPrompt(), got.ArticlePrompt)
		assert.Contains(t, asked, "Topic: goroutines")
		assert.True(t, strings.Contains(asked, "```json"), "fenced dialect asks for a fenced block")
	})

	t.Run("rejects incomplete prompt without asking", func(t *testing.T) {
		t.Parallel()

		asker := &mock.Asker{
			AskFn: func(ctx context.Context, prompt string) (string, error) {
				t.Fatal("asker must not be called")
				return "", nil
			},
		}
		prompt := testPrompt()
		prompt.Audience = ""

		_, err := newArticles(asker, nil).GenerateUnsaved(context.Background(), prompt)

		require.Error(t, err)
		assert.Equal(t, nicobar.EINVALID, nicobar.ErrorCode(err))
	})

	t.Run("returns ai service error unchanged", func(t *testing.T) {
		t.Parallel()

		aiErr := &nicobar.AIServiceError{Provider: "gemini", Message: "quota exceeded"}
		asker := &mock.Asker{
			AskFn: func(ctx context.Context, prompt string) (string, error) {
				return "", aiErr
			},
		}

		_, err := newArticles(asker, nil).GenerateUnsaved(context.Background(), testPrompt())

		assert.Same(t, aiErr, err)
	})

	t.Run("reports stage error for unfenced answer", func(t *testing.T) {
		t.Parallel()

		asker := &mock.Asker{
			AskFn: func(ctx context.Context, prompt string) (string, error) {
				return `{"content":"Hello"}`, nil
			},
		}

		_, err := newArticles(asker, nil).GenerateUnsaved(context.Background(), testPrompt())

		require.Error(t, err)
		assert.Equal(t, nicobar.KindExtractResponse, nicobar.KindOf(err))
	})
}

func TestArticles_Generate(t *testing.T) {
	t.Parallel()

	t.Run("stores generated article", func(t *testing.T) {
		t.Parallel()

		asker := &mock.Asker{
			AskFn: func(ctx context.Context, prompt string) (string, error) {
				return fencedAnswer, nil
			},
		}
		var stored nicobar.UnsavedArticle
		store := &mock.ArticleService{
			CreateArticleFn: func(ctx context.Context, article nicobar.UnsavedArticle) (*nicobar.Article, error) {
				stored = article
				return &nicobar.Article{ID: "id-1", UnsavedArticle: article}, nil
			},
		}

		got, err := newArticles(asker, store).Generate(context.Background(), testPrompt())

		require.NoError(t, err)
		assert.Equal(t, "id-1", got.ID)
		assert.Equal(t, "Hello", stored.Content)
	})

	t.Run("returns store error", func(t *testing.T) {
		t.Parallel()

		asker := &mock.Asker{
			AskFn: func(ctx context.Context, prompt string) (string, error) {
				return fencedAnswer, nil
			},
		}
		store := &mock.ArticleService{
			CreateArticleFn: func(ctx context.Context, article nicobar.UnsavedArticle) (*nicobar.Article, error) {
				return nil, nicobar.StoreErrorf(nicobar.KindCreateArticle, nicobar.EINTERNAL, "disk full")
			},
		}

		_, err := newArticles(asker, store).Generate(context.Background(), testPrompt())

		require.Error(t, err)
		assert.Equal(t, nicobar.KindCreateArticle, nicobar.KindOf(err))
	})
}

func TestArticles_Find(t *testing.T) {
	t.Parallel()

	t.Run("returns summaries", func(t *testing.T) {
		t.Parallel()

		store := &mock.ArticleService{
			FindArticlesFn: func(ctx context.Context, filter nicobar.ArticleFilter) ([]*nicobar.Article, error) {
				return []*nicobar.Article{{
					ID: "a",
					UnsavedArticle: nicobar.UnsavedArticle{
						Title:   "Title",
						Content: "# Title\n\nSecond paragraph.\n\nThird.",
						Tags:    []string{"go"},
					},
				}}, nil
			},
		}

		got, err := newArticles(nil, store).Find(context.Background(), nicobar.ArticleFilter{})

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "a", got[0].ID)
		assert.Equal(t, "Second paragraph.", got[0].Content)
	})

	t.Run("passes not found through", func(t *testing.T) {
		t.Parallel()

		store := &mock.ArticleService{
			FindArticlesFn: func(ctx context.Context, filter nicobar.ArticleFilter) ([]*nicobar.Article, error) {
				return nil, nicobar.StoreErrorf(nicobar.KindFindManyArticles, nicobar.ENOTFOUND, "no articles found")
			},
		}

		_, err := newArticles(nil, store).Find(context.Background(), nicobar.ArticleFilter{})

		assert.Equal(t, nicobar.KindFindManyArticles, nicobar.KindOf(err))
		assert.Equal(t, nicobar.ENOTFOUND, nicobar.ErrorCode(err))
	})
}

func TestArticles_Get(t *testing.T) {
	t.Parallel()

	_, err := newArticles(nil, &mock.ArticleService{}).Get(context.Background(), "")

	assert.Equal(t, nicobar.EINVALID, nicobar.ErrorCode(err))
}
