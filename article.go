package nicobar

import (
	"context"
	"encoding/json"
	"strings"
	"time"
	"unicode/utf8"
)

// ArticlePrompt describes the article a caller asks the AI backend to write.
type ArticlePrompt struct {
	Task     string `json:"task"`
	Topic    string `json:"topic"`
	Style    string `json:"style"`
	Tone     string `json:"tone"`
	Audience string `json:"audience"`
	Length   string `json:"length"`
}

// Validate returns an error if any prompt field is empty.
func (p *ArticlePrompt) Validate() error {
	fields := []struct{ name, value string }{
		{"task", p.Task},
		{"topic", p.Topic},
		{"style", p.Style},
		{"tone", p.Tone},
		{"audience", p.Audience},
		{"length", p.Length},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return Errorf(EINVALID, "article prompt %s required", f.name)
		}
	}
	return nil
}

// RawArticle is the unvalidated shape decoded from an AI response. Every
// field except the caller-supplied prompt is kept as raw JSON so that type
// checks can happen field by field.
type RawArticle struct {
	Content                     json.RawMessage `json:"content"`
	Title                       json.RawMessage `json:"title"`
	Tags                        json.RawMessage `json:"tags"`
	RelatedTopicsTags           json.RawMessage `json:"relatedTopicsTags"`
	EstimatedReadingTimeMinutes json.RawMessage `json:"estimatedReadingTimeMinutes"`
	ArticlePrompt               *ArticlePrompt  `json:"articlePrompt"`
}

// UnsavedArticle is a validated article that has not been persisted yet.
type UnsavedArticle struct {
	Content                     string        `json:"content"`
	Title                       string        `json:"title"`
	FormattedContent            string        `json:"formatted_content"`
	Date                        time.Time     `json:"date"`
	Tags                        []string      `json:"tags"`
	RelatedTopicsTags           []string      `json:"relatedTopicsTags"`
	EstimatedReadingTimeMinutes int           `json:"estimatedReadingTimeMinutes"`
	ArticlePrompt               ArticlePrompt `json:"articlePrompt"`
}

// Article is a persisted article.
type Article struct {
	ID string `json:"id"`
	UnsavedArticle
}

// SimpleArticle is the list projection of an article.
type SimpleArticle struct {
	ID                          string    `json:"id"`
	Title                       string    `json:"title"`
	Content                     string    `json:"content"`
	Tags                        []string  `json:"tags"`
	EstimatedReadingTimeMinutes int       `json:"estimatedReadingTimeMinutes"`
	Date                        time.Time `json:"date"`
}

// summaryRunes caps the summary taken from single-paragraph articles.
const summaryRunes = 200

// Simplify returns the list projection of the article. The summary is the
// second paragraph when the content has several, otherwise the first
// summaryRunes characters.
func (a *Article) Simplify() SimpleArticle {
	return SimpleArticle{
		ID:                          a.ID,
		Title:                       a.Title,
		Content:                     Summarize(a.Content),
		Tags:                        a.Tags,
		EstimatedReadingTimeMinutes: a.EstimatedReadingTimeMinutes,
		Date:                        a.Date,
	}
}

// Summarize returns a short preview of markdown content.
func Summarize(content string) string {
	paragraphs := strings.Split(content, "\n\n")
	if len(paragraphs) > 1 {
		return strings.TrimSpace(paragraphs[1])
	}
	if utf8.RuneCountInString(content) <= summaryRunes {
		return content
	}
	return string([]rune(content)[:summaryRunes])
}

// ArticleService represents a service for persisting articles.
type ArticleService interface {
	// CreateArticle persists the article and returns it with its new ID.
	// Failures are reported as a StoreError of kind KindCreateArticle.
	CreateArticle(ctx context.Context, article UnsavedArticle) (*Article, error)

	// FindArticleByID retrieves an article by ID.
	// A missing article is a StoreError of kind KindFindArticleByID with code ENOTFOUND.
	FindArticleByID(ctx context.Context, id string) (*Article, error)

	// FindArticles retrieves articles matching the filter, newest first.
	// An empty result is a StoreError of kind KindFindManyArticles with code ENOTFOUND.
	FindArticles(ctx context.Context, filter ArticleFilter) ([]*Article, error)
}

// ArticleGenerator writes articles with an AI backend.
type ArticleGenerator interface {
	// GenerateUnsaved asks the backend for an article and validates the answer.
	GenerateUnsaved(ctx context.Context, prompt ArticlePrompt) (*UnsavedArticle, error)

	// Generate is GenerateUnsaved followed by CreateArticle.
	Generate(ctx context.Context, prompt ArticlePrompt) (*Article, error)
}

// ArticleReader serves stored articles to readers.
type ArticleReader interface {
	// Find returns the list projection of matching articles, newest first.
	Find(ctx context.Context, filter ArticleFilter) ([]SimpleArticle, error)

	// Get returns the article with the given ID.
	Get(ctx context.Context, id string) (*Article, error)
}

// ArticleFilter represents a filter for FindArticles.
type ArticleFilter struct {
	Tag *string `json:"tag"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
