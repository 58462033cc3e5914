package pipeline

import (
	"context"

	"github.com/fwojciec/nicobar"
	"github.com/fwojciec/nicobar/aitext"
)

// Ensure Articles implements nicobar.ArticleGenerator and nicobar.ArticleReader.
var (
	_ nicobar.ArticleGenerator = (*Articles)(nil)
	_ nicobar.ArticleReader    = (*Articles)(nil)
)

// Articles generates articles with an AI backend and reads them back from a store.
type Articles struct {
	Asker nicobar.Asker
	Store nicobar.ArticleService
	Text  *aitext.Pipeline
}

// GenerateUnsaved asks the backend for an article and runs the response
// through the text pipeline.
func (a *Articles) GenerateUnsaved(ctx context.Context, prompt nicobar.ArticlePrompt) (*nicobar.UnsavedArticle, error) {
	if err := prompt.Validate(); err != nil {
		return nil, err
	}

	answer, err := a.Asker.Ask(ctx, aitext.BuildPrompt(prompt, a.Text.Dialect()))
	if err != nil {
		return nil, err
	}
	return a.Text.Process(answer, prompt)
}

// Generate generates an article and stores it.
func (a *Articles) Generate(ctx context.Context, prompt nicobar.ArticlePrompt) (*nicobar.Article, error) {
	unsaved, err := a.GenerateUnsaved(ctx, prompt)
	if err != nil {
		return nil, err
	}
	return a.Store.CreateArticle(ctx, *unsaved)
}

// Find returns the list projection of matching articles, newest first.
func (a *Articles) Find(ctx context.Context, filter nicobar.ArticleFilter) ([]nicobar.SimpleArticle, error) {
	articles, err := a.Store.FindArticles(ctx, filter)
	if err != nil {
		return nil, err
	}
	simples := make([]nicobar.SimpleArticle, len(articles))
	for i, article := range articles {
		simples[i] = article.Simplify()
	}
	return simples, nil
}

// Get returns the article with the given ID.
func (a *Articles) Get(ctx context.Context, id string) (*nicobar.Article, error) {
	if id == "" {
		return nil, nicobar.Errorf(nicobar.EINVALID, "article ID required")
	}
	return a.Store.FindArticleByID(ctx, id)
}
