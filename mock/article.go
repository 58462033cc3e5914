package mock

import (
	"context"

	"github.com/fwojciec/nicobar"
)

var (
	_ nicobar.ArticleService   = (*ArticleService)(nil)
	_ nicobar.ArticleGenerator = (*ArticleGenerator)(nil)
)

// ArticleService is a mock implementation of nicobar.ArticleService.
type ArticleService struct {
	CreateArticleFn   func(ctx context.Context, article nicobar.UnsavedArticle) (*nicobar.Article, error)
	FindArticleByIDFn func(ctx context.Context, id string) (*nicobar.Article, error)
	FindArticlesFn    func(ctx context.Context, filter nicobar.ArticleFilter) ([]*nicobar.Article, error)
}

func (s *ArticleService) CreateArticle(ctx context.Context, article nicobar.UnsavedArticle) (*nicobar.Article, error) {
	return s.CreateArticleFn(ctx, article)
}

func (s *ArticleService) FindArticleByID(ctx context.Context, id string) (*nicobar.Article, error) {
	return s.FindArticleByIDFn(ctx, id)
}

func (s *ArticleService) FindArticles(ctx context.Context, filter nicobar.ArticleFilter) ([]*nicobar.Article, error) {
	return s.FindArticlesFn(ctx, filter)
}

// ArticleGenerator is a mock implementation of nicobar.ArticleGenerator.
type ArticleGenerator struct {
	GenerateUnsavedFn func(ctx context.Context, prompt nicobar.ArticlePrompt) (*nicobar.UnsavedArticle, error)
	GenerateFn        func(ctx context.Context, prompt nicobar.ArticlePrompt) (*nicobar.Article, error)
}

func (g *ArticleGenerator) GenerateUnsaved(ctx context.Context, prompt nicobar.ArticlePrompt) (*nicobar.UnsavedArticle, error) {
	return g.GenerateUnsavedFn(ctx, prompt)
}

func (g *ArticleGenerator) Generate(ctx context.Context, prompt nicobar.ArticlePrompt) (*nicobar.Article, error) {
	return g.GenerateFn(ctx, prompt)
}
