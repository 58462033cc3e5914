package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/nicobar"
)

// Ensure LoggingArticleService implements nicobar.ArticleService.
var _ nicobar.ArticleService = (*LoggingArticleService)(nil)

// LoggingArticleService wraps an ArticleService with logging.
type LoggingArticleService struct {
	next   nicobar.ArticleService
	logger *slog.Logger
}

// NewLoggingArticleService creates a new LoggingArticleService.
func NewLoggingArticleService(next nicobar.ArticleService, logger *slog.Logger) *LoggingArticleService {
	return &LoggingArticleService{next: next, logger: logger}
}

func (s *LoggingArticleService) CreateArticle(ctx context.Context, article nicobar.UnsavedArticle) (saved *nicobar.Article, err error) {
	defer func(begin time.Time) {
		id := ""
		if saved != nil {
			id = saved.ID
		}
		logResult(s.logger, "create article", begin, err, "id", id, "title", article.Title)
	}(time.Now())

	return s.next.CreateArticle(ctx, article)
}

func (s *LoggingArticleService) FindArticleByID(ctx context.Context, id string) (article *nicobar.Article, err error) {
	defer func(begin time.Time) {
		logResult(s.logger, "find article", begin, err, "id", id)
	}(time.Now())

	return s.next.FindArticleByID(ctx, id)
}

func (s *LoggingArticleService) FindArticles(ctx context.Context, filter nicobar.ArticleFilter) (articles []*nicobar.Article, err error) {
	defer func(begin time.Time) {
		attrs := []any{"count", len(articles), "offset", filter.Offset, "limit", filter.Limit}
		if filter.Tag != nil {
			attrs = append(attrs, "tag", *filter.Tag)
		}
		logResult(s.logger, "find articles", begin, err, attrs...)
	}(time.Now())

	return s.next.FindArticles(ctx, filter)
}
