package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/fwojciec/nicobar"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ nicobar.ArticleService = (*ArticleService)(nil)

// ArticleService implements nicobar.ArticleService using SQLite.
type ArticleService struct {
	db *DB
}

// NewArticleService creates a new ArticleService.
func NewArticleService(db *DB) *ArticleService {
	return &ArticleService{db: db}
}

const articleColumns = `id, title, content, formatted_content, date, tags, related_topics_tags, reading_minutes,
	prompt_task, prompt_topic, prompt_style, prompt_tone, prompt_audience, prompt_length`

// CreateArticle stores the article under a new ID.
func (s *ArticleService) CreateArticle(ctx context.Context, article nicobar.UnsavedArticle) (*nicobar.Article, error) {
	if err := article.ArticlePrompt.Validate(); err != nil {
		return nil, err
	}

	tags, err := encodeList(article.Tags)
	if err != nil {
		return nil, nicobar.WrapStoreError(nicobar.KindCreateArticle, err)
	}
	related, err := encodeList(article.RelatedTopicsTags)
	if err != nil {
		return nil, nicobar.WrapStoreError(nicobar.KindCreateArticle, err)
	}

	saved := &nicobar.Article{
		ID:             uuid.New().String(),
		UnsavedArticle: article,
	}
	p := article.ArticlePrompt

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO articles (`+articleColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, saved.ID, article.Title, article.Content, article.FormattedContent, formatDate(article.Date),
		tags, related, article.EstimatedReadingTimeMinutes,
		p.Task, p.Topic, p.Style, p.Tone, p.Audience, p.Length)
	if err != nil {
		return nil, nicobar.WrapStoreError(nicobar.KindCreateArticle, err)
	}

	return saved, nil
}

// FindArticleByID retrieves an article by ID.
func (s *ArticleService) FindArticleByID(ctx context.Context, id string) (*nicobar.Article, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+articleColumns+` FROM articles WHERE id = ?`, id)

	article, err := scanArticle(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nicobar.StoreErrorf(nicobar.KindFindArticleByID, nicobar.ENOTFOUND, "article %q not found", id)
	}
	if err != nil {
		return nil, nicobar.WrapStoreError(nicobar.KindFindArticleByID, err)
	}
	return article, nil
}

// FindArticles retrieves articles matching the filter, newest first.
func (s *ArticleService) FindArticles(ctx context.Context, filter nicobar.ArticleFilter) ([]*nicobar.Article, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + articleColumns + " FROM articles WHERE 1=1")

	if filter.Tag != nil {
		query.WriteString(" AND EXISTS (SELECT 1 FROM json_each(articles.tags) WHERE lower(json_each.value) = ?)")
		args = append(args, strings.ToLower(*filter.Tag))
	}

	query.WriteString(" ORDER BY date DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, nicobar.WrapStoreError(nicobar.KindFindManyArticles, err)
	}
	defer rows.Close()

	var articles []*nicobar.Article
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, nicobar.WrapStoreError(nicobar.KindFindManyArticles, err)
		}
		articles = append(articles, article)
	}
	if err := rows.Err(); err != nil {
		return nil, nicobar.WrapStoreError(nicobar.KindFindManyArticles, err)
	}

	if len(articles) == 0 {
		return nil, nicobar.StoreErrorf(nicobar.KindFindManyArticles, nicobar.ENOTFOUND, "no articles found")
	}
	return articles, nil
}

// scanner is implemented by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanArticle(row scanner) (*nicobar.Article, error) {
	var a nicobar.Article
	var date, tags, related string
	p := &a.ArticlePrompt

	if err := row.Scan(&a.ID, &a.Title, &a.Content, &a.FormattedContent, &date, &tags, &related,
		&a.EstimatedReadingTimeMinutes, &p.Task, &p.Topic, &p.Style, &p.Tone, &p.Audience, &p.Length); err != nil {
		return nil, err
	}

	var err error
	if a.Date, err = parseRFC3339(date, "date"); err != nil {
		return nil, err
	}
	if a.Tags, err = decodeList(tags, "tags"); err != nil {
		return nil, err
	}
	if a.RelatedTopicsTags, err = decodeList(related, "related_topics_tags"); err != nil {
		return nil, err
	}
	return &a, nil
}
