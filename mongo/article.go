package mongo

import (
	"context"
	"errors"
	"time"

	"github.com/fwojciec/nicobar"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Compile-time interface verification.
var _ nicobar.ArticleService = (*ArticleService)(nil)

// ArticleService implements nicobar.ArticleService using MongoDB.
type ArticleService struct {
	coll *mongo.Collection
}

// NewArticleService creates a new ArticleService.
func NewArticleService(db *DB) *ArticleService {
	return &ArticleService{coll: db.collection(ArticlesCollection)}
}

type articleDocument struct {
	ID                          string         `bson:"_id"`
	Content                     string         `bson:"content"`
	FormattedContent            string         `bson:"formattedContent,omitempty"`
	Title                       string         `bson:"title"`
	Date                        time.Time      `bson:"date"`
	Tags                        []string       `bson:"tags"`
	RelatedTopicsTags           []string       `bson:"relatedTopicsTags"`
	EstimatedReadingTimeMinutes int            `bson:"estimatedReadingTimeMinutes"`
	ArticlePrompt               promptDocument `bson:"articlePrompt"`
}

type promptDocument struct {
	Task     string `bson:"task"`
	Topic    string `bson:"topic"`
	Style    string `bson:"style"`
	Tone     string `bson:"tone"`
	Audience string `bson:"audience"`
	Length   string `bson:"length"`
}

func newArticleDocument(id string, a nicobar.UnsavedArticle) articleDocument {
	p := a.ArticlePrompt
	return articleDocument{
		ID:                          id,
		Content:                     a.Content,
		FormattedContent:            a.FormattedContent,
		Title:                       a.Title,
		Date:                        a.Date,
		Tags:                        nonNil(a.Tags),
		RelatedTopicsTags:           nonNil(a.RelatedTopicsTags),
		EstimatedReadingTimeMinutes: a.EstimatedReadingTimeMinutes,
		ArticlePrompt: promptDocument{
			Task: p.Task, Topic: p.Topic, Style: p.Style, Tone: p.Tone, Audience: p.Audience, Length: p.Length,
		},
	}
}

func (d articleDocument) article() *nicobar.Article {
	p := d.ArticlePrompt
	return &nicobar.Article{
		ID: d.ID,
		UnsavedArticle: nicobar.UnsavedArticle{
			Content:                     d.Content,
			Title:                       d.Title,
			FormattedContent:            d.FormattedContent,
			Date:                        d.Date.UTC(),
			Tags:                        nonNil(d.Tags),
			RelatedTopicsTags:           nonNil(d.RelatedTopicsTags),
			EstimatedReadingTimeMinutes: d.EstimatedReadingTimeMinutes,
			ArticlePrompt: nicobar.ArticlePrompt{
				Task: p.Task, Topic: p.Topic, Style: p.Style, Tone: p.Tone, Audience: p.Audience, Length: p.Length,
			},
		},
	}
}

// CreateArticle stores the article under a new ID.
func (s *ArticleService) CreateArticle(ctx context.Context, article nicobar.UnsavedArticle) (*nicobar.Article, error) {
	if err := article.ArticlePrompt.Validate(); err != nil {
		return nil, err
	}

	doc := newArticleDocument(uuid.New().String(), article)
	if _, err := s.coll.InsertOne(ctx, doc); err != nil {
		return nil, nicobar.WrapStoreError(nicobar.KindCreateArticle, err)
	}
	return &nicobar.Article{ID: doc.ID, UnsavedArticle: article}, nil
}

// FindArticleByID retrieves an article by ID.
func (s *ArticleService) FindArticleByID(ctx context.Context, id string) (*nicobar.Article, error) {
	var doc articleDocument
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nicobar.StoreErrorf(nicobar.KindFindArticleByID, nicobar.ENOTFOUND, "article %q not found", id)
	}
	if err != nil {
		return nil, nicobar.WrapStoreError(nicobar.KindFindArticleByID, err)
	}
	return doc.article(), nil
}

// FindArticles retrieves articles matching the filter, newest first.
func (s *ArticleService) FindArticles(ctx context.Context, filter nicobar.ArticleFilter) ([]*nicobar.Article, error) {
	query, opts := ArticleQuery(filter)

	cursor, err := s.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, nicobar.WrapStoreError(nicobar.KindFindManyArticles, err)
	}
	defer cursor.Close(ctx)

	var docs []articleDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, nicobar.WrapStoreError(nicobar.KindFindManyArticles, err)
	}
	if len(docs) == 0 {
		return nil, nicobar.StoreErrorf(nicobar.KindFindManyArticles, nicobar.ENOTFOUND, "no articles found")
	}

	articles := make([]*nicobar.Article, len(docs))
	for i, d := range docs {
		articles[i] = d.article()
	}
	return articles, nil
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
