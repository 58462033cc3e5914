package mongo

import (
	"context"
	"errors"
	"strings"

	"github.com/fwojciec/nicobar"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Compile-time interface verification.
var (
	_ nicobar.GameCardService  = (*GameCardService)(nil)
	_ nicobar.GameCardImporter = (*GameCardService)(nil)
)

// GameCardService implements nicobar.GameCardService using MongoDB.
type GameCardService struct {
	coll *mongo.Collection
}

// NewGameCardService creates a new GameCardService.
func NewGameCardService(db *DB) *GameCardService {
	return &GameCardService{coll: db.collection(GameCardsCollection)}
}

// gameCardDocument stores colors as a single "/"-joined string.
type gameCardDocument struct {
	ID         string        `bson:"_id"`
	Slug       string        `bson:"slug"`
	Set        string        `bson:"set"`
	Type       string        `bson:"type"`
	Rarity     string        `bson:"rarity"`
	Name       string        `bson:"name"`
	Image      imageDocument `bson:"image"`
	Feature    string        `bson:"feature"`
	Color      string        `bson:"color"`
	Life       int           `bson:"life"`
	Power      int           `bson:"power"`
	Counter    *string       `bson:"counter,omitempty"`
	Text       string        `bson:"text"`
	Attributes string        `bson:"attributes"`
	Remarks    string        `bson:"remarks,omitempty"`
}

type imageDocument struct {
	EN string `bson:"en"`
	JP string `bson:"jp"`
}

func newGameCardDocument(c *nicobar.GameCard) gameCardDocument {
	doc := gameCardDocument{
		ID:         c.ID,
		Slug:       c.Slug,
		Set:        c.Set,
		Type:       c.Type,
		Rarity:     c.Rarity,
		Name:       c.Name,
		Image:      imageDocument{EN: c.Image.EN, JP: c.Image.JP},
		Feature:    c.Feature,
		Color:      strings.Join(c.Color, "/"),
		Life:       c.Life,
		Power:      c.Power,
		Text:       c.Text,
		Attributes: c.Attributes,
		Remarks:    c.Remarks,
	}
	if c.Counter != "" {
		counter := c.Counter
		doc.Counter = &counter
	}
	return doc
}

func (d gameCardDocument) gameCard() *nicobar.GameCard {
	c := &nicobar.GameCard{
		ID:         d.ID,
		Slug:       d.Slug,
		Set:        d.Set,
		Name:       d.Name,
		Type:       d.Type,
		Rarity:     d.Rarity,
		Image:      nicobar.GameCardImage{EN: d.Image.EN, JP: d.Image.JP},
		Feature:    d.Feature,
		Color:      splitColors(d.Color),
		Attributes: d.Attributes,
		Life:       d.Life,
		Power:      d.Power,
		Remarks:    d.Remarks,
		Text:       d.Text,
	}
	if d.Counter != nil {
		c.Counter = *d.Counter
	}
	return c
}

func splitColors(s string) []string {
	if s == "" {
		return []string{}
	}
	return strings.Split(s, "/")
}

// FindGameCardByID retrieves a card by ID.
func (s *GameCardService) FindGameCardByID(ctx context.Context, id string) (*nicobar.GameCard, error) {
	var doc gameCardDocument
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nicobar.StoreErrorf(nicobar.KindFindGameCardByID, nicobar.ENOTFOUND, "game card %q not found", id)
	}
	if err != nil {
		return nil, nicobar.WrapStoreError(nicobar.KindFindGameCardByID, err)
	}
	return doc.gameCard(), nil
}

// FindGameCards retrieves cards matching the filter, ordered by ID.
func (s *GameCardService) FindGameCards(ctx context.Context, filter nicobar.GameCardFilter) ([]*nicobar.GameCard, error) {
	query, opts := GameCardQuery(filter)

	cursor, err := s.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, nicobar.WrapStoreError(nicobar.KindFindManyGameCards, err)
	}
	defer cursor.Close(ctx)

	var docs []gameCardDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, nicobar.WrapStoreError(nicobar.KindFindManyGameCards, err)
	}
	if len(docs) == 0 {
		return nil, nicobar.StoreErrorf(nicobar.KindFindManyGameCards, nicobar.ENOTFOUND, "no game cards found")
	}

	cards := make([]*nicobar.GameCard, len(docs))
	for i, d := range docs {
		cards[i] = d.gameCard()
	}
	return cards, nil
}

// ImportGameCards upserts cards by ID in one unordered bulk write.
func (s *GameCardService) ImportGameCards(ctx context.Context, cards []*nicobar.GameCard) (int, error) {
	if len(cards) == 0 {
		return 0, nil
	}

	models := make([]mongo.WriteModel, 0, len(cards))
	for _, c := range cards {
		if err := c.Validate(); err != nil {
			return 0, err
		}
		models = append(models, mongo.NewReplaceOneModel().
			SetFilter(bson.M{"_id": c.ID}).
			SetReplacement(newGameCardDocument(c)).
			SetUpsert(true))
	}

	if _, err := s.coll.BulkWrite(ctx, models, options.BulkWrite().SetOrdered(false)); err != nil {
		return 0, err
	}
	return len(cards), nil
}
