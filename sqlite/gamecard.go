package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/fwojciec/nicobar"
)

// Compile-time interface verification.
var (
	_ nicobar.GameCardService  = (*GameCardService)(nil)
	_ nicobar.GameCardImporter = (*GameCardService)(nil)
)

// GameCardService implements nicobar.GameCardService using SQLite.
type GameCardService struct {
	db *DB
}

// NewGameCardService creates a new GameCardService.
func NewGameCardService(db *DB) *GameCardService {
	return &GameCardService{db: db}
}

const gameCardColumns = `id, slug, card_set, name, type, rarity, image_en, image_jp, feature, colors,
	attributes, counter, life, power, remarks, text`

// FindGameCardByID retrieves a card by ID.
func (s *GameCardService) FindGameCardByID(ctx context.Context, id string) (*nicobar.GameCard, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+gameCardColumns+` FROM game_cards WHERE id = ?`, id)

	card, err := scanGameCard(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nicobar.StoreErrorf(nicobar.KindFindGameCardByID, nicobar.ENOTFOUND, "game card %q not found", id)
	}
	if err != nil {
		return nil, nicobar.WrapStoreError(nicobar.KindFindGameCardByID, err)
	}
	return card, nil
}

// FindGameCards retrieves cards matching the filter, ordered by ID.
func (s *GameCardService) FindGameCards(ctx context.Context, filter nicobar.GameCardFilter) ([]*nicobar.GameCard, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + gameCardColumns + " FROM game_cards WHERE 1=1")

	if filter.Keyword != nil {
		pattern := likePattern(strings.ToLower(*filter.Keyword))
		query.WriteString(` AND (lower(name) LIKE ? ESCAPE '\' OR lower(text) LIKE ? ESCAPE '\')`)
		args = append(args, pattern, pattern)
	}
	if filter.Feature != nil {
		query.WriteString(` AND lower(feature) LIKE ? ESCAPE '\'`)
		args = append(args, likePattern(strings.ToLower(*filter.Feature)))
	}
	appendIn(&query, &args, "lower(type)", filter.Types)
	appendIn(&query, &args, "lower(card_set)", filter.Sets)
	appendIn(&query, &args, "lower(rarity)", filter.Rarities)
	appendIn(&query, &args, "lower(attributes)", filter.Attributes)
	if len(filter.Colors) > 0 {
		query.WriteString(" AND EXISTS (SELECT 1 FROM json_each(game_cards.colors) WHERE 1=1")
		appendIn(&query, &args, "lower(json_each.value)", filter.Colors)
		query.WriteString(")")
	}

	query.WriteString(" ORDER BY id")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, nicobar.WrapStoreError(nicobar.KindFindManyGameCards, err)
	}
	defer rows.Close()

	var cards []*nicobar.GameCard
	for rows.Next() {
		card, err := scanGameCard(rows)
		if err != nil {
			return nil, nicobar.WrapStoreError(nicobar.KindFindManyGameCards, err)
		}
		cards = append(cards, card)
	}
	if err := rows.Err(); err != nil {
		return nil, nicobar.WrapStoreError(nicobar.KindFindManyGameCards, err)
	}

	if len(cards) == 0 {
		return nil, nicobar.StoreErrorf(nicobar.KindFindManyGameCards, nicobar.ENOTFOUND, "no game cards found")
	}
	return cards, nil
}

// ImportGameCards upserts cards in a single transaction.
func (s *GameCardService) ImportGameCards(ctx context.Context, cards []*nicobar.GameCard) (int, error) {
	for _, c := range cards {
		if err := c.Validate(); err != nil {
			return 0, err
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR REPLACE INTO game_cards (`+gameCardColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	for _, c := range cards {
		colors, err := encodeList(c.Color)
		if err != nil {
			return 0, err
		}
		if _, err := stmt.ExecContext(ctx, c.ID, c.Slug, c.Set, c.Name, c.Type, c.Rarity, c.Image.EN, c.Image.JP,
			c.Feature, colors, c.Attributes, c.Counter, c.Life, c.Power, c.Remarks, c.Text); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return len(cards), nil
}

func scanGameCard(row scanner) (*nicobar.GameCard, error) {
	var c nicobar.GameCard
	var colors string

	if err := row.Scan(&c.ID, &c.Slug, &c.Set, &c.Name, &c.Type, &c.Rarity, &c.Image.EN, &c.Image.JP,
		&c.Feature, &colors, &c.Attributes, &c.Counter, &c.Life, &c.Power, &c.Remarks, &c.Text); err != nil {
		return nil, err
	}

	var err error
	if c.Color, err = decodeList(colors, "colors"); err != nil {
		return nil, err
	}
	return &c, nil
}
