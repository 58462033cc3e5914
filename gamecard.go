package nicobar

import "context"

// GameCard is an entry of the trading card catalog.
type GameCard struct {
	ID         string        `json:"id"`
	Slug       string        `json:"slug"`
	Set        string        `json:"set"`
	Name       string        `json:"name"`
	Type       string        `json:"type"`
	Rarity     string        `json:"rarity"`
	Image      GameCardImage `json:"image"`
	Feature    string        `json:"feature"`
	Color      []string      `json:"color"`
	Attributes string        `json:"attributes"`
	Counter    string        `json:"counter"`
	Life       int           `json:"life"`
	Power      int           `json:"power"`
	Remarks    string        `json:"remarks"`
	Text       string        `json:"text"`
}

// GameCardImage holds the card art URLs per print language.
type GameCardImage struct {
	EN string `json:"en"`
	JP string `json:"jp"`
}

// Validate returns an error if the card cannot be stored.
func (c *GameCard) Validate() error {
	if c.ID == "" {
		return Errorf(EINVALID, "game card ID required")
	}
	if c.Name == "" {
		return Errorf(EINVALID, "game card name required")
	}
	return nil
}

// GameCardService represents a read-only game card catalog.
type GameCardService interface {
	// FindGameCardByID retrieves a card by ID.
	// A missing card is a StoreError of kind KindFindGameCardByID with code ENOTFOUND.
	FindGameCardByID(ctx context.Context, id string) (*GameCard, error)

	// FindGameCards retrieves cards matching the filter.
	// An empty result is a StoreError of kind KindFindManyGameCards with code ENOTFOUND.
	FindGameCards(ctx context.Context, filter GameCardFilter) ([]*GameCard, error)
}

// GameCardImporter seeds the catalog. The catalog is read-only for API
// clients; imports come from the command line.
type GameCardImporter interface {
	// ImportGameCards inserts or replaces cards by ID and returns how many were written.
	ImportGameCards(ctx context.Context, cards []*GameCard) (int, error)
}

// GameCardFilter represents a filter for FindGameCards. Keyword and Feature
// match case-insensitive substrings; the slice fields match any listed value.
type GameCardFilter struct {
	Keyword    *string  `json:"keyword"`
	Feature    *string  `json:"feature"`
	Types      []string `json:"type"`
	Sets       []string `json:"set"`
	Rarities   []string `json:"rarity"`
	Colors     []string `json:"color"`
	Attributes []string `json:"attributes"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
