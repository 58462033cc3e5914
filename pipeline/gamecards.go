package pipeline

import (
	"context"

	"github.com/fwojciec/nicobar"
)

// GameCards reads the card catalog.
type GameCards struct {
	Store nicobar.GameCardService
}

// Find returns the cards matching filter.
func (g *GameCards) Find(ctx context.Context, filter nicobar.GameCardFilter) ([]*nicobar.GameCard, error) {
	if filter.Offset < 0 || filter.Limit < 0 {
		return nil, nicobar.Errorf(nicobar.EINVALID, "offset and limit must not be negative")
	}
	return g.Store.FindGameCards(ctx, filter)
}

// Get returns the card with the given ID.
func (g *GameCards) Get(ctx context.Context, id string) (*nicobar.GameCard, error) {
	if id == "" {
		return nil, nicobar.Errorf(nicobar.EINVALID, "game card ID required")
	}
	return g.Store.FindGameCardByID(ctx, id)
}
