package mock

import (
	"context"

	"github.com/fwojciec/nicobar"
)

var (
	_ nicobar.GameCardService  = (*GameCardService)(nil)
	_ nicobar.GameCardImporter = (*GameCardService)(nil)
)

// GameCardService is a mock implementation of nicobar.GameCardService and
// nicobar.GameCardImporter.
type GameCardService struct {
	FindGameCardByIDFn func(ctx context.Context, id string) (*nicobar.GameCard, error)
	FindGameCardsFn    func(ctx context.Context, filter nicobar.GameCardFilter) ([]*nicobar.GameCard, error)
	ImportGameCardsFn  func(ctx context.Context, cards []*nicobar.GameCard) (int, error)
}

func (s *GameCardService) FindGameCardByID(ctx context.Context, id string) (*nicobar.GameCard, error) {
	return s.FindGameCardByIDFn(ctx, id)
}

func (s *GameCardService) FindGameCards(ctx context.Context, filter nicobar.GameCardFilter) ([]*nicobar.GameCard, error) {
	return s.FindGameCardsFn(ctx, filter)
}

func (s *GameCardService) ImportGameCards(ctx context.Context, cards []*nicobar.GameCard) (int, error) {
	return s.ImportGameCardsFn(ctx, cards)
}
