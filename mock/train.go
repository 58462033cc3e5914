package mock

import (
	"context"

	"github.com/fwojciec/nicobar"
)

var (
	_ nicobar.TrainExtractor = (*TrainExtractor)(nil)
	_ nicobar.TrainBoard     = (*TrainBoard)(nil)
)

// TrainExtractor is a mock implementation of nicobar.TrainExtractor.
type TrainExtractor struct {
	ExtractTrainTableFn func(placeID, html string) (*nicobar.TrainTable, error)
}

func (e *TrainExtractor) ExtractTrainTable(placeID, html string) (*nicobar.TrainTable, error) {
	return e.ExtractTrainTableFn(placeID, html)
}

// TrainBoard is a mock implementation of nicobar.TrainBoard.
type TrainBoard struct {
	DeparturesFn func(ctx context.Context, placeID string) (*nicobar.TrainTable, error)
	ArrivalsFn   func(ctx context.Context, placeID string) (*nicobar.TrainTable, error)
}

func (b *TrainBoard) Departures(ctx context.Context, placeID string) (*nicobar.TrainTable, error) {
	return b.DeparturesFn(ctx, placeID)
}

func (b *TrainBoard) Arrivals(ctx context.Context, placeID string) (*nicobar.TrainTable, error) {
	return b.ArrivalsFn(ctx, placeID)
}
