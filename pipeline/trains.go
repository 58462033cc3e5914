package pipeline

import (
	"context"
	"net/url"
	"strings"

	"github.com/fwojciec/nicobar"
)

// Ensure Trains implements nicobar.TrainBoard.
var _ nicobar.TrainBoard = (*Trains)(nil)

// DefaultBoardURL is the RFI station monitor.
const DefaultBoardURL = "https://iechub.rfi.it/ArriviPartenze/ArrivalsDepartures/Monitor"

// Trains fetches station boards from the RFI monitor.
type Trains struct {
	Fetcher   nicobar.Fetcher
	Extractor nicobar.TrainExtractor

	// BoardURL overrides DefaultBoardURL.
	BoardURL string
}

// Departures returns the departure board of placeID.
func (t *Trains) Departures(ctx context.Context, placeID string) (*nicobar.TrainTable, error) {
	return t.board(ctx, placeID, false)
}

// Arrivals returns the arrival board of placeID.
func (t *Trains) Arrivals(ctx context.Context, placeID string) (*nicobar.TrainTable, error) {
	return t.board(ctx, placeID, true)
}

func (t *Trains) board(ctx context.Context, placeID string, arrivals bool) (*nicobar.TrainTable, error) {
	placeID = strings.TrimSpace(placeID)
	if placeID == "" {
		return nil, nicobar.Errorf(nicobar.EINVALID, "place ID required")
	}

	target := t.boardURL(placeID, arrivals)
	return nicobar.FetchAndMap(ctx, t.Fetcher, target, nicobar.RequestConfig{}, func(body string) (*nicobar.TrainTable, error) {
		return t.Extractor.ExtractTrainTable(placeID, body)
	})
}

func (t *Trains) boardURL(placeID string, arrivals bool) string {
	base := t.BoardURL
	if base == "" {
		base = DefaultBoardURL
	}
	q := url.Values{}
	q.Set("placeId", placeID)
	if arrivals {
		q.Set("arrivals", "True")
	} else {
		q.Set("arrivals", "False")
	}
	return base + "?" + q.Encode()
}
