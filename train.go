package nicobar

import "context"

// TrainTable is the departure or arrival board of one station.
type TrainTable struct {
	PlaceID string         `json:"placeId"`
	Place   string         `json:"place"`
	Lines   []TrainDetails `json:"lines"`
}

// TrainDetails is one row of a station board. Delay is in minutes and is 0
// when the board shows none.
type TrainDetails struct {
	TrainID       string `json:"trainId"`
	Provider      string `json:"provider"`
	Category      string `json:"category"`
	Destination   string `json:"destination"`
	DepartureTime string `json:"departureTime"`
	Delay         int    `json:"delay"`
	Binary        string `json:"binary"`
	IsDeparting   bool   `json:"isDeparting"`
}

// TrainExtractor maps station board HTML onto a TrainTable.
type TrainExtractor interface {
	// ExtractTrainTable returns the table for placeID.
	// Any structural miss aborts the whole table with a MappingError.
	ExtractTrainTable(placeID, html string) (*TrainTable, error)
}

// TrainBoard fetches station boards.
type TrainBoard interface {
	Departures(ctx context.Context, placeID string) (*TrainTable, error)
	Arrivals(ctx context.Context, placeID string) (*TrainTable, error)
}
