package goquery

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/nicobar"
)

var _ nicobar.TrainExtractor = (*TrainExtractor)(nil)

// TrainExtractor reads RFI station boards.
type TrainExtractor struct{}

// NewTrainExtractor creates a new TrainExtractor.
func NewTrainExtractor() *TrainExtractor {
	return &TrainExtractor{}
}

// ExtractTrainTable returns every row of the board. The first row missing a
// required cell fails the whole table.
func (e *TrainExtractor) ExtractTrainTable(placeID, html string) (table *nicobar.TrainTable, err error) {
	defer recoverAs(&err, func(msg string) error {
		return &nicobar.MappingError{Message: msg}
	})

	doc, err := parse(html)
	if err != nil {
		return nil, &nicobar.MappingError{Message: err.Error()}
	}

	station := doc.Find("h1#nomeStazioneId").First()
	if station.Length() == 0 {
		return nil, &nicobar.MappingError{Message: "station heading not found"}
	}

	lines := []nicobar.TrainDetails{}
	var rowErr error
	doc.Find("tr[id][name]").EachWithBreak(func(_ int, row *goquery.Selection) bool {
		details, err := trainRow(row)
		if err != nil {
			rowErr = err
			return false
		}
		lines = append(lines, details)
		return true
	})
	if rowErr != nil {
		return nil, rowErr
	}

	return &nicobar.TrainTable{
		PlaceID: placeID,
		Place:   strings.TrimSpace(station.Text()),
		Lines:   lines,
	}, nil
}

func trainRow(row *goquery.Selection) (nicobar.TrainDetails, error) {
	id, _ := row.Attr("id")

	provider, err := requiredAttr(row, id, "td#RVettore img", "alt")
	if err != nil {
		return nicobar.TrainDetails{}, err
	}
	category, err := requiredAttr(row, id, "td#RCategoria img", "alt")
	if err != nil {
		return nicobar.TrainDetails{}, err
	}
	destination, err := requiredText(row, id, "td#RStazione div")
	if err != nil {
		return nicobar.TrainDetails{}, err
	}
	departure, err := requiredText(row, id, "td#ROrario")
	if err != nil {
		return nicobar.TrainDetails{}, err
	}
	delayText, err := requiredText(row, id, "td#RRitardo")
	if err != nil {
		return nicobar.TrainDetails{}, err
	}
	platform, err := requiredText(row, id, "td#RBinario div")
	if err != nil {
		return nicobar.TrainDetails{}, err
	}

	delay, err := strconv.Atoi(delayText)
	if err != nil {
		delay = 0
	}
	departing := false
	if alt, ok := row.Find("td#RExLampeggio img").First().Attr("alt"); ok {
		departing = strings.TrimSpace(alt) == "Si"
	}

	return nicobar.TrainDetails{
		TrainID:       id,
		Provider:      strings.ToLower(provider),
		Category:      strings.TrimSpace(strings.ReplaceAll(category, "Categoria", "")),
		Destination:   destination,
		DepartureTime: departure,
		Delay:         delay,
		Binary:        platform,
		IsDeparting:   departing,
	}, nil
}

func requiredAttr(row *goquery.Selection, rowID, selector, attr string) (string, error) {
	v, ok := row.Find(selector).First().Attr(attr)
	if !ok {
		return "", missingCell(rowID, selector)
	}
	return strings.TrimSpace(v), nil
}

// requiredText returns the trimmed text of the first match. A present but
// empty cell is valid.
func requiredText(row *goquery.Selection, rowID, selector string) (string, error) {
	s := row.Find(selector).First()
	if s.Length() == 0 {
		return "", missingCell(rowID, selector)
	}
	return strings.TrimSpace(s.Text()), nil
}

func missingCell(rowID, selector string) error {
	return &nicobar.MappingError{Message: fmt.Sprintf("train %s: %s not found", rowID, selector)}
}
