// Package goquery extracts domain values from provider HTML pages using
// goquery CSS selectors.
package goquery

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// parse builds a document from html.
func parse(html string) (*goquery.Document, error) {
	return goquery.NewDocumentFromReader(strings.NewReader(html))
}

// recoverAs converts a panic raised while walking a document into the
// extractor's typed error.
func recoverAs(err *error, wrap func(msg string) error) {
	if r := recover(); r != nil {
		*err = wrap(fmt.Sprint(r))
	}
}
