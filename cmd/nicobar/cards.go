package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fwojciec/nicobar"
)

// Run executes the cards list command.
func (c *CardsListCmd) Run(deps *Dependencies) error {
	filter := nicobar.GameCardFilter{
		Types:      c.Type,
		Sets:       c.Set,
		Rarities:   c.Rarity,
		Colors:     c.Color,
		Attributes: c.Attributes,
		Offset:     c.Offset,
		Limit:      c.Limit,
	}
	if c.Keyword != "" {
		filter.Keyword = &c.Keyword
	}
	if c.Feature != "" {
		filter.Feature = &c.Feature
	}

	cards, err := deps.GameCards.Find(deps.Ctx, filter)
	if nicobar.ErrorCode(err) == nicobar.ENOTFOUND {
		fmt.Fprintln(deps.Stdout, "No cards found.")
		return nil
	} else if err != nil {
		return reportError(deps, err)
	}

	for _, card := range cards {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %s\n", card.ID, card.Name, card.Type, card.Rarity)
	}
	return nil
}

// Run executes the cards show command.
func (c *CardsShowCmd) Run(deps *Dependencies) error {
	card, err := deps.GameCards.Get(deps.Ctx, c.ID)
	if err != nil {
		return reportError(deps, err)
	}
	return writeJSON(deps.Stdout, card)
}

// Run executes the cards import command.
func (c *CardsImportCmd) Run(deps *Dependencies) error {
	data, err := os.ReadFile(c.File)
	if err != nil {
		return reportError(deps, nicobar.Errorf(nicobar.EINVALID, "reading %s: %s", c.File, err))
	}

	var cards []*nicobar.GameCard
	if err := json.Unmarshal(data, &cards); err != nil {
		return reportError(deps, nicobar.Errorf(nicobar.EINVALID, "parsing %s: %s", c.File, err))
	}
	if len(cards) == 0 {
		fmt.Fprintln(deps.Stdout, "No cards to import.")
		return nil
	}

	n, err := deps.CardImporter.ImportGameCards(deps.Ctx, cards)
	if err != nil {
		return reportError(deps, err)
	}
	fmt.Fprintf(deps.Stdout, "Imported %d cards.\n", n)
	return nil
}
