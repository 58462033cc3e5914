package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/nicobar"
	main "github.com/fwojciec/nicobar/cmd/nicobar"
	"github.com/fwojciec/nicobar/mock"
	"github.com/fwojciec/nicobar/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardsListCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("passes filter and prints rows", func(t *testing.T) {
		t.Parallel()

		var got nicobar.GameCardFilter
		store := &mock.GameCardService{
			FindGameCardsFn: func(_ context.Context, filter nicobar.GameCardFilter) ([]*nicobar.GameCard, error) {
				got = filter
				return []*nicobar.GameCard{
					{ID: "OP01-001", Name: "Roronoa Zoro", Type: "LEADER", Rarity: "L"},
				}, nil
			},
		}
		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps := newDeps(stdout, stderr)
		deps.GameCards = &pipeline.GameCards{Store: store}

		err := (&main.CardsListCmd{Keyword: "zoro", Color: []string{"Red"}, Limit: 10}).Run(deps)

		require.NoError(t, err)
		require.NotNil(t, got.Keyword)
		assert.Equal(t, "zoro", *got.Keyword)
		assert.Nil(t, got.Feature)
		assert.Equal(t, []string{"Red"}, got.Colors)
		assert.Equal(t, 10, got.Limit)
		assert.Equal(t, "OP01-001  Roronoa Zoro  LEADER  L\n", stdout.String())
	})

	t.Run("empty result is not an error", func(t *testing.T) {
		t.Parallel()

		store := &mock.GameCardService{
			FindGameCardsFn: func(_ context.Context, _ nicobar.GameCardFilter) ([]*nicobar.GameCard, error) {
				return nil, nicobar.StoreErrorf(nicobar.KindFindManyGameCards, nicobar.ENOTFOUND, "no game cards found")
			},
		}
		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps := newDeps(stdout, stderr)
		deps.GameCards = &pipeline.GameCards{Store: store}

		err := (&main.CardsListCmd{}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "No cards found.\n", stdout.String())
	})

	t.Run("rejects negative pagination", func(t *testing.T) {
		t.Parallel()

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps := newDeps(stdout, stderr)
		deps.GameCards = &pipeline.GameCards{Store: &mock.GameCardService{}}

		err := (&main.CardsListCmd{Offset: -1}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, nicobar.EINVALID, nicobar.ErrorCode(err))
	})
}

func TestCardsShowCmd_Run(t *testing.T) {
	t.Parallel()

	store := &mock.GameCardService{
		FindGameCardByIDFn: func(_ context.Context, id string) (*nicobar.GameCard, error) {
			return &nicobar.GameCard{ID: id, Name: "Sanji", Color: []string{"Green"}}, nil
		},
	}
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	deps := newDeps(stdout, stderr)
	deps.GameCards = &pipeline.GameCards{Store: store}

	err := (&main.CardsShowCmd{ID: "OP01-013"}).Run(deps)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), `"id": "OP01-013"`)
	assert.Contains(t, stdout.String(), `"name": "Sanji"`)
}

func TestCardsImportCmd_Run(t *testing.T) {
	t.Parallel()

	writeFile := func(t *testing.T, content string) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), "cards.json")
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		return path
	}

	t.Run("imports cards from file", func(t *testing.T) {
		t.Parallel()

		var imported []*nicobar.GameCard
		importer := &mock.GameCardService{
			ImportGameCardsFn: func(_ context.Context, cards []*nicobar.GameCard) (int, error) {
				imported = cards
				return len(cards), nil
			},
		}
		path := writeFile(t, `[
			{"id": "OP01-001", "name": "Roronoa Zoro", "color": ["Red"], "life": 5, "image": {"en": "https://img/en.png"}},
			{"id": "OP01-013", "name": "Sanji", "color": ["Green"], "power": 6000}
		]`)
		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps := newDeps(stdout, stderr)
		deps.CardImporter = importer

		err := (&main.CardsImportCmd{File: path}).Run(deps)

		require.NoError(t, err)
		require.Len(t, imported, 2)
		assert.Equal(t, 5, imported[0].Life)
		assert.Equal(t, "https://img/en.png", imported[0].Image.EN)
		assert.Equal(t, 6000, imported[1].Power)
		assert.Equal(t, "Imported 2 cards.\n", stdout.String())
	})

	t.Run("rejects malformed file", func(t *testing.T) {
		t.Parallel()

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps := newDeps(stdout, stderr)
		deps.CardImporter = &mock.GameCardService{}

		err := (&main.CardsImportCmd{File: writeFile(t, `{"id": 1}`)}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, nicobar.EINVALID, nicobar.ErrorCode(err))
		assert.Contains(t, stderr.String(), "parsing")
	})

	t.Run("empty array imports nothing", func(t *testing.T) {
		t.Parallel()

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps := newDeps(stdout, stderr)
		deps.CardImporter = &mock.GameCardService{}

		err := (&main.CardsImportCmd{File: writeFile(t, `[]`)}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "No cards to import.\n", stdout.String())
	})
}
