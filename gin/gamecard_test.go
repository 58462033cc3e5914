package gin_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/fwojciec/nicobar"
	"github.com/fwojciec/nicobar/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServer_GameCardList(t *testing.T) {
	t.Parallel()

	t.Run("parses filters", func(t *testing.T) {
		t.Parallel()

		s, _ := newTestServer(t)
		var got nicobar.GameCardFilter
		s.GameCardService = &mock.GameCardService{
			FindGameCardsFn: func(ctx context.Context, filter nicobar.GameCardFilter) ([]*nicobar.GameCard, error) {
				got = filter
				return []*nicobar.GameCard{{ID: "OP01-001", Name: "Roronoa Zoro"}}, nil
			},
		}

		rec := serve(s, http.MethodGet, "/api/gamecards/op/all?keyword=zoro&color=Red,Green&color=Blue&type=LEADER&limit=5", "")

		require.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, got.Keyword)
		assert.Equal(t, "zoro", *got.Keyword)
		assert.Nil(t, got.Feature)
		assert.Equal(t, []string{"Red", "Green", "Blue"}, got.Colors)
		assert.Equal(t, []string{"LEADER"}, got.Types)
		assert.Nil(t, got.Sets)
		assert.Equal(t, 5, got.Limit)
		assert.Contains(t, rec.Body.String(), `"name":"Roronoa Zoro"`)
	})

	t.Run("empty result is a server error", func(t *testing.T) {
		t.Parallel()

		s, _ := newTestServer(t)
		s.GameCardService = &mock.GameCardService{
			FindGameCardsFn: func(ctx context.Context, filter nicobar.GameCardFilter) ([]*nicobar.GameCard, error) {
				return nil, nicobar.StoreErrorf(nicobar.KindFindManyGameCards, nicobar.ENOTFOUND, "no game cards found")
			},
		}

		rec := serve(s, http.MethodGet, "/api/gamecards/op/all", "")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "findManyGameCardsError", decodeBody(t, rec)["type"])
	})

	t.Run("rejects negative offset", func(t *testing.T) {
		t.Parallel()

		s, _ := newTestServer(t)

		rec := serve(s, http.MethodGet, "/api/gamecards/op/all?offset=-1", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestServer_GameCardGet(t *testing.T) {
	t.Parallel()

	s, _ := newTestServer(t)
	s.GameCardService = &mock.GameCardService{
		FindGameCardByIDFn: func(ctx context.Context, id string) (*nicobar.GameCard, error) {
			return nil, nicobar.StoreErrorf(nicobar.KindFindGameCardByID, nicobar.ENOTFOUND, "game card %q not found", id)
		},
	}

	rec := serve(s, http.MethodGet, "/api/gamecards/op/get/OP99-999", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "findGameCardByIdError", decodeBody(t, rec)["type"])
}
