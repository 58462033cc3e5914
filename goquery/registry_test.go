package goquery_test

import (
	"testing"

	"github.com/fwojciec/nicobar"
	"github.com/fwojciec/nicobar/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	t.Parallel()

	t.Run("default registry covers every provider", func(t *testing.T) {
		t.Parallel()

		r := goquery.NewDefaultRegistry()

		assert.ElementsMatch(t, nicobar.Providers(), r.List())
		s, err := r.Get(nicobar.ProviderNIFTeam)
		require.NoError(t, err)
		assert.Equal(t, goquery.DefaultMangaSelectors(), s)
	})

	t.Run("register replaces selectors", func(t *testing.T) {
		t.Parallel()

		r := goquery.NewDefaultRegistry()
		custom := goquery.DefaultMangaSelectors()
		custom.ChapterTitle = "h2.title"

		r.Register(nicobar.ProviderTCBScans, custom)

		s, err := r.Get(nicobar.ProviderTCBScans)
		require.NoError(t, err)
		assert.Equal(t, "h2.title", s.ChapterTitle)
	})

	t.Run("unknown provider is invalid", func(t *testing.T) {
		t.Parallel()

		_, err := goquery.NewRegistry().Get(nicobar.ProviderTCBScans)

		assert.Equal(t, nicobar.EINVALID, nicobar.ErrorCode(err))
	})
}
