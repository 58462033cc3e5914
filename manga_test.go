package nicobar_test

import (
	"encoding/json"
	"testing"

	"github.com/fwojciec/nicobar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProvider(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    nicobar.Provider
		wantErr bool
	}{
		{"TCBScans", nicobar.ProviderTCBScans, false},
		{"tcbscans", nicobar.ProviderTCBScans, false},
		{"NIFTeam", nicobar.ProviderNIFTeam, false},
		{" nifteam ", nicobar.ProviderNIFTeam, false},
		{"MangaDex", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			got, err := nicobar.ParseProvider(tt.in)

			if tt.wantErr {
				assert.Equal(t, nicobar.EINVALID, nicobar.ErrorCode(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestProvider_UnmarshalText(t *testing.T) {
	t.Parallel()

	t.Run("canonicalizes known names", func(t *testing.T) {
		t.Parallel()

		var req struct {
			Provider nicobar.Provider `json:"provider"`
		}
		require.NoError(t, json.Unmarshal([]byte(`{"provider":"tcbscans"}`), &req))

		assert.Equal(t, nicobar.ProviderTCBScans, req.Provider)
		assert.NoError(t, req.Provider.Validate())
	})

	t.Run("keeps unknown names for validation", func(t *testing.T) {
		t.Parallel()

		var p nicobar.Provider
		require.NoError(t, json.Unmarshal([]byte(`"MangaDex"`), &p))

		assert.Equal(t, nicobar.Provider("MangaDex"), p)
		assert.Error(t, p.Validate())
	})
}

func TestChapter_JSONKeys(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(nicobar.SimpleChapter{Title: "Chapter 12", Number: 12, Provider: nicobar.ProviderTCBScans})
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, float64(12), got["number"])
	assert.Equal(t, "TCBScans", got["provider"])
	assert.NotContains(t, got, "chapter")

	data, err = json.Marshal(nicobar.ChapterPage{Chapter: 12, PageNumber: 0})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"chapter":12`)
}
