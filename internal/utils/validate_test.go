package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/movie-wishlist/internal/model"
)

func TestValidateTitle(t *testing.T) {
	t.Run("trims surrounding whitespace", func(t *testing.T) {
		got, err := ValidateTitle("  Dune  ")
		require.NoError(t, err)
		assert.Equal(t, "Dune", got)
	})

	t.Run("rejects empty and whitespace-only", func(t *testing.T) {
		for _, raw := range []string{"", "   ", "\t\n"} {
			_, err := ValidateTitle(raw)
			assert.Error(t, err, "raw=%q", raw)
		}
	})

	t.Run("accepts exactly the maximum length", func(t *testing.T) {
		got, err := ValidateTitle(strings.Repeat("a", MaxTitleLength))
		require.NoError(t, err)
		assert.Len(t, got, MaxTitleLength)
	})

	t.Run("rejects one over the maximum", func(t *testing.T) {
		_, err := ValidateTitle(strings.Repeat("a", MaxTitleLength+1))
		assert.Error(t, err)
	})

	// Totality: arbitrary garbage yields an error value, never a panic.
	t.Run("total over odd inputs", func(t *testing.T) {
		for _, raw := range []string{"\x00", "🎬", strings.Repeat("é", 400)} {
			_, _ = ValidateTitle(raw)
		}
	})
}

func TestValidateStatus(t *testing.T) {
	for _, s := range []string{model.StatusWishlist, model.StatusDownloaded} {
		got, err := ValidateStatus(s)
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
	for _, s := range []string{"", "Wishlist", "DOWNLOADED", "watched", " wishlist"} {
		_, err := ValidateStatus(s)
		assert.Error(t, err, "status=%q", s)
	}
}

func TestValidateMovieID(t *testing.T) {
	got, err := ValidateMovieID("a3bb189e-8bf9-3888-9912-ace4e6543002")
	require.NoError(t, err)
	assert.Equal(t, "a3bb189e-8bf9-3888-9912-ace4e6543002", got)

	bad := []string{
		"",
		"not-a-uuid",
		"a3bb189e8bf938889912ace4e6543002",                 // unhyphenated
		"{a3bb189e-8bf9-3888-9912-ace4e6543002}",           // braced
		"a3bb189e-8bf9-3888-9912-ace4e654300",              // too short
		"a3bb189e-8bf9-3888-9912-ace4e6543002-etc",         // too long
		"zzzzzzzz-zzzz-zzzz-zzzz-zzzzzzzzzzzz",             // bad hex
		"urn:uuid:a3bb189e-8bf9-3888-9912-ace4e6543002",    // urn form
	}
	for _, raw := range bad {
		_, err := ValidateMovieID(raw)
		assert.Error(t, err, "raw=%q", raw)
	}
}
