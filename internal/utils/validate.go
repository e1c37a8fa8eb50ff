package utils // package utils provides pure input validation helpers shared by handlers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/iliyamo/movie-wishlist/internal/model"
)

// MaxTitleLength bounds a movie title after trimming. Longer titles are
// rejected rather than truncated.
const MaxTitleLength = 500

// ValidateTitle trims the raw title and checks it is non-empty and within
// bounds. It returns the trimmed title that should be persisted. The
// function has no side effects and never panics, whatever the input.
func ValidateTitle(raw string) (string, error) {
	title := strings.TrimSpace(raw)
	if title == "" {
		return "", errors.New("title cannot be empty or whitespace only")
	}
	if len(title) > MaxTitleLength {
		return "", fmt.Errorf("title cannot exceed %d characters", MaxTitleLength)
	}
	return title, nil
}

// ValidateStatus checks that raw is one of the two persisted statuses.
// Matching is exact; "Wishlist" or padded values are rejected so that no
// third state ever reaches the table.
func ValidateStatus(raw string) (string, error) {
	if !model.ValidStatus(raw) {
		return "", fmt.Errorf("status must be one of: %s, %s", model.StatusWishlist, model.StatusDownloaded)
	}
	return raw, nil
}

// ValidateMovieID checks that raw is a canonical 36-character UUID. The
// length check rejects the alternate encodings uuid.Parse would accept
// (braced, urn-prefixed, unhyphenated).
func ValidateMovieID(raw string) (string, error) {
	if raw == "" {
		return "", errors.New("movieId is required")
	}
	if len(raw) != 36 {
		return "", errors.New("movieId must be a valid UUID")
	}
	if _, err := uuid.Parse(raw); err != nil {
		return "", errors.New("movieId must be a valid UUID")
	}
	return raw, nil
}
