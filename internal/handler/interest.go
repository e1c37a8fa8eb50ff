// Package handler defines HTTP handlers for the movie wishlist API. This
// file implements the interest endpoints: adding, removing and listing the
// users interested in a movie. Adding is idempotent and removing is
// lenient, so clients can retry either without special-casing.
package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-wishlist/internal/middleware"
	"github.com/iliyamo/movie-wishlist/internal/model"
	"github.com/iliyamo/movie-wishlist/internal/queue"
	"github.com/iliyamo/movie-wishlist/internal/repository"
	"github.com/iliyamo/movie-wishlist/internal/utils"
)

// AddInterest handles POST /v1/movies/:id/interest. The movie must exist;
// its status does not matter — a downloaded movie still accepts interest
// so that a client retrying across a status change cannot fail. Repeating
// the call leaves exactly one interest record. Returns 201 with the
// interest.
func (h *MovieHandler) AddInterest(c echo.Context) error {
	ident, err := middleware.FromContext(c)
	if err != nil {
		return respondError(c, http.StatusUnauthorized, "missing user context", errAuth)
	}
	id, err := utils.ValidateMovieID(c.Param("id"))
	if err != nil {
		return respondError(c, http.StatusBadRequest, err.Error(), errValidation)
	}

	ctx := c.Request().Context()
	if _, err := h.Movies.GetByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrMovieNotFound) {
			return respondError(c, http.StatusNotFound, "movie not found", errNotFound)
		}
		return respondError(c, http.StatusInternalServerError, "could not load movie", errDatabase)
	}

	interest := &model.Interest{
		UserID:    ident.UserID,
		MovieID:   id,
		CreatedAt: time.Now().Unix(),
	}
	if err := h.Interests.Put(ctx, interest); err != nil {
		return respondError(c, http.StatusInternalServerError, "could not record interest", errDatabase)
	}

	h.publish(ctx, queue.MovieEvent{
		Type:       queue.EventInterestAdded,
		MovieID:    id,
		UserID:     ident.UserID,
		OccurredAt: time.Unix(interest.CreatedAt, 0).UTC().Format(time.RFC3339),
	})
	return c.JSON(http.StatusCreated, interest)
}

// RemoveInterest handles DELETE /v1/movies/:id/interest. Removing an
// interest that does not exist is a success, not an error. Returns 204.
func (h *MovieHandler) RemoveInterest(c echo.Context) error {
	ident, err := middleware.FromContext(c)
	if err != nil {
		return respondError(c, http.StatusUnauthorized, "missing user context", errAuth)
	}
	id, err := utils.ValidateMovieID(c.Param("id"))
	if err != nil {
		return respondError(c, http.StatusBadRequest, err.Error(), errValidation)
	}

	ctx := c.Request().Context()
	if err := h.Interests.Delete(ctx, ident.UserID, id); err != nil {
		return respondError(c, http.StatusInternalServerError, "could not remove interest", errDatabase)
	}

	h.publish(ctx, queue.MovieEvent{
		Type:       queue.EventInterestRemoved,
		MovieID:    id,
		UserID:     ident.UserID,
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	})
	return c.NoContent(http.StatusNoContent)
}

// ListInterestedUsers handles GET /v1/movies/:id/interests. A missing
// movie is a 404; the index query alone cannot tell "no interests" from
// "no movie", so existence is checked first. Returns 200 with the user
// ids.
func (h *MovieHandler) ListInterestedUsers(c echo.Context) error {
	id, err := utils.ValidateMovieID(c.Param("id"))
	if err != nil {
		return respondError(c, http.StatusBadRequest, err.Error(), errValidation)
	}

	ctx := c.Request().Context()
	if _, err := h.Movies.GetByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrMovieNotFound) {
			return respondError(c, http.StatusNotFound, "movie not found", errNotFound)
		}
		return respondError(c, http.StatusInternalServerError, "could not load movie", errDatabase)
	}
	interests, err := h.Interests.ListByMovie(ctx, id)
	if err != nil {
		return respondError(c, http.StatusInternalServerError, "could not load interests", errDatabase)
	}
	users := make([]string, 0, len(interests))
	for _, in := range interests {
		users = append(users, in.UserID)
	}
	return c.JSON(http.StatusOK, echo.Map{"items": users})
}
