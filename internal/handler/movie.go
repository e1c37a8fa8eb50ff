// Package handler defines HTTP handlers for the movie wishlist API. This
// file implements the movie lifecycle: create, list, status update and the
// cascading delete. Handlers are stateless; every side effect goes through
// the injected stores and each request either fully completes or reports
// an error with no partial effect.
package handler

import (
	"context"
	"errors"
	"log"
	"net/http"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-wishlist/internal/middleware"
	"github.com/iliyamo/movie-wishlist/internal/model"
	"github.com/iliyamo/movie-wishlist/internal/queue"
	"github.com/iliyamo/movie-wishlist/internal/repository"
	"github.com/iliyamo/movie-wishlist/internal/utils"
)

// MovieStore is the slice of the movie repository the handlers need.
// Declared here so tests can run handlers against an in-memory fake.
type MovieStore interface {
	Create(ctx context.Context, m *model.Movie) error
	GetByID(ctx context.Context, id string) (*model.Movie, error)
	ListAll(ctx context.Context) ([]*model.Movie, error)
	UpdateStatus(ctx context.Context, id, status string, now int64) (*model.Movie, error)
	DeleteCascade(ctx context.Context, id string, interests []*model.Interest) error
}

// InterestStore is the slice of the interest repository the handlers need.
type InterestStore interface {
	Put(ctx context.Context, in *model.Interest) error
	Delete(ctx context.Context, userID, movieID string) error
	ListByMovie(ctx context.Context, movieID string) ([]*model.Interest, error)
}

// MovieHandler bundles the stores behind the movie and interest endpoints.
// Publish, when set, sends a domain event after a successful mutation;
// event delivery is best effort and never affects the response.
type MovieHandler struct {
	Movies    MovieStore
	Interests InterestStore
	Publish   func(ctx context.Context, ev queue.MovieEvent) error
}

// NewMovieHandler constructs a MovieHandler and panics if a store is nil.
func NewMovieHandler(movies MovieStore, interests InterestStore, publish func(ctx context.Context, ev queue.MovieEvent) error) *MovieHandler {
	if movies == nil || interests == nil {
		panic("nil store passed to NewMovieHandler")
	}
	return &MovieHandler{Movies: movies, Interests: interests, Publish: publish}
}

func (h *MovieHandler) publish(ctx context.Context, ev queue.MovieEvent) {
	if h.Publish == nil {
		return
	}
	if err := h.Publish(ctx, ev); err != nil {
		log.Printf("handler: publish %s event failed: %v", ev.Type, err)
	}
}

// CreateMovie handles POST /v1/movies. It validates the title, generates a
// fresh id, stamps creator and timestamps, stores the movie and records
// the creator's own interest, then returns 201 with the new movie.
func (h *MovieHandler) CreateMovie(c echo.Context) error {
	ident, err := middleware.FromContext(c)
	if err != nil {
		return respondError(c, http.StatusUnauthorized, "missing user context", errAuth)
	}
	var body struct {
		Title string `json:"title"`
	}
	if err := c.Bind(&body); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid request body", errValidation)
	}
	title, err := utils.ValidateTitle(body.Title)
	if err != nil {
		return respondError(c, http.StatusBadRequest, err.Error(), errValidation)
	}

	now := time.Now().Unix()
	movie := &model.Movie{
		MovieID:   uuid.NewString(),
		Title:     title,
		Status:    model.StatusWishlist,
		CreatedBy: ident.UserID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	ctx := c.Request().Context()
	if err := h.Movies.Create(ctx, movie); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return respondError(c, http.StatusConflict, "movie id collision", errConflict)
		}
		return respondError(c, http.StatusInternalServerError, "could not create movie", errDatabase)
	}
	// Whoever adds a movie wants it; record the creator's interest with the
	// same idempotent put AddInterest uses.
	if err := h.Interests.Put(ctx, &model.Interest{UserID: ident.UserID, MovieID: movie.MovieID, CreatedAt: now}); err != nil {
		return respondError(c, http.StatusInternalServerError, "could not record creator interest", errDatabase)
	}
	movie.InterestedUsers = []string{ident.UserID}

	h.publish(ctx, queue.MovieEvent{
		Type:       queue.EventMovieCreated,
		MovieID:    movie.MovieID,
		Title:      movie.Title,
		Status:     movie.Status,
		UserID:     ident.UserID,
		OccurredAt: time.Unix(now, 0).UTC().Format(time.RFC3339),
	})
	return c.JSON(http.StatusCreated, movie)
}

// ListMovies handles GET /v1/movies. Every movie is returned with the ids
// of the users interested in it, newest movies first.
func (h *MovieHandler) ListMovies(c echo.Context) error {
	ctx := c.Request().Context()
	movies, err := h.Movies.ListAll(ctx)
	if err != nil {
		return respondError(c, http.StatusInternalServerError, "could not list movies", errDatabase)
	}
	for _, m := range movies {
		interests, err := h.Interests.ListByMovie(ctx, m.MovieID)
		if err != nil {
			return respondError(c, http.StatusInternalServerError, "could not load interests", errDatabase)
		}
		users := make([]string, 0, len(interests))
		for _, in := range interests {
			users = append(users, in.UserID)
		}
		m.InterestedUsers = users
	}
	sort.Slice(movies, func(i, j int) bool { return movies[i].CreatedAt > movies[j].CreatedAt })
	return c.JSON(http.StatusOK, echo.Map{"items": movies})
}

// UpdateStatus handles PATCH /v1/movies/:id/status. Both directions of the
// wishlist/downloaded transition are legal; re-applying the current status
// succeeds. 404 when the movie does not exist.
func (h *MovieHandler) UpdateStatus(c echo.Context) error {
	id, err := utils.ValidateMovieID(c.Param("id"))
	if err != nil {
		return respondError(c, http.StatusBadRequest, err.Error(), errValidation)
	}
	var body struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&body); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid request body", errValidation)
	}
	status, err := utils.ValidateStatus(body.Status)
	if err != nil {
		return respondError(c, http.StatusBadRequest, err.Error(), errValidation)
	}

	ctx := c.Request().Context()
	movie, err := h.Movies.UpdateStatus(ctx, id, status, time.Now().Unix())
	if err != nil {
		if errors.Is(err, repository.ErrMovieNotFound) {
			return respondError(c, http.StatusNotFound, "movie not found", errNotFound)
		}
		return respondError(c, http.StatusInternalServerError, "could not update movie", errDatabase)
	}

	h.publish(ctx, queue.MovieEvent{
		Type:       queue.EventMovieStatusChanged,
		MovieID:    movie.MovieID,
		Title:      movie.Title,
		Status:     movie.Status,
		OccurredAt: time.Unix(movie.UpdatedAt, 0).UTC().Format(time.RFC3339),
	})
	return c.JSON(http.StatusOK, movie)
}

// DeleteMovie handles DELETE /v1/movies/:id. The movie and every interest
// referencing it are removed in one atomic write, so no reader ever sees
// one gone without the other. Returns 204 on success, 404 when the movie
// does not exist and 409 when the cascade cannot fit in one transaction.
func (h *MovieHandler) DeleteMovie(c echo.Context) error {
	id, err := utils.ValidateMovieID(c.Param("id"))
	if err != nil {
		return respondError(c, http.StatusBadRequest, err.Error(), errValidation)
	}

	ctx := c.Request().Context()
	interests, err := h.Interests.ListByMovie(ctx, id)
	if err != nil {
		return respondError(c, http.StatusInternalServerError, "could not load interests", errDatabase)
	}
	if err := h.Movies.DeleteCascade(ctx, id, interests); err != nil {
		switch {
		case errors.Is(err, repository.ErrMovieNotFound):
			return respondError(c, http.StatusNotFound, "movie not found", errNotFound)
		case errors.Is(err, repository.ErrTooManyInterests):
			return respondError(c, http.StatusConflict, "too many interests to delete atomically", errConflict)
		default:
			return respondError(c, http.StatusInternalServerError, "delete failed", errTransaction)
		}
	}

	h.publish(ctx, queue.MovieEvent{
		Type:       queue.EventMovieDeleted,
		MovieID:    id,
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	})
	return c.NoContent(http.StatusNoContent)
}
