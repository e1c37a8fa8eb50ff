package handler

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/movie-wishlist/internal/model"
	"github.com/iliyamo/movie-wishlist/internal/repository"
)

// memStore is an in-memory stand-in for both repositories. It mirrors the
// store-layer contract the handlers rely on: conditional create, not-found
// sentinels, idempotent interest put, lenient interest delete and an
// all-or-nothing cascade.
type memStore struct {
	mu        sync.Mutex
	movies    map[string]model.Movie
	interests map[string]model.Interest
}

func newMemStore() *memStore {
	return &memStore{
		movies:    make(map[string]model.Movie),
		interests: make(map[string]model.Interest),
	}
}

func ikey(userID, movieID string) string { return userID + "|" + movieID }

func (s *memStore) Create(_ context.Context, m *model.Movie) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.movies[m.MovieID]; ok {
		return repository.ErrConflict
	}
	s.movies[m.MovieID] = *m
	return nil
}

func (s *memStore) GetByID(_ context.Context, id string) (*model.Movie, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.movies[id]
	if !ok {
		return nil, repository.ErrMovieNotFound
	}
	return &m, nil
}

func (s *memStore) ListAll(_ context.Context) ([]*model.Movie, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*model.Movie, 0, len(s.movies))
	for _, m := range s.movies {
		cp := m
		out = append(out, &cp)
	}
	return out, nil
}

func (s *memStore) UpdateStatus(_ context.Context, id, status string, now int64) (*model.Movie, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.movies[id]
	if !ok {
		return nil, repository.ErrMovieNotFound
	}
	m.Status = status
	m.UpdatedAt = now
	s.movies[id] = m
	return &m, nil
}

func (s *memStore) DeleteCascade(_ context.Context, id string, interests []*model.Interest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.movies[id]; !ok {
		return repository.ErrMovieNotFound
	}
	if len(interests)+1 > 100 {
		return repository.ErrTooManyInterests
	}
	delete(s.movies, id)
	for _, in := range interests {
		delete(s.interests, ikey(in.UserID, in.MovieID))
	}
	return nil
}

func (s *memStore) Put(_ context.Context, in *model.Interest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.interests[ikey(in.UserID, in.MovieID)]; ok {
		return nil // idempotent: first record wins
	}
	s.interests[ikey(in.UserID, in.MovieID)] = *in
	return nil
}

func (s *memStore) Delete(_ context.Context, userID, movieID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.interests, ikey(userID, movieID))
	return nil
}

func (s *memStore) ListByMovie(_ context.Context, movieID string) ([]*model.Interest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*model.Interest
	for _, in := range s.interests {
		if in.MovieID == movieID {
			cp := in
			out = append(out, &cp)
		}
	}
	return out, nil
}

func newTestHandler() (*MovieHandler, *memStore) {
	s := newMemStore()
	return NewMovieHandler(s, s, nil), s
}

// invoke runs one handler against a synthetic request. movieID, when
// non-empty, becomes the :id path parameter; userID, when non-empty, is
// installed as verified claims the way JWTAuth would.
func invoke(t *testing.T, fn echo.HandlerFunc, method, path, body, movieID, userID string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if movieID != "" {
		c.SetParamNames("id")
		c.SetParamValues(movieID)
	}
	if userID != "" {
		c.Set("claims", jwt.MapClaims{"sub": userID})
	}
	require.NoError(t, fn(c))
	return rec
}

func decodeMovie(t *testing.T, rec *httptest.ResponseRecorder) model.Movie {
	t.Helper()
	var m model.Movie
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &m))
	return m
}
