// Package queue defines message payloads exchanged over the message broker.
package queue

// Event types carried in MovieEvent.Type.
const (
	EventMovieCreated       = "movie.created"
	EventMovieStatusChanged = "movie.status_changed"
	EventMovieDeleted       = "movie.deleted"
	EventInterestAdded      = "interest.added"
	EventInterestRemoved    = "interest.removed"
)

// MovieEvent is published after a successful mutation of a movie or an
// interest. It carries enough information for downstream consumers to
// log or notify without querying the tables. Fields that do not apply to
// a given event type are left empty.
type MovieEvent struct {
	Type       string `json:"type"`
	MovieID    string `json:"movie_id"`
	Title      string `json:"title,omitempty"`
	Status     string `json:"status,omitempty"`
	UserID     string `json:"user_id,omitempty"`
	OccurredAt string `json:"occurred_at"`
}
