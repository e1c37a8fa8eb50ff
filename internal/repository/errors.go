// Package repository defines error values that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios without
// inspecting AWS error types themselves. For example, ErrConflict
// indicates that a conditional insert hit an existing key, while
// ErrTooManyInterests signals that a cascading delete cannot be
// performed in a single atomic transaction.
package repository

import "errors"

// ErrConflict is returned when a conditional insert hits an existing key.
// With v4 ids a collision on create indicates an id generation bug, but
// the write is still guarded so an existing movie can never be silently
// overwritten. Handlers should translate this into an HTTP 409 response.
var ErrConflict = errors.New("conflict")

// ErrTooManyInterests is returned when the interests attached to a movie
// exceed the capacity of a single transactional write. The delete is
// refused entirely; splitting the batch would open a window where the
// movie is gone but stale interests remain. Handlers should translate
// this into an HTTP 409 response.
var ErrTooManyInterests = errors.New("too many interests to delete atomically")
