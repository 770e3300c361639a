// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios. For
// example, ErrInvalidRating indicates a score outside the accepted
// 1–5 range, while ErrNoStoreForOwner signals that a store owner
// requested a dashboard without owning any store.
package repository

import "errors"

// ErrInvalidRating is returned when a submitted rating falls outside
// the accepted 1–5 integer range. Handlers should translate this
// into an HTTP 400 response. No row is written in this case.
var ErrInvalidRating = errors.New("rating must be between 1 and 5")

// ErrStoreNotFound is returned when an operation references a store
// ID that does not exist. Handlers should translate this into an
// HTTP 400 or 404 response depending on the endpoint contract.
var ErrStoreNotFound = errors.New("store not found")

// ErrUserNotFound is returned when a lookup by user ID matches no
// row. Handlers should translate this into an HTTP 404 response.
var ErrUserNotFound = errors.New("user not found")

// ErrNoStoreForOwner is returned by the owner dashboard query when
// the calling owner has no store registered. Handlers should
// translate this into an HTTP 404 response.
var ErrNoStoreForOwner = errors.New("no store found for this owner")

// ErrEmailExists is returned when an insert collides with the unique
// index on users.email. Handlers should translate this into an
// HTTP 409 response.
var ErrEmailExists = errors.New("email already exists")
