// Package queue defines message payloads exchanged over the message broker.
package queue

// RatingSubmittedEvent is published after a rating is stored, whether the
// submission created a new row or replaced an existing value. It contains
// enough information for downstream consumers to log, notify, or trigger
// analytics without querying the primary database.
type RatingSubmittedEvent struct {
    UserID      uint64 `json:"user_id"`
    StoreID     uint64 `json:"store_id"`
    Rating      int    `json:"rating"`
    Created     bool   `json:"created"`
    SubmittedAt string `json:"submitted_at"`
}
