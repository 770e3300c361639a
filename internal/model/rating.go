package model

import "time"

// Rating bounds enforced on submission.  Values outside this range
// are rejected before any row is written.
const (
    RatingMin = 1
    RatingMax = 5
)

// Rating records a single user's 1–5 score for a store.  The pair
// (UserID, StoreID) is unique: resubmitting replaces the stored
// value instead of adding a row.  This struct corresponds to a row
// in the `ratings` table.
//
// Fields:
//  ID        – primary key identifier.
//  UserID    – user who submitted the rating.
//  StoreID   – store being rated.
//  Rating    – integer score between 1 and 5 inclusive.
//  CreatedAt – creation timestamp.
//  UpdatedAt – last update timestamp (changes on resubmission).
type Rating struct {
    ID        uint64    // ratings.id
    UserID    uint64    // ratings.user_id
    StoreID   uint64    // ratings.store_id
    Rating    int       // ratings.rating
    CreatedAt time.Time // ratings.created_at
    UpdatedAt time.Time // ratings.updated_at
}
