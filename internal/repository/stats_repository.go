package repository

import (
	"context"
	"database/sql"
)

// StatsRepo serves the admin dashboard cardinalities.  The counts are
// plain COUNT(*) queries with no filtering or pagination.
type StatsRepo struct {
	db *sql.DB
}

// NewStatsRepo returns a new StatsRepo bound to the given database.
func NewStatsRepo(db *sql.DB) *StatsRepo { return &StatsRepo{db: db} }

// PlatformStats carries the three platform-wide totals shown on the
// admin dashboard.
type PlatformStats struct {
	Users   uint64 `json:"users"`
	Stores  uint64 `json:"stores"`
	Ratings uint64 `json:"ratings"`
}

// Counts returns the number of user, store and rating rows.  The
// "stores" figure counts store rows; an older revision of the stats
// endpoint counted users with the store_owner role instead, which
// CountStoreOwners still provides.
func (r *StatsRepo) Counts(ctx context.Context) (PlatformStats, error) {
	var s PlatformStats
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM users").Scan(&s.Users); err != nil {
		return PlatformStats{}, err
	}
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM stores").Scan(&s.Stores); err != nil {
		return PlatformStats{}, err
	}
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM ratings").Scan(&s.Ratings); err != nil {
		return PlatformStats{}, err
	}
	return s, nil
}

// CountStoreOwners returns the number of users holding the store_owner
// role.  Kept for the historical stats variant that reported this
// figure as "stores".
func (r *StatsRepo) CountStoreOwners(ctx context.Context) (uint64, error) {
	var n uint64
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM users WHERE role = 'store_owner'").Scan(&n)
	return n, err
}
