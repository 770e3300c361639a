package repository

import (
	"context"
	"database/sql"
	"errors"
)

// RatingRepo provides the submit-or-update path for ratings and the
// aggregate queries consumed by the three dashboards.  Averages are
// always rounded to one decimal in SQL; the individual user rating is
// returned unrounded.  All timestamp columns are maintained by the
// database.
type RatingRepo struct {
	db *sql.DB
}

// NewRatingRepo returns a new RatingRepo bound to the given database.
func NewRatingRepo(db *sql.DB) *RatingRepo { return &RatingRepo{db: db} }

// Upsert stores the user's rating for a store, replacing any previous
// value for the same (user, store) pair.  It returns created=true when
// a new row was inserted and created=false when an existing one was
// updated.  The rating must be an integer in [1,5] (ErrInvalidRating)
// and the store must exist (ErrStoreNotFound); in both failure cases no
// row is written.
//
// Two concurrent first submissions by the same user race on the INSERT;
// the unique (user_id, store_id) key makes the loser fail with a
// duplicate-entry error, which is resolved here by retrying as an
// UPDATE and reporting an update rather than surfacing the constraint
// violation.
func (r *RatingRepo) Upsert(ctx context.Context, userID, storeID uint64, rating int) (bool, error) {
	if rating < 1 || rating > 5 {
		return false, ErrInvalidRating
	}
	var one int
	err := r.db.QueryRowContext(ctx, "SELECT 1 FROM stores WHERE id = ? LIMIT 1", storeID).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, ErrStoreNotFound
	}
	if err != nil {
		return false, err
	}

	var existing int
	err = r.db.QueryRowContext(ctx,
		"SELECT rating FROM ratings WHERE user_id = ? AND store_id = ? LIMIT 1",
		userID, storeID).Scan(&existing)
	switch {
	case err == nil:
		if _, err := r.db.ExecContext(ctx,
			"UPDATE ratings SET rating = ? WHERE user_id = ? AND store_id = ?",
			rating, userID, storeID); err != nil {
			return false, err
		}
		return false, nil
	case errors.Is(err, sql.ErrNoRows):
		_, err := r.db.ExecContext(ctx,
			"INSERT INTO ratings (user_id, store_id, rating) VALUES (?, ?, ?)",
			userID, storeID, rating)
		if err == nil {
			return true, nil
		}
		if !isDuplicateKey(err) {
			return false, err
		}
		// Lost the insert race: another request created the row between
		// our SELECT and INSERT.  Fall through to an update.
		if _, err := r.db.ExecContext(ctx,
			"UPDATE ratings SET rating = ? WHERE user_id = ? AND store_id = ?",
			rating, userID, storeID); err != nil {
			return false, err
		}
		return false, nil
	default:
		return false, err
	}
}

// StoreRatingRow is the per-store projection returned to rating users.
// UserRating is the caller's own score (nil when they have not rated
// the store) and AverageRating is the store-wide mean rounded to one
// decimal (nil when the store has no ratings at all).
type StoreRatingRow struct {
	StoreID       uint64   `json:"store_id"`
	StoreName     string   `json:"store_name"`
	Address       string   `json:"address"`
	UserRating    *int     `json:"user_rating"`
	AverageRating *float64 `json:"average_rating"`
}

// ListStoresForUser returns every store together with its average
// rating and the requesting user's own rating.  The LEFT JOIN keeps
// unrated stores in the result with a NULL user rating; the correlated
// subquery yields NULL for stores nobody has rated.  No ordering is
// guaranteed.
func (r *RatingRepo) ListStoresForUser(ctx context.Context, userID uint64) ([]StoreRatingRow, error) {
	const q = `SELECT s.id AS store_id, s.name AS store_name, s.address, r.rating AS user_rating,
	                  (SELECT ROUND(AVG(r2.rating), 1) FROM ratings r2 WHERE r2.store_id = s.id) AS average_rating
	           FROM stores s
	           LEFT JOIN ratings r ON s.id = r.store_id AND r.user_id = ?`
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]StoreRatingRow, 0)
	for rows.Next() {
		var row StoreRatingRow
		var userRating sql.NullInt64
		var avg sql.NullFloat64
		if err := rows.Scan(&row.StoreID, &row.StoreName, &row.Address, &userRating, &avg); err != nil {
			return nil, err
		}
		if userRating.Valid {
			v := int(userRating.Int64)
			row.UserRating = &v
		}
		if avg.Valid {
			v := avg.Float64
			row.AverageRating = &v
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// RaterRow identifies one user who rated the owner's store, enriched
// with name and email for display on the dashboard.
type RaterRow struct {
	UserID uint64 `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Rating int    `json:"rating"`
}

// OwnerDashboard aggregates everything the owner view needs: the store
// itself, its average rating and the full list of raters.
type OwnerDashboard struct {
	StoreID       uint64
	StoreName     string
	StoreAddress  string
	AverageRating *float64
	Raters        []RaterRow
}

// GetOwnerDashboard resolves the store owned by ownerID and returns its
// aggregate rating along with every (user, rating) pair.  When the
// owner has no store, ErrNoStoreForOwner is returned.  The schema does
// not forbid an owner holding several stores; the lowest store id wins
// and the rest are ignored, mirroring the first-row behavior of the
// query this replaces.
func (r *RatingRepo) GetOwnerDashboard(ctx context.Context, ownerID uint64) (*OwnerDashboard, error) {
	const storeQ = `SELECT id, name, address FROM stores WHERE owner_id = ? ORDER BY id LIMIT 1`
	var d OwnerDashboard
	err := r.db.QueryRowContext(ctx, storeQ, ownerID).Scan(&d.StoreID, &d.StoreName, &d.StoreAddress)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoStoreForOwner
	}
	if err != nil {
		return nil, err
	}

	const avgQ = `SELECT ROUND(AVG(rating), 1) FROM ratings WHERE store_id = ?`
	var avg sql.NullFloat64
	if err := r.db.QueryRowContext(ctx, avgQ, d.StoreID).Scan(&avg); err != nil {
		return nil, err
	}
	if avg.Valid {
		v := avg.Float64
		d.AverageRating = &v
	}

	const ratersQ = `SELECT u.id AS user_id, u.name, u.email, r.rating
	                 FROM ratings r
	                 JOIN users u ON r.user_id = u.id
	                 WHERE r.store_id = ?`
	rows, err := r.db.QueryContext(ctx, ratersQ, d.StoreID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	d.Raters = make([]RaterRow, 0)
	for rows.Next() {
		var rr RaterRow
		if err := rows.Scan(&rr.UserID, &rr.Name, &rr.Email, &rr.Rating); err != nil {
			return nil, err
		}
		d.Raters = append(d.Raters, rr)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &d, nil
}
