// Package repository contains data access logic separated from HTTP handlers.
// This file defines repository methods for store creation, public browsing
// and the admin listings that attach aggregate ratings. Stores are created
// by admins only and never mutated afterwards.
package repository

import (
	"context"      // context allows passing deadlines and cancellation signals to DB operations
	"database/sql" // sql provides generic database operations and drivers
	"errors"

	"github.com/iliyamo/store-rating-platform/internal/model"
)

// StoreRepo encapsulates all database queries related to stores.  It
// depends on a sql.DB connection which should be configured elsewhere.
type StoreRepo struct {
	db *sql.DB // db is the underlying database connection pool
}

// NewStoreRepo constructs a StoreRepo with the provided DB handle.  This
// function allows dependency injection of the database in tests and at
// startup.  There is no initialization logic beyond assigning the field.
func NewStoreRepo(db *sql.DB) *StoreRepo {
	return &StoreRepo{db: db}
}

// Create inserts a new store and returns its generated ID.  The owner
// must reference an existing user; referential integrity is enforced by
// the schema's foreign key.
func (r *StoreRepo) Create(ctx context.Context, name, email, address string, ownerID uint64) (uint64, error) {
	const q = "INSERT INTO stores (name, email, address, owner_id) VALUES (?, ?, ?, ?)"
	res, err := r.db.ExecContext(ctx, q, name, email, address, ownerID)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// Exists reports whether a store with the given ID is present.
func (r *StoreRepo) Exists(ctx context.Context, id uint64) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx, "SELECT 1 FROM stores WHERE id = ? LIMIT 1", id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Search returns stores whose name and address match the given
// substrings.  Empty filter values are ignored, so Search("", "")
// lists every store.  Used by the public browsing endpoints.
func (r *StoreRepo) Search(ctx context.Context, name, address string) ([]model.Store, error) {
	q := "SELECT id, name, email, address, owner_id FROM stores WHERE 1=1"
	args := make([]interface{}, 0, 2)
	if name != "" {
		q += " AND name LIKE ?"
		args = append(args, "%"+name+"%")
	}
	if address != "" {
		q += " AND address LIKE ?"
		args = append(args, "%"+address+"%")
	}
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Store, 0)
	for rows.Next() {
		var s model.Store
		if err := rows.Scan(&s.ID, &s.Name, &s.Email, &s.Address, &s.OwnerID); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// StoreWithRating is the admin listing projection: store fields plus
// the aggregate rating.  AverageRating is zero when the store has no
// ratings, matching the COALESCE in the query.
type StoreWithRating struct {
	ID            uint64  `json:"id"`
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	Address       string  `json:"address"`
	AverageRating float64 `json:"avg_rating"`
}

// ListWithRatings returns all stores with their average rating rounded
// to one decimal, ordered by name.  Stores without ratings report 0.
func (r *StoreRepo) ListWithRatings(ctx context.Context) ([]StoreWithRating, error) {
	const q = `SELECT s.id, s.name, s.email, s.address,
	                  COALESCE(ROUND(AVG(r.rating), 1), 0) AS avg_rating
	           FROM stores s
	           LEFT JOIN ratings r ON s.id = r.store_id
	           GROUP BY s.id, s.name, s.email, s.address
	           ORDER BY s.name ASC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]StoreWithRating, 0)
	for rows.Next() {
		var s StoreWithRating
		if err := rows.Scan(&s.ID, &s.Name, &s.Email, &s.Address, &s.AverageRating); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// StoreAdminRow extends the listing with the owner's display name and a
// nullable average, used by the filtered admin store listing.
type StoreAdminRow struct {
	ID            uint64   `json:"id"`
	Name          string   `json:"name"`
	Email         string   `json:"email"`
	Address       string   `json:"address"`
	OwnerName     *string  `json:"owner_name"`
	AverageRating *float64 `json:"average_rating"`
}

// StoreListFilter carries the optional substring filters accepted by
// the filtered admin store listing.  Empty fields are ignored.
type StoreListFilter struct {
	Name    string
	Email   string
	Address string
}

// ListFiltered returns stores matching the filter, enriched with the
// owner's name and the average rating rounded to one decimal.  The
// average is NULL for unrated stores and the owner name is NULL when
// the owner row is missing.  Results are ordered by store name.
func (r *StoreRepo) ListFiltered(ctx context.Context, f StoreListFilter) ([]StoreAdminRow, error) {
	q := `SELECT s.id, s.name, s.email, s.address, u.name AS owner_name,
	             ROUND(AVG(r.rating), 1) AS average_rating
	      FROM stores s
	      LEFT JOIN users u ON s.owner_id = u.id
	      LEFT JOIN ratings r ON s.id = r.store_id
	      WHERE 1=1`
	args := make([]interface{}, 0, 3)
	if f.Name != "" {
		q += " AND s.name LIKE ?"
		args = append(args, "%"+f.Name+"%")
	}
	if f.Email != "" {
		q += " AND s.email LIKE ?"
		args = append(args, "%"+f.Email+"%")
	}
	if f.Address != "" {
		q += " AND s.address LIKE ?"
		args = append(args, "%"+f.Address+"%")
	}
	q += " GROUP BY s.id ORDER BY s.name ASC"
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]StoreAdminRow, 0)
	for rows.Next() {
		var s StoreAdminRow
		var owner sql.NullString
		var avg sql.NullFloat64
		if err := rows.Scan(&s.ID, &s.Name, &s.Email, &s.Address, &owner, &avg); err != nil {
			return nil, err
		}
		if owner.Valid {
			n := owner.String
			s.OwnerName = &n
		}
		if avg.Valid {
			v := avg.Float64
			s.AverageRating = &v
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
