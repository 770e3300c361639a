package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/iliyamo/store-rating-platform/internal/model"
	"github.com/iliyamo/store-rating-platform/internal/utils"
)

// UserRepo provides access to the users table.  Besides plain CRUD it
// implements the admin listing with optional substring filters and the
// user detail projection that attaches the average rating of the store
// owned by the user.
type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

// Create inserts a user and returns its ID.  The email is normalized to
// lower case and the password is hashed with bcrypt before insertion.
// A collision with the unique email index yields ErrEmailExists.
func (r *UserRepo) Create(ctx context.Context, name, email, password, address, role string, cost int) (uint64, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return 0, err
	}
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO users (name, email, password, address, role) VALUES (?,?,?,?,?)",
		name, email, hash, address, role)
	if err != nil {
		if isDuplicateKey(err) {
			return 0, ErrEmailExists
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetByEmail fetches a user by normalized email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	var u model.User
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,name,email,password,address,role FROM users WHERE email=? LIMIT 1",
		email).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Address, &u.Role)
	return u, err
}

// GetByID fetches a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id uint64) (model.User, error) {
	var u model.User
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,name,email,password,address,role FROM users WHERE id=? LIMIT 1",
		id).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Address, &u.Role)
	return u, err
}

// UpdatePassword replaces the stored password hash for the given user.
func (r *UserRepo) UpdatePassword(ctx context.Context, id uint64, newPassword string, cost int) error {
	hash, err := utils.HashPassword(newPassword, cost)
	if err != nil {
		return err
	}
	_, err = r.DB.ExecContext(ctx, "UPDATE users SET password=? WHERE id=?", hash, id)
	return err
}

// UserListFilter carries the optional substring filters accepted by the
// admin user listing.  Empty fields are ignored.  Role, when set, must
// match exactly.
type UserListFilter struct {
	Name    string
	Email   string
	Address string
	Role    string
}

// UserRow is the projection returned by the admin listing.  The
// password hash is deliberately excluded.
type UserRow struct {
	ID      uint64 `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Role    string `json:"role"`
}

// List returns users matching the filter.  Name, email and address are
// matched as case-insensitive substrings; role is matched exactly.
func (r *UserRepo) List(ctx context.Context, f UserListFilter) ([]UserRow, error) {
	q := "SELECT id, name, email, address, role FROM users WHERE 1=1"
	args := make([]interface{}, 0, 4)
	if f.Name != "" {
		q += " AND name LIKE ?"
		args = append(args, "%"+f.Name+"%")
	}
	if f.Email != "" {
		q += " AND email LIKE ?"
		args = append(args, "%"+f.Email+"%")
	}
	if f.Address != "" {
		q += " AND address LIKE ?"
		args = append(args, "%"+f.Address+"%")
	}
	if f.Role != "" {
		q += " AND role = ?"
		args = append(args, f.Role)
	}
	rows, err := r.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]UserRow, 0)
	for rows.Next() {
		var u UserRow
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Address, &u.Role); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// UserDetail is the single-user projection returned to admins.  The
// StoreRating field holds the average rating of the store owned by the
// user.  It is always computed by the query but serialized only for
// store owners; handlers clear it for other roles before responding.
type UserDetail struct {
	ID          uint64   `json:"id"`
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Address     string   `json:"address"`
	Role        string   `json:"role"`
	StoreRating *float64 `json:"store_rating,omitempty"`
}

// GetDetailByID returns a single user together with the average rating
// of the store they own, rounded to one decimal.  The subquery yields
// NULL when the user owns no store or the store has no ratings.  When
// no user matches the ID, ErrUserNotFound is returned.
func (r *UserRepo) GetDetailByID(ctx context.Context, id uint64) (UserDetail, error) {
	const q = `SELECT u.id, u.name, u.email, u.address, u.role,
	                  (SELECT ROUND(AVG(r.rating), 1) FROM ratings r
	                   JOIN stores s ON r.store_id = s.id
	                   WHERE s.owner_id = u.id) AS store_rating
	           FROM users u
	           WHERE u.id = ?`
	var d UserDetail
	var avg sql.NullFloat64
	err := r.DB.QueryRowContext(ctx, q, id).Scan(&d.ID, &d.Name, &d.Email, &d.Address, &d.Role, &avg)
	if err != nil {
		if err == sql.ErrNoRows {
			return UserDetail{}, ErrUserNotFound
		}
		return UserDetail{}, err
	}
	if avg.Valid {
		v := avg.Float64
		d.StoreRating = &v
	}
	return d, nil
}

// isDuplicateKey reports whether the error is a MySQL duplicate-entry
// violation (error 1062), raised when a unique index is hit.
func isDuplicateKey(err error) bool {
	return err != nil && strings.Contains(strings.ToLower(err.Error()), "1062")
}
