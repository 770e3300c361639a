package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newUserTestFixture(t *testing.T) (*UserRepo, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	return NewUserRepo(db), mock, func() { db.Close() }
}

func TestUserRepo_Create_NormalizesEmailAndHashes(t *testing.T) {
	repo, mock, closeFn := newUserTestFixture(t)
	defer closeFn()

	mock.ExpectExec("INSERT INTO users").
		WithArgs("Alice Margaret Whitfield", "alice@example.com", sqlmock.AnyArg(), "12 Main St", "user").
		WillReturnResult(sqlmock.NewResult(12, 1))

	id, err := repo.Create(context.Background(),
		"Alice Margaret Whitfield", "  Alice@Example.COM ", "Secret@123", "12 Main St", "user", bcrypt.MinCost)
	require.NoError(t, err)
	assert.Equal(t, uint64(12), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_Create_DuplicateEmail(t *testing.T) {
	repo, mock, closeFn := newUserTestFixture(t)
	defer closeFn()

	mock.ExpectExec("INSERT INTO users").
		WillReturnError(errors.New("Error 1062 (23000): Duplicate entry 'alice@example.com' for key 'users.email'"))

	_, err := repo.Create(context.Background(),
		"Alice Margaret Whitfield", "alice@example.com", "Secret@123", "12 Main St", "user", bcrypt.MinCost)
	assert.ErrorIs(t, err, ErrEmailExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_List_AppliesFilters(t *testing.T) {
	repo, mock, closeFn := newUserTestFixture(t)
	defer closeFn()

	mock.ExpectQuery(regexp.QuoteMeta("AND name LIKE ? AND role = ?")).
		WithArgs("%alice%", "store_owner").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "address", "role"}).
			AddRow(4, "Alice Margaret Whitfield", "alice@example.com", "12 Main St", "store_owner"))

	out, err := repo.List(context.Background(), UserListFilter{Name: "alice", Role: "store_owner"})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "store_owner", out[0].Role)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_List_NoFilters(t *testing.T) {
	repo, mock, closeFn := newUserTestFixture(t)
	defer closeFn()

	mock.ExpectQuery("FROM users WHERE 1=1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "address", "role"}).
			AddRow(1, "Admin Account Holder", "admin@example.com", "1 HQ Plaza", "admin").
			AddRow(2, "Alice Margaret Whitfield", "alice@example.com", "12 Main St", "user"))

	out, err := repo.List(context.Background(), UserListFilter{})
	require.NoError(t, err)
	assert.Len(t, out, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_GetDetailByID_OwnerWithRatedStore(t *testing.T) {
	repo, mock, closeFn := newUserTestFixture(t)
	defer closeFn()

	mock.ExpectQuery("FROM users u").
		WithArgs(int64(8)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "address", "role", "store_rating"}).
			AddRow(8, "Robert James Callahan", "robert@example.com", "3 Elm Ave", "store_owner", 4.2))

	d, err := repo.GetDetailByID(context.Background(), 8)
	require.NoError(t, err)
	require.NotNil(t, d.StoreRating)
	assert.Equal(t, 4.2, *d.StoreRating)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_GetDetailByID_NoRatings(t *testing.T) {
	repo, mock, closeFn := newUserTestFixture(t)
	defer closeFn()

	mock.ExpectQuery("FROM users u").
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "address", "role", "store_rating"}).
			AddRow(2, "Alice Margaret Whitfield", "alice@example.com", "12 Main St", "user", nil))

	d, err := repo.GetDetailByID(context.Background(), 2)
	require.NoError(t, err)
	assert.Nil(t, d.StoreRating)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_GetDetailByID_NotFound(t *testing.T) {
	repo, mock, closeFn := newUserTestFixture(t)
	defer closeFn()

	mock.ExpectQuery("FROM users u").
		WithArgs(int64(404)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetDetailByID(context.Background(), 404)
	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_UpdatePassword(t *testing.T) {
	repo, mock, closeFn := newUserTestFixture(t)
	defer closeFn()

	mock.ExpectExec("UPDATE users SET password").
		WithArgs(sqlmock.AnyArg(), int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdatePassword(context.Background(), 2, "NewSecret@99", bcrypt.MinCost)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIsDuplicateKey(t *testing.T) {
	assert.True(t, isDuplicateKey(errors.New("Error 1062: Duplicate entry")))
	assert.False(t, isDuplicateKey(errors.New("Error 1452: foreign key constraint fails")))
	assert.False(t, isDuplicateKey(nil))
}
