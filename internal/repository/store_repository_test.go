package repository

import (
	"context"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStoreTestFixture(t *testing.T) (*StoreRepo, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	return NewStoreRepo(db), mock, func() { db.Close() }
}

func TestStoreRepo_Create(t *testing.T) {
	repo, mock, closeFn := newStoreTestFixture(t)
	defer closeFn()

	mock.ExpectExec("INSERT INTO stores").
		WithArgs("Fresh Mart", "contact@freshmart.example.com", "12 Main St", int64(8)).
		WillReturnResult(sqlmock.NewResult(7, 1))

	id, err := repo.Create(context.Background(), "Fresh Mart", "contact@freshmart.example.com", "12 Main St", 8)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStoreRepo_Search_ByNameAndAddress(t *testing.T) {
	repo, mock, closeFn := newStoreTestFixture(t)
	defer closeFn()

	mock.ExpectQuery("FROM stores WHERE 1=1").
		WithArgs("%mart%", "%main%").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "address", "owner_id"}).
			AddRow(7, "Fresh Mart", "contact@freshmart.example.com", "12 Main St", 8))

	out, err := repo.Search(context.Background(), "mart", "main")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Fresh Mart", out[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStoreRepo_Search_EmptyFiltersListAll(t *testing.T) {
	repo, mock, closeFn := newStoreTestFixture(t)
	defer closeFn()

	mock.ExpectQuery("FROM stores WHERE 1=1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "address", "owner_id"}).
			AddRow(7, "Fresh Mart", "contact@freshmart.example.com", "12 Main St", 8).
			AddRow(9, "Book Nook", "hello@booknook.example.com", "3 Elm Ave", 11))

	out, err := repo.Search(context.Background(), "", "")
	require.NoError(t, err)
	assert.Len(t, out, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStoreRepo_ListWithRatings(t *testing.T) {
	repo, mock, closeFn := newStoreTestFixture(t)
	defer closeFn()

	mock.ExpectQuery("LEFT JOIN ratings r").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "address", "avg_rating"}).
			AddRow(9, "Book Nook", "hello@booknook.example.com", "3 Elm Ave", 0.0).
			AddRow(7, "Fresh Mart", "contact@freshmart.example.com", "12 Main St", 3.5))

	out, err := repo.ListWithRatings(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, 0.0, out[0].AverageRating)
	assert.Equal(t, 3.5, out[1].AverageRating)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStoreRepo_ListFiltered(t *testing.T) {
	repo, mock, closeFn := newStoreTestFixture(t)
	defer closeFn()

	mock.ExpectQuery("LEFT JOIN users u").
		WithArgs("%mart%").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "address", "owner_name", "average_rating"}).
			AddRow(7, "Fresh Mart", "contact@freshmart.example.com", "12 Main St", "Robert James Callahan", 3.5).
			AddRow(13, "Martha's Pantry", "martha@example.com", "9 Willow Ln", nil, nil))

	out, err := repo.ListFiltered(context.Background(), StoreListFilter{Name: "mart"})
	require.NoError(t, err)
	require.Len(t, out, 2)

	require.NotNil(t, out[0].OwnerName)
	assert.Equal(t, "Robert James Callahan", *out[0].OwnerName)
	require.NotNil(t, out[0].AverageRating)
	assert.Equal(t, 3.5, *out[0].AverageRating)

	assert.Nil(t, out[1].OwnerName)
	assert.Nil(t, out[1].AverageRating)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStoreRepo_Exists(t *testing.T) {
	repo, mock, closeFn := newStoreTestFixture(t)
	defer closeFn()

	mock.ExpectQuery("SELECT 1 FROM stores").
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))

	ok, err := repo.Exists(context.Background(), 7)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}
