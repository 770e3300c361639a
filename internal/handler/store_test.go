package handler

import (
	"net/http"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/store-rating-platform/internal/repository"
)

func newStoreHandlerFixture(t *testing.T) (*StoreHandler, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	h := NewStoreHandler(repository.NewStoreRepo(db))
	return h, mock, func() { db.Close() }
}

func TestStoreHandler_Search_HidesOwnerID(t *testing.T) {
	h, mock, closeFn := newStoreHandlerFixture(t)
	defer closeFn()

	mock.ExpectQuery("FROM stores WHERE 1=1").
		WithArgs("%mart%").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "address", "owner_id"}).
			AddRow(7, "Fresh Mart", "contact@freshmart.example.com", "12 Main St", 8))

	c, rec := newJSONContext(t, http.MethodGet, "/stores/search?name=mart", "", 0)
	require.NoError(t, h.Search(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"name":"Fresh Mart"`)
	assert.NotContains(t, rec.Body.String(), "owner_id")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStoreHandler_Add(t *testing.T) {
	h, mock, closeFn := newStoreHandlerFixture(t)
	defer closeFn()

	mock.ExpectExec("INSERT INTO stores").
		WithArgs("Fresh Mart", "contact@freshmart.example.com", "12 Main St", int64(8)).
		WillReturnResult(sqlmock.NewResult(7, 1))

	body := `{"name":"Fresh Mart","email":"contact@freshmart.example.com","address":"12 Main St","owner_id":8}`
	c, rec := newJSONContext(t, http.MethodPost, "/stores/add", body, 1)
	require.NoError(t, h.Add(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "store added successfully")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStoreHandler_Add_MissingFields(t *testing.T) {
	h, _, closeFn := newStoreHandlerFixture(t)
	defer closeFn()

	c, rec := newJSONContext(t, http.MethodPost, "/stores/add", `{"name":"Fresh Mart"}`, 1)
	require.NoError(t, h.Add(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStoreHandler_ListAdmin(t *testing.T) {
	h, mock, closeFn := newStoreHandlerFixture(t)
	defer closeFn()

	mock.ExpectQuery("LEFT JOIN users u").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "address", "owner_name", "average_rating"}).
			AddRow(7, "Fresh Mart", "contact@freshmart.example.com", "12 Main St", "Robert James Callahan", 3.5))

	c, rec := newJSONContext(t, http.MethodGet, "/stores", "", 1)
	require.NoError(t, h.ListAdmin(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"owner_name":"Robert James Callahan"`)
	assert.NoError(t, mock.ExpectationsWereMet())
}
