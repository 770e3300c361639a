// This file defines handlers for store endpoints: the public browsing
// and search API available to guests, and the admin-only creation and
// filtered listing. Public responses carry raw store rows; the admin
// listing is enriched with the owner name and aggregate rating.

package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/store-rating-platform/internal/repository"
)

// StoreHandler aggregates the store repository for both the public
// browsing routes and the admin store management routes.
type StoreHandler struct {
	StoreRepo *repository.StoreRepo
}

// NewStoreHandler constructs a new StoreHandler.  The repository must
// be non-nil.
func NewStoreHandler(storeRepo *repository.StoreRepo) *StoreHandler {
	if storeRepo == nil {
		panic("nil repository passed to NewStoreHandler")
	}
	return &StoreHandler{StoreRepo: storeRepo}
}

// publicStore is the projection exposed to unauthenticated callers.
type publicStore struct {
	ID      uint64 `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

type addStoreReq struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
	OwnerID uint64 `json:"owner_id"`
}

// ListPublic handles GET /stores/stores.  It returns every store with
// no filtering; guests use it to browse before registering.
func (h *StoreHandler) ListPublic(c echo.Context) error {
	ctx := c.Request().Context()
	stores, err := h.StoreRepo.Search(ctx, "", "")
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "server error"})
	}
	out := make([]publicStore, 0, len(stores))
	for _, s := range stores {
		out = append(out, publicStore{ID: s.ID, Name: s.Name, Email: s.Email, Address: s.Address})
	}
	return c.JSON(http.StatusOK, out)
}

// Search handles GET /stores/search.  The name and address query
// parameters are matched as substrings; both are optional.
func (h *StoreHandler) Search(c echo.Context) error {
	ctx := c.Request().Context()
	stores, err := h.StoreRepo.Search(ctx, c.QueryParam("name"), c.QueryParam("address"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "server error"})
	}
	out := make([]publicStore, 0, len(stores))
	for _, s := range stores {
		out = append(out, publicStore{ID: s.ID, Name: s.Name, Email: s.Email, Address: s.Address})
	}
	return c.JSON(http.StatusOK, out)
}

// Add handles POST /stores/add.  Only admins create stores; the owner
// must be an existing user carrying the store_owner role.
func (h *StoreHandler) Add(c echo.Context) error {
	var req addStoreReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Name == "" || req.Email == "" || req.Address == "" || req.OwnerID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "all fields are required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if _, err := h.StoreRepo.Create(ctx, req.Name, req.Email, req.Address, req.OwnerID); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create store failed"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "store added successfully"})
}

// ListAdmin handles GET /stores.  It returns stores matching the
// optional name/email/address filters, enriched with the owner name
// and average rating, ordered by store name.
func (h *StoreHandler) ListAdmin(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	rows, err := h.StoreRepo.ListFiltered(ctx, repository.StoreListFilter{
		Name:    c.QueryParam("name"),
		Email:   c.QueryParam("email"),
		Address: c.QueryParam("address"),
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "error fetching stores"})
	}
	return c.JSON(http.StatusOK, rows)
}
