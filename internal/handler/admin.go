package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/store-rating-platform/internal/model"
	"github.com/iliyamo/store-rating-platform/internal/repository"
)

// AdminHandler groups the repositories backing the admin dashboard:
// platform statistics, user management views and the store listing
// with aggregate ratings.
type AdminHandler struct {
	UserRepo  *repository.UserRepo
	StoreRepo *repository.StoreRepo
	StatsRepo *repository.StatsRepo
}

// NewAdminHandler constructs a new AdminHandler with the provided
// repositories.  All dependencies must be non-nil.
func NewAdminHandler(userRepo *repository.UserRepo, storeRepo *repository.StoreRepo, statsRepo *repository.StatsRepo) *AdminHandler {
	if userRepo == nil || storeRepo == nil || statsRepo == nil {
		panic("nil repository passed to NewAdminHandler")
	}
	return &AdminHandler{UserRepo: userRepo, StoreRepo: storeRepo, StatsRepo: statsRepo}
}

// Stats handles GET /admin/stats.  The stores figure counts store
// rows, not store_owner users; see StatsRepo.Counts for the historical
// alternate definition.
func (h *AdminHandler) Stats(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	s, err := h.StatsRepo.Counts(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "error fetching stats"})
	}
	return c.JSON(http.StatusOK, s)
}

// Users handles GET /admin/users.  Optional name, email, address and
// role query parameters narrow the listing; name/email/address match
// as substrings, role matches exactly.
func (h *AdminHandler) Users(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	rows, err := h.UserRepo.List(ctx, repository.UserListFilter{
		Name:    c.QueryParam("name"),
		Email:   c.QueryParam("email"),
		Address: c.QueryParam("address"),
		Role:    c.QueryParam("role"),
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "error fetching users"})
	}
	return c.JSON(http.StatusOK, rows)
}

// UserByID handles GET /admin/users/:id.  The response carries a
// store_rating field only when the subject is a store owner; for other
// roles the field is omitted entirely even though the query always
// computes it.
func (h *AdminHandler) UserByID(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	d, err := h.UserRepo.GetDetailByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	resp := echo.Map{
		"id":      d.ID,
		"name":    d.Name,
		"email":   d.Email,
		"address": d.Address,
		"role":    d.Role,
	}
	if d.Role == model.RoleStoreOwner {
		// Present even when null so owners without ratings still see the field.
		resp["store_rating"] = d.StoreRating
	}
	return c.JSON(http.StatusOK, resp)
}

// Stores handles GET /admin/stores: all stores with their average
// rating (0 when unrated), ordered by name.
func (h *AdminHandler) Stores(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	rows, err := h.StoreRepo.ListWithRatings(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "error fetching stores"})
	}
	return c.JSON(http.StatusOK, rows)
}
