package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/store-rating-platform/internal/repository"
)

// OwnerHandler serves the store owner dashboard.  It assumes the JWT
// and role middlewares have already admitted a store_owner.
type OwnerHandler struct {
	RatingRepo *repository.RatingRepo
}

// NewOwnerHandler constructs a new OwnerHandler and panics if the
// repository is nil.
func NewOwnerHandler(ratingRepo *repository.RatingRepo) *OwnerHandler {
	if ratingRepo == nil {
		panic("nil repository passed to NewOwnerHandler")
	}
	return &OwnerHandler{RatingRepo: ratingRepo}
}

type ownerStorePart struct {
	ID      uint64 `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

type ownerDashboardResp struct {
	Store         ownerStorePart       `json:"store"`
	AverageRating *float64             `json:"average_rating"`
	UsersRated    []repository.RaterRow `json:"users_rated"`
}

// Dashboard handles GET /owner/dashboard.  It resolves the caller's
// store and returns its average rating (null when unrated) together
// with every user who rated it.  Owners without a store receive 404.
func (h *OwnerHandler) Dashboard(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	d, err := h.RatingRepo.GetOwnerDashboard(ctx, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrNoStoreForOwner) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "no store found for this owner"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	return c.JSON(http.StatusOK, ownerDashboardResp{
		Store:         ownerStorePart{ID: d.StoreID, Name: d.StoreName, Address: d.StoreAddress},
		AverageRating: d.AverageRating,
		UsersRated:    d.Raters,
	})
}
