package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/store-rating-platform/internal/queue"
	"github.com/iliyamo/store-rating-platform/internal/repository"
	queue_publisher "github.com/iliyamo/store-rating-platform/internal/service"
)

// RatingHandler serves the rating submission and listing endpoints for
// users.  All methods assume that JWT authentication and role
// validation have already been performed by middleware.
type RatingHandler struct {
	RatingRepo *repository.RatingRepo
}

// NewRatingHandler constructs a new RatingHandler with the provided
// repository.  The dependency must be non-nil.
func NewRatingHandler(ratingRepo *repository.RatingRepo) *RatingHandler {
	if ratingRepo == nil {
		panic("nil repository passed to NewRatingHandler")
	}
	return &RatingHandler{RatingRepo: ratingRepo}
}

type submitRatingReq struct {
	StoreID uint64 `json:"store_id"`
	Rating  int    `json:"rating"`
}

// Submit handles POST /ratings/submit.  A first submission for the
// (user, store) pair inserts a row and returns 201; a resubmission
// replaces the stored value and returns 200.  Ratings outside 1–5 and
// unknown stores are rejected with 400 before anything is written.
func (h *RatingHandler) Submit(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req submitRatingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.StoreID == 0 || req.Rating == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "store and rating are required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	created, err := h.RatingRepo.Upsert(ctx, userID, req.StoreID, req.Rating)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrInvalidRating):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "rating must be between 1 and 5"})
		case errors.Is(err, repository.ErrStoreNotFound):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "store not found"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "submit rating failed"})
		}
	}

	// Fire the domain event without blocking the response; the publisher
	// logs its own failures and they never affect the caller.
	evt := queue.RatingSubmittedEvent{
		UserID:      userID,
		StoreID:     req.StoreID,
		Rating:      req.Rating,
		Created:     created,
		SubmittedAt: time.Now().UTC().Format(time.RFC3339),
	}
	go func() {
		pubCtx, pubCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer pubCancel()
		_ = queue_publisher.PublishRatingSubmitted(pubCtx, evt)
	}()

	if created {
		return c.JSON(http.StatusCreated, echo.Map{"message": "rating submitted successfully"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "rating updated successfully"})
}

// List handles GET /ratings.  It returns every store with its average
// rating and the calling user's own rating, as a flat JSON array.
func (h *RatingHandler) List(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	rows, err := h.RatingRepo.ListStoresForUser(ctx, userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, rows)
}
