package handler

import (
	"log/slog"
	"net/http"

	"heritage/internal/delivery/http/response"
	"heritage/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ReviewHandler holds dependencies for the guest review handlers.
type ReviewHandler struct {
	uc     usecase.ReviewUsecase
	logger *slog.Logger
}

// NewReviewHandler is the constructor for ReviewHandler, injected by Fx.
func NewReviewHandler(uc usecase.ReviewUsecase, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{
		uc:     uc,
		logger: logger,
	}
}

type reviewView struct {
	ID           string `json:"id"`
	Content      string `json:"content"`
	ReviewerName string `json:"reviewerName"`
	Rating       int    `json:"rating"`
}

// List handles the review listing request for the home page.
func (h *ReviewHandler) List(c echo.Context) error {
	reviews, err := h.uc.Reviews(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]reviewView, 0, len(reviews))
	for _, review := range reviews {
		views = append(views, reviewView{
			ID:           review.ID,
			Content:      review.Content,
			ReviewerName: review.ReviewerName,
			Rating:       review.Rating,
		})
	}

	return response.Success(c, http.StatusOK, views, "Reviews retrieved successfully")
}
