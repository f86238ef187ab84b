package usecase

import (
	"context"

	"heritage/internal/domain/entity"
)

// ReviewUsecase exposes the read-only guest reviews for the home page.
type ReviewUsecase interface {
	Reviews(ctx context.Context) ([]entity.Review, error)
}
