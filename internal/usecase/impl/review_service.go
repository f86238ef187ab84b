package impl

import (
	"context"
	"log/slog"

	"heritage/internal/domain/entity"
	"heritage/internal/domain/gateway"
	"heritage/internal/infra/querycache"
	"heritage/internal/usecase"

	"github.com/pkg/errors"
)

const keyReviews = "reviews"

// reviewService implements the ReviewUsecase interface.
type reviewService struct {
	gw     gateway.Gateway
	cache  *querycache.Cache
	logger *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(gw gateway.Gateway, cache *querycache.Cache, logger *slog.Logger) usecase.ReviewUsecase {
	return &reviewService{
		gw:     gw,
		cache:  cache,
		logger: logger,
	}
}

// Reviews lists the guest reviews. Read-only, so the cached copy lives
// until process restart.
func (srv *reviewService) Reviews(ctx context.Context) ([]entity.Review, error) {
	if !srv.gw.Ready() {
		return []entity.Review{}, nil
	}

	if cached, ok := querycache.Lookup[[]entity.Review](srv.cache, keyReviews); ok {
		return cached, nil
	}

	reviews, err := srv.gw.GetAllReviews(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}
	srv.cache.Set(keyReviews, reviews)

	return reviews, nil
}
