package impl

import (
	"context"
	"log/slog"
	"strings"

	"heritage/internal/domain/entity"
	"heritage/internal/domain/gateway"
	"heritage/internal/infra/querycache"
	"heritage/internal/usecase"

	"github.com/pkg/errors"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	gw     gateway.Gateway
	cache  *querycache.Cache
	logger *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(gw gateway.Gateway, cache *querycache.Cache, logger *slog.Logger) usecase.ProfileUsecase {
	return &profileService{
		gw:     gw,
		cache:  cache,
		logger: logger,
	}
}

// GetCallerProfile returns the caller's profile, caching the result
// (including a cached absence) under the caller's key.
func (srv *profileService) GetCallerProfile(ctx context.Context, caller entity.Identity) (*entity.UserProfile, error) {
	key := querycache.Key(opCallerProfile, caller.String())
	if cached, ok := querycache.Lookup[*entity.UserProfile](srv.cache, key); ok {
		return cached, nil
	}

	profile, err := srv.gw.GetCallerUserProfile(ctx, caller)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get caller profile")
	}
	srv.cache.Set(key, profile)

	return profile, nil
}

// SaveCallerProfile validates and persists the profile, then drops the
// cached copy so the next access evaluation re-reads the saved state.
func (srv *profileService) SaveCallerProfile(ctx context.Context, caller entity.Identity, input *usecase.ProfileInput) error {
	fieldErrs := usecase.FieldErrors{}
	if strings.TrimSpace(input.Name) == "" {
		fieldErrs["name"] = "Name is required"
	}
	if err := fieldErrs.OrNil(); err != nil {
		return err
	}

	profile := entity.UserProfile{
		Name:        strings.TrimSpace(input.Name),
		Email:       strings.TrimSpace(input.Email),
		PhoneNumber: strings.TrimSpace(input.PhoneNumber),
	}
	if err := srv.gw.SaveCallerUserProfile(ctx, caller, profile); err != nil {
		return errors.Wrap(err, "failed to save caller profile")
	}

	srv.cache.Invalidate(querycache.Key(opCallerProfile, caller.String()))
	srv.logger.Info("caller profile saved", slog.String("identity", caller.String()))

	return nil
}
