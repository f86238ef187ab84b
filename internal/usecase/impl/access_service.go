package impl

import (
	"context"
	"log/slog"
	"sync"

	"heritage/internal/domain/entity"
	"heritage/internal/domain/gateway"
	"heritage/internal/infra/querycache"
	"heritage/internal/usecase"
)

// Per-caller cache key operations of the access signals.
const (
	opCallerProfile = "currentUserProfile"
	opCallerIsAdmin = "isCallerAdmin"
)

// accessService implements the AccessUsecase interface.
type accessService struct {
	gw     gateway.Gateway
	cache  *querycache.Cache
	logger *slog.Logger
}

// NewAccessService is the constructor for accessService.
func NewAccessService(gw gateway.Gateway, cache *querycache.Cache, logger *slog.Logger) usecase.AccessUsecase {
	return &accessService{
		gw:     gw,
		cache:  cache,
		logger: logger,
	}
}

// Evaluate gathers the profile and role signals concurrently and folds
// them into the single dashboard state. A gateway that is not ready yet
// leaves both signals pending, which resolves to initializing rather
// than an error.
func (srv *accessService) Evaluate(ctx context.Context, identitySettled bool, identity entity.Identity) entity.AccessResolution {
	signals := entity.AccessSignals{
		IdentitySettled: identitySettled,
		Identity:        identity,
	}

	// Without a settled identity there is nothing to fetch; the
	// resolver short-circuits on the identity guards alone.
	if identitySettled && !identity.IsZero() && srv.gw.Ready() {
		srv.gatherSignals(ctx, identity, &signals)
	}

	resolution := entity.ResolveAccessState(signals)
	if resolution.State == entity.AccessError {
		srv.logger.Warn("access evaluation failed",
			slog.String("identity", identity.String()),
			slog.Any("error", resolution.Cause))
	}

	return resolution
}

// gatherSignals fetches the profile and role signals in parallel. Each
// signal fails independently; one broken fetch does not discard the
// other's result.
func (srv *accessService) gatherSignals(ctx context.Context, identity entity.Identity, signals *entity.AccessSignals) {
	profileKey := querycache.Key(opCallerProfile, identity.String())
	adminKey := querycache.Key(opCallerIsAdmin, identity.String())

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()

		if cached, ok := querycache.Lookup[*entity.UserProfile](srv.cache, profileKey); ok {
			signals.ProfileStatus = entity.SignalReady
			signals.Profile = cached

			return
		}

		profile, err := srv.gw.GetCallerUserProfile(ctx, identity)
		if err != nil {
			signals.ProfileStatus = entity.SignalFailed
			signals.ProfileErr = err

			return
		}
		srv.cache.Set(profileKey, profile)
		signals.ProfileStatus = entity.SignalReady
		signals.Profile = profile
	}()

	go func() {
		defer wg.Done()

		if cached, ok := querycache.Lookup[bool](srv.cache, adminKey); ok {
			signals.RoleStatus = entity.SignalReady
			signals.IsAdmin = cached

			return
		}

		isAdmin, err := srv.gw.IsCallerAdmin(ctx, identity)
		if err != nil {
			signals.RoleStatus = entity.SignalFailed
			signals.RoleErr = err

			return
		}
		srv.cache.Set(adminKey, isAdmin)
		signals.RoleStatus = entity.SignalReady
		signals.IsAdmin = isAdmin
	}()

	wg.Wait()
}
