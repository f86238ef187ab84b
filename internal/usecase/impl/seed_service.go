package impl

import (
	"context"
	"log/slog"
	"sync"

	"heritage/internal/domain/entity"
	"heritage/internal/domain/gateway"
	"heritage/internal/usecase"
)

// seedService implements the SeedUsecase interface. The latch is
// per-process: once a seed call has been attempted, no later request
// triggers another one, whatever the outcome.
type seedService struct {
	gw     gateway.Gateway
	logger *slog.Logger

	mu        sync.Mutex
	attempted bool
	seeded    bool
}

// NewSeedService is the constructor for seedService.
func NewSeedService(gw gateway.Gateway, logger *slog.Logger) usecase.SeedUsecase {
	return &seedService{
		gw:     gw,
		logger: logger,
	}
}

// MaybeSeed fires the one-shot seed when the gateway is ready and an
// authenticated identity is present. Failures are logged and swallowed;
// the gateway operation is idempotent, so the next process start
// retries cleanly.
func (srv *seedService) MaybeSeed(ctx context.Context, identity entity.Identity) {
	if identity.IsZero() || !srv.gw.Ready() {
		return
	}

	srv.mu.Lock()
	if srv.attempted {
		srv.mu.Unlock()

		return
	}
	srv.attempted = true
	srv.mu.Unlock()

	if err := srv.gw.SeedInitialData(ctx, identity); err != nil {
		srv.logger.Warn("initial data seeding failed", slog.Any("error", err))

		return
	}

	srv.mu.Lock()
	srv.seeded = true
	srv.mu.Unlock()
	srv.logger.Info("initial data seeded", slog.String("identity", identity.String()))
}

// Seeded reports whether a seed invocation succeeded this session.
func (srv *seedService) Seeded() bool {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.seeded
}

// Reset clears the latch so the next call may attempt again.
func (srv *seedService) Reset() {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.attempted = false
	srv.seeded = false
}
