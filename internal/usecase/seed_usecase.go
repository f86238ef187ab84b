package usecase

import (
	"context"

	"heritage/internal/domain/entity"
)

// SeedUsecase guards the one-shot default-data population. The seed
// operation fires at most once per process lifetime, only after the
// gateway is ready and an authenticated identity has appeared.
// Failures are logged and swallowed; the gateway operation is
// idempotent, so the next process start may retry.
type SeedUsecase interface {
	// MaybeSeed invokes the seed operation if the preconditions hold
	// and it has not been attempted yet this session. Safe to call on
	// every authenticated request.
	MaybeSeed(ctx context.Context, identity entity.Identity)

	// Seeded reports whether a seed invocation succeeded this session.
	Seeded() bool

	// Reset clears the session latch. Intended for tests.
	Reset()
}
