package usecase

import (
	"context"

	"heritage/internal/domain/entity"
)

// AccessUsecase decides which of the admin dashboard's mutually
// exclusive views to render by composing the identity, profile and
// role signals into one deterministic state.
type AccessUsecase interface {
	// Evaluate gathers the profile and role signals for the given
	// identity (concurrently, from cache when warm) and resolves the
	// access state. identitySettled is false only while the identity
	// provider is still starting up.
	Evaluate(ctx context.Context, identitySettled bool, identity entity.Identity) entity.AccessResolution
}
