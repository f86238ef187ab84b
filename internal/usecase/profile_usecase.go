package usecase

import (
	"context"

	"heritage/internal/domain/entity"
)

// ProfileUsecase defines the caller profile operations.
type ProfileUsecase interface {
	// GetCallerProfile returns the caller's profile, or nil when the
	// caller has not created one yet.
	GetCallerProfile(ctx context.Context, caller entity.Identity) (*entity.UserProfile, error)

	// SaveCallerProfile creates or replaces the caller's profile and
	// invalidates the cached copy so the next access evaluation sees
	// it without a full reload.
	SaveCallerProfile(ctx context.Context, caller entity.Identity, input *ProfileInput) error
}

// ProfileInput defines the profile setup form data.
type ProfileInput struct {
	Name        string `json:"name" validate:"omitempty,max=100"`
	Email       string `json:"email" validate:"omitempty,email"`
	PhoneNumber string `json:"phoneNumber" validate:"omitempty,max=20"`
}
