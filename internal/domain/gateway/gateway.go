// Package gateway defines the boundary to the remote restaurant data
// service. Every entity this application shows or edits is owned by the
// gateway; local copies are transient caches with no durability.
package gateway

import (
	"context"
	"errors"

	"heritage/internal/domain/entity"
)

// ErrNotReady is returned when an operation is attempted before the
// gateway connection has come up. Read paths degrade to empty results
// on it instead of surfacing an error.
var ErrNotReady = errors.New("gateway connection not ready")

// ErrNotFound is returned when the gateway reports that the entity an
// operation referred to does not exist. Use cases translate it into the
// matching domain error.
var ErrNotFound = errors.New("gateway entity not found")

// Gateway is the asynchronous request/response interface of the remote
// data service. Caller-scoped operations take the caller's identity;
// the transport attaches it to the request.
type Gateway interface {
	// Ready reports whether the gateway connection is usable. Reads
	// are not issued until it is.
	Ready() bool

	// Profile and role operations.
	GetCallerUserProfile(ctx context.Context, caller entity.Identity) (*entity.UserProfile, error)
	SaveCallerUserProfile(ctx context.Context, caller entity.Identity, profile entity.UserProfile) error
	GetUserProfile(ctx context.Context, user entity.Identity) (*entity.UserProfile, error)
	GetCallerUserRole(ctx context.Context, caller entity.Identity) (entity.Role, error)
	IsCallerAdmin(ctx context.Context, caller entity.Identity) (bool, error)

	// Menu operations. Categories have no update/delete on the wire.
	GetAllMenuCategories(ctx context.Context) ([]entity.MenuCategory, error)
	GetMenuCategory(ctx context.Context, categoryID string) (*entity.MenuCategory, error)
	AddMenuCategory(ctx context.Context, caller entity.Identity, category entity.MenuCategory) error
	GetMenuItemsByCategory(ctx context.Context, categoryID string) ([]entity.MenuItem, error)
	GetSpecialMenuItems(ctx context.Context) ([]entity.MenuItem, error)
	AddMenuItem(ctx context.Context, caller entity.Identity, item entity.MenuItem) error
	UpdateMenuItem(ctx context.Context, caller entity.Identity, item entity.MenuItem) error
	DeleteMenuItem(ctx context.Context, caller entity.Identity, itemID string) error

	// Reviews are read-only.
	GetAllReviews(ctx context.Context) ([]entity.Review, error)

	// CreateReservation books a table. Write-only; reservations are
	// never read back through this boundary.
	CreateReservation(ctx context.Context, reservation entity.Reservation) error

	// SeedInitialData populates default menu content. Idempotent on
	// the gateway side: calling it when data exists is a no-op.
	SeedInitialData(ctx context.Context, caller entity.Identity) error
}
