package usecase

import (
	"context"

	"heritage/internal/domain/entity"
)

// MenuUsecase defines the menu read and admin mutation operations.
// Reads come from the query cache when the underlying data has not
// been invalidated; while the gateway connection is down they yield
// empty results so pages can render empty state instead of errors.
type MenuUsecase interface {
	Categories(ctx context.Context) ([]entity.MenuCategory, error)
	ItemsByCategory(ctx context.Context, categoryID string) ([]entity.MenuItem, error)

	// AllItems is the composed read: all categories, then items per
	// category fetched concurrently, concatenated in category order.
	// Any per-category failure fails the whole read.
	AllItems(ctx context.Context) ([]entity.MenuItem, error)

	Specials(ctx context.Context) ([]entity.MenuItem, error)

	AddCategory(ctx context.Context, caller entity.Identity, input *CategoryInput) error
	AddItem(ctx context.Context, caller entity.Identity, input *MenuItemInput) error
	UpdateItem(ctx context.Context, caller entity.Identity, itemID string, input *MenuItemInput) error
	DeleteItem(ctx context.Context, caller entity.Identity, itemID string) error
}

// CategoryInput defines the data required to create a menu category.
type CategoryInput struct {
	ID          string `json:"id" validate:"omitempty,max=64"`
	Name        string `json:"name" validate:"omitempty,max=100"`
	Description string `json:"description" validate:"omitempty,max=500"`
}

// MenuItemInput defines the admin form data for a menu item. Price
// arrives as the decimal rupee string the form collects; it is parsed
// and stored as whole paise.
type MenuItemInput struct {
	ID           string `json:"id" validate:"omitempty,max=64"`
	CategoryID   string `json:"categoryId" validate:"omitempty,max=64"`
	Name         string `json:"name" validate:"omitempty,max=100"`
	Description  string `json:"description" validate:"omitempty,max=500"`
	ImageURL     string `json:"imageUrl" validate:"omitempty,max=2048"`
	IsVegetarian bool   `json:"isVegetarian"`
	Price        string `json:"price" validate:"omitempty,max=20"`
	IsSpecial    bool   `json:"isSpecial"`
}
