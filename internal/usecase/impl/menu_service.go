// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"strings"

	"heritage/internal/domain/entity"
	domainerrors "heritage/internal/domain/errors"
	"heritage/internal/domain/gateway"
	"heritage/internal/infra/querycache"
	"heritage/internal/usecase"
	"heritage/internal/util"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Cache key operations of the data access layer. Per-category item
// lists are keyed by category id under opMenuItems.
const (
	keyMenuCategories = "menuCategories"
	opMenuItems       = "menuItems"
	keyAllMenuItems   = "allMenuItems"
	keySpecialItems   = "specialMenuItems"
)

// menuService implements the MenuUsecase interface.
type menuService struct {
	gw     gateway.Gateway
	cache  *querycache.Cache
	logger *slog.Logger
}

// NewMenuService is the constructor for menuService.
func NewMenuService(gw gateway.Gateway, cache *querycache.Cache, logger *slog.Logger) usecase.MenuUsecase {
	return &menuService{
		gw:     gw,
		cache:  cache,
		logger: logger,
	}
}

// Categories lists the menu categories in gateway order.
func (srv *menuService) Categories(ctx context.Context) ([]entity.MenuCategory, error) {
	if !srv.gw.Ready() {
		return []entity.MenuCategory{}, nil
	}

	if cached, ok := querycache.Lookup[[]entity.MenuCategory](srv.cache, keyMenuCategories); ok {
		return cached, nil
	}

	categories, err := srv.gw.GetAllMenuCategories(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list menu categories")
	}
	srv.cache.Set(keyMenuCategories, categories)

	return categories, nil
}

// ItemsByCategory lists the items of one category.
func (srv *menuService) ItemsByCategory(ctx context.Context, categoryID string) ([]entity.MenuItem, error) {
	if !srv.gw.Ready() || categoryID == "" {
		return []entity.MenuItem{}, nil
	}

	key := querycache.Key(opMenuItems, categoryID)
	if cached, ok := querycache.Lookup[[]entity.MenuItem](srv.cache, key); ok {
		return cached, nil
	}

	items, err := srv.gw.GetMenuItemsByCategory(ctx, categoryID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list items for category %s", categoryID)
	}
	srv.cache.Set(key, items)

	return items, nil
}

// AllItems is the composed flattened read: categories first, then the
// per-category item lists fetched concurrently and concatenated
// preserving category order, then item order within each category.
// Fail-fast: one failed category fetch fails the whole read with no
// partial result.
func (srv *menuService) AllItems(ctx context.Context) ([]entity.MenuItem, error) {
	if !srv.gw.Ready() {
		return []entity.MenuItem{}, nil
	}

	if cached, ok := querycache.Lookup[[]entity.MenuItem](srv.cache, keyAllMenuItems); ok {
		return cached, nil
	}

	categories, err := srv.gw.GetAllMenuCategories(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list menu categories")
	}

	perCategory := make([][]entity.MenuItem, len(categories))
	group, groupCtx := errgroup.WithContext(ctx)
	for i, category := range categories {
		group.Go(func() error {
			items, err := srv.gw.GetMenuItemsByCategory(groupCtx, category.ID)
			if err != nil {
				return errors.Wrapf(err, "failed to list items for category %s", category.ID)
			}
			perCategory[i] = items

			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	var all []entity.MenuItem
	for _, items := range perCategory {
		all = append(all, items...)
	}
	if all == nil {
		all = []entity.MenuItem{}
	}
	srv.cache.Set(keyAllMenuItems, all)

	return all, nil
}

// Specials lists the chef's special items.
func (srv *menuService) Specials(ctx context.Context) ([]entity.MenuItem, error) {
	if !srv.gw.Ready() {
		return []entity.MenuItem{}, nil
	}

	if cached, ok := querycache.Lookup[[]entity.MenuItem](srv.cache, keySpecialItems); ok {
		return cached, nil
	}

	items, err := srv.gw.GetSpecialMenuItems(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list special items")
	}
	srv.cache.Set(keySpecialItems, items)

	return items, nil
}

// AddCategory creates a menu category and invalidates the category list.
func (srv *menuService) AddCategory(ctx context.Context, caller entity.Identity, input *usecase.CategoryInput) error {
	fieldErrs := usecase.FieldErrors{}
	if strings.TrimSpace(input.ID) == "" {
		fieldErrs["id"] = "Category id is required"
	}
	if strings.TrimSpace(input.Name) == "" {
		fieldErrs["name"] = "Category name is required"
	}
	if err := fieldErrs.OrNil(); err != nil {
		return err
	}

	category := entity.MenuCategory{
		ID:          strings.TrimSpace(input.ID),
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
	}
	if err := srv.gw.AddMenuCategory(ctx, caller, category); err != nil {
		return errors.Wrap(err, "failed to add menu category")
	}

	srv.cache.Invalidate(keyMenuCategories)
	srv.logger.Info("menu category added", slog.String("categoryId", category.ID))

	return nil
}

// AddItem creates a menu item and invalidates every item read its data
// could appear in: the per-category lists, the flattened list and the
// specials list.
func (srv *menuService) AddItem(ctx context.Context, caller entity.Identity, input *usecase.MenuItemInput) error {
	item, err := srv.itemFromInput(input)
	if err != nil {
		return err
	}

	if err := srv.gw.AddMenuItem(ctx, caller, item); err != nil {
		// The only entity the add refers to that can be missing is the
		// target category.
		if errors.Is(err, gateway.ErrNotFound) {
			return domainerrors.ErrCategoryNotFound
		}

		return errors.Wrap(err, "failed to add menu item")
	}
	srv.invalidateItemReads()
	srv.logger.Info("menu item added", slog.String("itemId", item.ID))

	return nil
}

// UpdateItem replaces a menu item. The id is the primary key and is
// immutable: a body id differing from the addressed item is rejected.
func (srv *menuService) UpdateItem(ctx context.Context, caller entity.Identity, itemID string, input *usecase.MenuItemInput) error {
	if input.ID != "" && input.ID != itemID {
		return domainerrors.ErrMenuItemIDImmutable
	}
	input.ID = itemID

	item, err := srv.itemFromInput(input)
	if err != nil {
		return err
	}

	if err := srv.gw.UpdateMenuItem(ctx, caller, item); err != nil {
		if errors.Is(err, gateway.ErrNotFound) {
			return domainerrors.ErrMenuItemNotFound
		}

		return errors.Wrap(err, "failed to update menu item")
	}
	srv.invalidateItemReads()
	srv.logger.Info("menu item updated", slog.String("itemId", item.ID))

	return nil
}

// DeleteItem removes a menu item.
func (srv *menuService) DeleteItem(ctx context.Context, caller entity.Identity, itemID string) error {
	if itemID == "" {
		return usecase.FieldErrors{"id": "Item id is required"}
	}

	if err := srv.gw.DeleteMenuItem(ctx, caller, itemID); err != nil {
		if errors.Is(err, gateway.ErrNotFound) {
			return domainerrors.ErrMenuItemNotFound
		}

		return errors.Wrap(err, "failed to delete menu item")
	}
	srv.invalidateItemReads()
	srv.logger.Info("menu item deleted", slog.String("itemId", itemID))

	return nil
}

func (srv *menuService) invalidateItemReads() {
	srv.cache.InvalidateOp(opMenuItems)
	srv.cache.Invalidate(keyAllMenuItems, keySpecialItems)
}

// itemFromInput validates the admin form and converts the decimal
// rupee price into whole paise.
func (srv *menuService) itemFromInput(input *usecase.MenuItemInput) (entity.MenuItem, error) {
	fieldErrs := usecase.FieldErrors{}
	if strings.TrimSpace(input.ID) == "" {
		fieldErrs["id"] = "Item id is required"
	}
	if strings.TrimSpace(input.CategoryID) == "" {
		fieldErrs["categoryId"] = "Category is required"
	}
	if strings.TrimSpace(input.Name) == "" {
		fieldErrs["name"] = "Item name is required"
	}

	price, err := util.ParsePrice(input.Price)
	if err != nil {
		fieldErrs["price"] = "Please enter a valid price"
	}

	if err := fieldErrs.OrNil(); err != nil {
		return entity.MenuItem{}, err
	}

	return entity.MenuItem{
		ID:           strings.TrimSpace(input.ID),
		CategoryID:   strings.TrimSpace(input.CategoryID),
		Name:         strings.TrimSpace(input.Name),
		Description:  input.Description,
		ImageURL:     strings.TrimSpace(input.ImageURL),
		IsVegetarian: input.IsVegetarian,
		Price:        price,
		IsSpecial:    input.IsSpecial,
	}, nil
}
