package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"heritage/internal/domain/entity"
	domainerrors "heritage/internal/domain/errors"
	"heritage/internal/domain/gateway"
	"heritage/internal/infra/querycache"
	mockGw "heritage/internal/mocks/gateway"
	"heritage/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestMenuService(t *testing.T) (usecase.MenuUsecase, *mockGw.MockGateway, *querycache.Cache) {
	gw := mockGw.NewMockGateway(t)
	cache := querycache.New()
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return NewMenuService(gw, cache, logger), gw, cache
}

func TestMenuService_Categories_NotReady(t *testing.T) {
	service, gw, _ := createTestMenuService(t)

	gw.EXPECT().Ready().Return(false)

	categories, err := service.Categories(context.Background())

	require.NoError(t, err)
	assert.Empty(t, categories)
}

func TestMenuService_Categories_CachesResult(t *testing.T) {
	service, gw, _ := createTestMenuService(t)

	ctx := context.Background()
	expected := []entity.MenuCategory{
		{ID: "starters", Name: "Starters"},
		{ID: "mains", Name: "Main Course"},
	}

	gw.EXPECT().Ready().Return(true)
	gw.EXPECT().GetAllMenuCategories(ctx).Return(expected, nil).Once()

	first, err := service.Categories(ctx)
	require.NoError(t, err)
	assert.Equal(t, expected, first)

	// Second call must be served from cache: the gateway expectation
	// above is Once, so a second remote call would fail the mock.
	second, err := service.Categories(ctx)
	require.NoError(t, err)
	assert.Equal(t, expected, second)
}

func TestMenuService_ItemsByCategory(t *testing.T) {
	service, gw, _ := createTestMenuService(t)

	ctx := context.Background()
	expected := []entity.MenuItem{
		{ID: "samosa", CategoryID: "starters", Name: "Samosa", Price: 12000},
	}

	gw.EXPECT().Ready().Return(true)
	gw.EXPECT().GetMenuItemsByCategory(ctx, "starters").Return(expected, nil).Once()

	items, err := service.ItemsByCategory(ctx, "starters")

	require.NoError(t, err)
	assert.Equal(t, expected, items)
}

func TestMenuService_AllItems_PreservesCategoryOrder(t *testing.T) {
	service, gw, _ := createTestMenuService(t)

	ctx := context.Background()
	a1 := entity.MenuItem{ID: "a1", CategoryID: "a"}
	a2 := entity.MenuItem{ID: "a2", CategoryID: "a"}
	b1 := entity.MenuItem{ID: "b1", CategoryID: "b"}

	gw.EXPECT().Ready().Return(true)
	gw.EXPECT().GetAllMenuCategories(ctx).Return([]entity.MenuCategory{
		{ID: "a"}, {ID: "b"},
	}, nil)
	gw.EXPECT().GetMenuItemsByCategory(mock.Anything, "a").Return([]entity.MenuItem{a1, a2}, nil)
	gw.EXPECT().GetMenuItemsByCategory(mock.Anything, "b").Return([]entity.MenuItem{b1}, nil)

	items, err := service.AllItems(ctx)

	require.NoError(t, err)
	assert.Equal(t, []entity.MenuItem{a1, a2, b1}, items)
}

func TestMenuService_AllItems_FailFast(t *testing.T) {
	service, gw, cache := createTestMenuService(t)

	ctx := context.Background()

	gw.EXPECT().Ready().Return(true)
	gw.EXPECT().GetAllMenuCategories(ctx).Return([]entity.MenuCategory{
		{ID: "a"}, {ID: "b"},
	}, nil)
	gw.EXPECT().GetMenuItemsByCategory(mock.Anything, "a").Return([]entity.MenuItem{{ID: "a1"}}, nil).Maybe()
	gw.EXPECT().GetMenuItemsByCategory(mock.Anything, "b").Return(nil, errors.New("category fetch failed"))

	items, err := service.AllItems(ctx)

	assert.Error(t, err)
	assert.Nil(t, items)
	// No partial result may be cached.
	_, cached := cache.Get("allMenuItems")
	assert.False(t, cached)
}

func TestMenuService_AddCategory_InvalidatesCategoryList(t *testing.T) {
	service, gw, cache := createTestMenuService(t)

	ctx := context.Background()
	caller := entity.Identity("admin-1")
	cache.Set("menuCategories", []entity.MenuCategory{{ID: "stale"}})

	gw.EXPECT().
		AddMenuCategory(ctx, caller, entity.MenuCategory{ID: "desserts", Name: "Desserts"}).
		Return(nil)

	err := service.AddCategory(ctx, caller, &usecase.CategoryInput{ID: "desserts", Name: "Desserts"})

	require.NoError(t, err)
	_, cached := cache.Get("menuCategories")
	assert.False(t, cached)
}

func TestMenuService_AddCategory_MissingFields(t *testing.T) {
	service, _, _ := createTestMenuService(t)

	err := service.AddCategory(context.Background(), "admin-1", &usecase.CategoryInput{})

	var fieldErrs usecase.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Contains(t, fieldErrs, "id")
	assert.Contains(t, fieldErrs, "name")
}

func TestMenuService_AddItem_InvalidatesItemReads(t *testing.T) {
	service, gw, cache := createTestMenuService(t)

	ctx := context.Background()
	caller := entity.Identity("admin-1")

	cache.Set(querycache.Key("menuItems", "mains"), []entity.MenuItem{{ID: "stale"}})
	cache.Set("allMenuItems", []entity.MenuItem{{ID: "stale"}})
	cache.Set("specialMenuItems", []entity.MenuItem{{ID: "stale"}})
	cache.Set("menuCategories", []entity.MenuCategory{{ID: "kept"}})

	gw.EXPECT().
		AddMenuItem(ctx, caller, entity.MenuItem{
			ID:         "biryani",
			CategoryID: "mains",
			Name:       "Hyderabadi Biryani",
			Price:      29500,
			IsSpecial:  true,
		}).
		Return(nil)

	err := service.AddItem(ctx, caller, &usecase.MenuItemInput{
		ID:         "biryani",
		CategoryID: "mains",
		Name:       "Hyderabadi Biryani",
		Price:      "295.00",
		IsSpecial:  true,
	})

	require.NoError(t, err)
	_, ok := cache.Get(querycache.Key("menuItems", "mains"))
	assert.False(t, ok)
	_, ok = cache.Get("allMenuItems")
	assert.False(t, ok)
	_, ok = cache.Get("specialMenuItems")
	assert.False(t, ok)
	// Category list is untouched by item mutations.
	_, ok = cache.Get("menuCategories")
	assert.True(t, ok)
}

func TestMenuService_AddItem_InvalidPrice(t *testing.T) {
	service, _, _ := createTestMenuService(t)

	err := service.AddItem(context.Background(), "admin-1", &usecase.MenuItemInput{
		ID:         "biryani",
		CategoryID: "mains",
		Name:       "Biryani",
		Price:      "abc",
	})

	var fieldErrs usecase.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Contains(t, fieldErrs, "price")
}

func TestMenuService_UpdateItem_IDImmutable(t *testing.T) {
	service, _, _ := createTestMenuService(t)

	err := service.UpdateItem(context.Background(), "admin-1", "biryani", &usecase.MenuItemInput{
		ID:         "pulao",
		CategoryID: "mains",
		Name:       "Pulao",
		Price:      "180",
	})

	assert.ErrorIs(t, err, domainerrors.ErrMenuItemIDImmutable)
}

func TestMenuService_UpdateItem_Success(t *testing.T) {
	service, gw, _ := createTestMenuService(t)

	ctx := context.Background()
	caller := entity.Identity("admin-1")

	gw.EXPECT().
		UpdateMenuItem(ctx, caller, entity.MenuItem{
			ID:         "biryani",
			CategoryID: "mains",
			Name:       "Biryani",
			Price:      18000,
		}).
		Return(nil)

	err := service.UpdateItem(ctx, caller, "biryani", &usecase.MenuItemInput{
		CategoryID: "mains",
		Name:       "Biryani",
		Price:      "180",
	})

	require.NoError(t, err)
}

func TestMenuService_UpdateItem_UnknownItem(t *testing.T) {
	service, gw, _ := createTestMenuService(t)

	ctx := context.Background()
	caller := entity.Identity("admin-1")

	gw.EXPECT().
		UpdateMenuItem(ctx, caller, mock.Anything).
		Return(errors.Wrap(gateway.ErrNotFound, "gateway updateMenuItem"))

	err := service.UpdateItem(ctx, caller, "ghost", &usecase.MenuItemInput{
		CategoryID: "mains",
		Name:       "Ghost Dish",
		Price:      "100",
	})

	assert.ErrorIs(t, err, domainerrors.ErrMenuItemNotFound)
}

func TestMenuService_AddItem_UnknownCategory(t *testing.T) {
	service, gw, _ := createTestMenuService(t)

	ctx := context.Background()
	caller := entity.Identity("admin-1")

	gw.EXPECT().
		AddMenuItem(ctx, caller, mock.Anything).
		Return(errors.Wrap(gateway.ErrNotFound, "gateway addMenuItem"))

	err := service.AddItem(ctx, caller, &usecase.MenuItemInput{
		ID:         "biryani",
		CategoryID: "no-such-category",
		Name:       "Biryani",
		Price:      "295.00",
	})

	assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
}

func TestMenuService_DeleteItem(t *testing.T) {
	service, gw, cache := createTestMenuService(t)

	ctx := context.Background()
	caller := entity.Identity("admin-1")
	cache.Set("allMenuItems", []entity.MenuItem{{ID: "biryani"}})

	gw.EXPECT().DeleteMenuItem(ctx, caller, "biryani").Return(nil)

	err := service.DeleteItem(ctx, caller, "biryani")

	require.NoError(t, err)
	_, ok := cache.Get("allMenuItems")
	assert.False(t, ok)
}

func TestMenuService_MutationThenRecompute(t *testing.T) {
	service, gw, _ := createTestMenuService(t)

	ctx := context.Background()
	caller := entity.Identity("admin-1")
	before := []entity.MenuItem{{ID: "old", CategoryID: "mains", Price: 10000}}
	after := []entity.MenuItem{
		{ID: "old", CategoryID: "mains", Price: 10000},
		{ID: "new", CategoryID: "mains", Price: 20000},
	}

	gw.EXPECT().Ready().Return(true)
	gw.EXPECT().GetMenuItemsByCategory(ctx, "mains").Return(before, nil).Once()

	got, err := service.ItemsByCategory(ctx, "mains")
	require.NoError(t, err)
	assert.Equal(t, before, got)

	gw.EXPECT().AddMenuItem(ctx, caller, mock.Anything).Return(nil)
	require.NoError(t, service.AddItem(ctx, caller, &usecase.MenuItemInput{
		ID:         "new",
		CategoryID: "mains",
		Name:       "New Dish",
		Price:      "200",
	}))

	// The invalidated read recomputes against the mutated state.
	gw.EXPECT().GetMenuItemsByCategory(ctx, "mains").Return(after, nil).Once()

	got, err = service.ItemsByCategory(ctx, "mains")
	require.NoError(t, err)
	assert.Equal(t, after, got)
}
