package handler

import (
	"log/slog"
	"net/http"

	"heritage/internal/delivery/http/response"
	"heritage/internal/domain/entity"
	"heritage/internal/usecase"
	"heritage/internal/util"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// MenuHandler holds dependencies for the public menu read handlers.
type MenuHandler struct {
	uc     usecase.MenuUsecase
	logger *slog.Logger
}

// NewMenuHandler is the constructor for MenuHandler, injected by Fx.
func NewMenuHandler(uc usecase.MenuUsecase, logger *slog.Logger) *MenuHandler {
	return &MenuHandler{
		uc:     uc,
		logger: logger,
	}
}

// categoryView is the JSON shape of a menu category.
type categoryView struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// itemView is the JSON shape of a menu item. Price is the raw paise
// amount; DisplayPrice is the rendered rupee string for direct display.
type itemView struct {
	ID           string `json:"id"`
	CategoryID   string `json:"categoryId"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	ImageURL     string `json:"imageUrl,omitempty"`
	IsVegetarian bool   `json:"isVegetarian"`
	Price        int64  `json:"price"`
	DisplayPrice string `json:"displayPrice"`
	IsSpecial    bool   `json:"isSpecial"`
}

func toCategoryViews(categories []entity.MenuCategory) []categoryView {
	views := make([]categoryView, 0, len(categories))
	for _, category := range categories {
		views = append(views, categoryView{
			ID:          category.ID,
			Name:        category.Name,
			Description: category.Description,
		})
	}

	return views
}

func toItemViews(items []entity.MenuItem) []itemView {
	views := make([]itemView, 0, len(items))
	for _, item := range items {
		views = append(views, itemView{
			ID:           item.ID,
			CategoryID:   item.CategoryID,
			Name:         item.Name,
			Description:  item.Description,
			ImageURL:     item.ImageURL,
			IsVegetarian: item.IsVegetarian,
			Price:        int64(item.Price),
			DisplayPrice: util.FormatPrice(item.Price),
			IsSpecial:    item.IsSpecial,
		})
	}

	return views
}

// Categories handles the menu category listing request.
func (h *MenuHandler) Categories(c echo.Context) error {
	categories, err := h.uc.Categories(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCategoryViews(categories), "Menu categories retrieved successfully")
}

// CategoryItems handles the per-category item listing request.
func (h *MenuHandler) CategoryItems(c echo.Context) error {
	items, err := h.uc.ItemsByCategory(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toItemViews(items), "Menu items retrieved successfully")
}

// AllItems handles the flattened full-menu listing request.
func (h *MenuHandler) AllItems(c echo.Context) error {
	items, err := h.uc.AllItems(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toItemViews(items), "Menu items retrieved successfully")
}

// Specials handles the chef's specials listing request.
func (h *MenuHandler) Specials(c echo.Context) error {
	items, err := h.uc.Specials(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toItemViews(items), "Special menu items retrieved successfully")
}
