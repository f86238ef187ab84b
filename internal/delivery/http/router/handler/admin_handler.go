package handler

import (
	"log/slog"
	"net/http"

	"heritage/internal/delivery/http/middleware"
	"heritage/internal/delivery/http/response"
	"heritage/internal/domain/entity"
	"heritage/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AdminHandler holds dependencies for the admin dashboard handlers.
type AdminHandler struct {
	menu   usecase.MenuUsecase
	access usecase.AccessUsecase
	logger *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(menu usecase.MenuUsecase, access usecase.AccessUsecase, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		menu:   menu,
		access: access,
		logger: logger,
	}
}

// accessView reports the dashboard gate state for the caller.
type accessView struct {
	State string `json:"state"`
	Cause string `json:"cause,omitempty"`
}

// Access reports which dashboard view the caller should see. Unlike the
// admin mutation routes this never fails on a non-authorized state; the
// state itself is the payload.
func (h *AdminHandler) Access(c echo.Context) error {
	settled, _ := c.Get(middleware.KeyIdentitySettled).(bool)

	resolution := h.access.Evaluate(c.Request().Context(), settled, middleware.CallerIdentity(c))
	view := accessView{State: resolution.State.String()}
	if resolution.State == entity.AccessError && resolution.Cause != nil {
		view.Cause = resolution.Cause.Error()
	}

	return response.Success(c, http.StatusOK, view, "Access state resolved")
}

// AddCategory handles the admin category creation form.
func (h *AdminHandler) AddCategory(c echo.Context) error {
	var input *usecase.CategoryInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid category input")
	}

	if err := c.Validate(input); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	caller := middleware.CallerIdentity(c)
	if err := h.menu.AddCategory(c.Request().Context(), caller, input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, nil, "Category added successfully")
}

// AddItem handles the admin menu item creation form.
func (h *AdminHandler) AddItem(c echo.Context) error {
	var input *usecase.MenuItemInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid menu item input")
	}

	if err := c.Validate(input); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	caller := middleware.CallerIdentity(c)
	if err := h.menu.AddItem(c.Request().Context(), caller, input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, nil, "Menu item added successfully")
}

// UpdateItem handles the admin menu item edit form.
func (h *AdminHandler) UpdateItem(c echo.Context) error {
	var input *usecase.MenuItemInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid menu item input")
	}

	if err := c.Validate(input); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	caller := middleware.CallerIdentity(c)
	if err := h.menu.UpdateItem(c.Request().Context(), caller, c.Param("id"), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Menu item updated successfully")
}

// DeleteItem handles the admin menu item removal.
func (h *AdminHandler) DeleteItem(c echo.Context) error {
	caller := middleware.CallerIdentity(c)
	if err := h.menu.DeleteItem(c.Request().Context(), caller, c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Menu item deleted successfully")
}
