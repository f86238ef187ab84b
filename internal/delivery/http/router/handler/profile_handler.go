package handler

import (
	"log/slog"
	"net/http"

	"heritage/internal/delivery/http/middleware"
	"heritage/internal/delivery/http/response"
	"heritage/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProfileHandler holds dependencies for the caller profile handlers.
type ProfileHandler struct {
	uc     usecase.ProfileUsecase
	logger *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(uc usecase.ProfileUsecase, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{
		uc:     uc,
		logger: logger,
	}
}

type profileView struct {
	Name        string `json:"name"`
	Email       string `json:"email,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
}

// GetProfile handles the request to get the current caller's profile.
// A caller without a profile gets a null payload, not an error.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	caller := middleware.CallerIdentity(c)

	profile, err := h.uc.GetCallerProfile(c.Request().Context(), caller)
	if err != nil {
		return errors.WithStack(err)
	}
	if profile == nil {
		return response.Success(c, http.StatusOK, nil, "Profile not created yet")
	}

	return response.Success(c, http.StatusOK, profileView{
		Name:        profile.Name,
		Email:       profile.Email,
		PhoneNumber: profile.PhoneNumber,
	}, "Profile retrieved successfully")
}

// SaveProfile handles the profile setup form submission.
func (h *ProfileHandler) SaveProfile(c echo.Context) error {
	var input *usecase.ProfileInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	if err := c.Validate(input); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	caller := middleware.CallerIdentity(c)
	if err := h.uc.SaveCallerProfile(c.Request().Context(), caller, input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Profile saved successfully")
}
