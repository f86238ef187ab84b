package handler

import (
	"log/slog"
	"net/http"

	"heritage/internal/delivery/http/response"
	"heritage/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// SessionHandler renews session token pairs. Sessions are issued by the
// external identity provider; this service only re-signs its own
// short-lived access tokens off a valid refresh token.
type SessionHandler struct {
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler, injected by Fx.
func NewSessionHandler(tokenSvc service.TokenService, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{
		tokenSvc: tokenSvc,
		logger:   logger,
	}
}

type refreshInput struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

type tokenPairView struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    int64  `json:"expiresIn"` // seconds until the refresh token expires
}

// Refresh exchanges a valid refresh token for a new token pair.
func (h *SessionHandler) Refresh(c echo.Context) error {
	var input *refreshInput
	if err := c.Bind(&input); err != nil || input == nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid refresh token input")
	}

	if err := c.Validate(input); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	claims, err := h.tokenSvc.ValidateRefreshToken(input.RefreshToken)
	if err != nil {
		return response.Unauthorized(c, "TOKEN_INVALID", "Invalid or expired refresh token")
	}

	accessToken, refreshToken, err := h.tokenSvc.GenerateTokens(claims.Identity, claims.Roles)
	if err != nil {
		h.logger.Error("token generation failed", slog.Any("error", err))

		return response.InternalServerError(c, "INTERNAL_ERROR", "Could not renew session")
	}

	return response.Success(c, http.StatusOK, tokenPairView{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(h.tokenSvc.GetRefreshTokenDuration().Seconds()),
	}, "Session renewed successfully")
}
