package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"heritage/internal/domain/entity"
	"heritage/internal/domain/service"
	mockSvc "heritage/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestSessionHandler(t *testing.T) (*SessionHandler, *mockSvc.MockTokenService) {
	t.Helper()

	tokenSvc := mockSvc.NewMockTokenService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewSessionHandler(tokenSvc, logger), tokenSvc
}

func postRefresh(e *echo.Echo, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/auth/refresh", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestSessionHandler_Refresh(t *testing.T) {
	handler, tokenSvc := createTestSessionHandler(t)

	identity := entity.Identity("user-42")
	tokenSvc.EXPECT().ValidateRefreshToken("old-refresh").Return(&service.Claims{
		Identity: identity,
		Roles:    []string{"user"},
	}, nil)
	tokenSvc.EXPECT().GenerateTokens(identity, []string{"user"}).Return("new-access", "new-refresh", nil)
	tokenSvc.EXPECT().GetRefreshTokenDuration().Return(7 * 24 * time.Hour)

	c, rec := postRefresh(newTestEcho(), `{"refreshToken":"old-refresh"}`)

	require.NoError(t, handler.Refresh(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "new-access")
	assert.Contains(t, rec.Body.String(), "new-refresh")
	assert.Contains(t, rec.Body.String(), `"expiresIn":604800`)
}

func TestSessionHandler_Refresh_MissingToken(t *testing.T) {
	handler, _ := createTestSessionHandler(t)

	c, rec := postRefresh(newTestEcho(), `{}`)

	require.NoError(t, handler.Refresh(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestSessionHandler_Refresh_RejectedToken(t *testing.T) {
	handler, tokenSvc := createTestSessionHandler(t)

	tokenSvc.EXPECT().ValidateRefreshToken("stale").Return(nil, errors.New("token is expired"))

	c, rec := postRefresh(newTestEcho(), `{"refreshToken":"stale"}`)

	require.NoError(t, handler.Refresh(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "TOKEN_INVALID")
}
