package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"heritage/internal/domain/entity"
	domainerrors "heritage/internal/domain/errors"
	"heritage/internal/domain/service"
	"heritage/internal/infra/querycache"
	mockGw "heritage/internal/mocks/gateway"
	mockSvc "heritage/internal/mocks/service"
	"heritage/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestAuthMiddleware(t *testing.T) (*AuthMiddleware, *mockSvc.MockTokenService, *mockGw.MockGateway) {
	t.Helper()

	tokenSvc := mockSvc.NewMockTokenService(t)
	gw := mockGw.NewMockGateway(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	access := impl.NewAccessService(gw, querycache.New(), logger)
	seed := impl.NewSeedService(gw, logger)

	return NewAuthMiddleware(tokenSvc, access, seed), tokenSvc, gw
}

func newAuthTestContext(authorization string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec)
}

func passthroughNext(called *bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		*called = true

		return nil
	}
}

func TestAuthMiddleware_Authenticate_MissingHeader(t *testing.T) {
	m, _, _ := createTestAuthMiddleware(t)

	var called bool
	err := m.Authenticate(passthroughNext(&called))(newAuthTestContext(""))

	assert.False(t, called)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrUnauthenticated.ErrorCode(), appErr.ErrorCode())
}

func TestAuthMiddleware_Authenticate_NotBearer(t *testing.T) {
	m, _, _ := createTestAuthMiddleware(t)

	var called bool
	err := m.Authenticate(passthroughNext(&called))(newAuthTestContext("Basic dXNlcg=="))

	assert.False(t, called)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrTokenInvalid.ErrorCode(), appErr.ErrorCode())
}

func TestAuthMiddleware_Authenticate_RejectedToken(t *testing.T) {
	m, tokenSvc, _ := createTestAuthMiddleware(t)

	tokenSvc.EXPECT().ValidateAccessToken("expired").Return(nil, errors.New("token is expired"))

	var called bool
	err := m.Authenticate(passthroughNext(&called))(newAuthTestContext("Bearer expired"))

	assert.False(t, called)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrTokenInvalid.ErrorCode(), appErr.ErrorCode())
	assert.Contains(t, appErr.Details(), "expired")
}

func TestAuthMiddleware_Authenticate_SettlesIdentity(t *testing.T) {
	m, tokenSvc, gw := createTestAuthMiddleware(t)

	identity := entity.Identity("user-42")
	tokenSvc.EXPECT().ValidateAccessToken("good").Return(&service.Claims{
		Identity: identity,
		Roles:    []string{"user"},
	}, nil)
	gw.EXPECT().Ready().Return(true)
	gw.EXPECT().SeedInitialData(mock.Anything, identity).Return(nil).Once()

	c := newAuthTestContext("Bearer good")
	var called bool
	err := m.Authenticate(passthroughNext(&called))(c)

	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, identity, CallerIdentity(c))
	settled, _ := c.Get(KeyIdentitySettled).(bool)
	assert.True(t, settled)
}
