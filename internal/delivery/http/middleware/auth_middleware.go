package middleware

import (
	"strings"

	"heritage/internal/domain/entity"
	domainerrors "heritage/internal/domain/errors"
	"heritage/internal/domain/service"
	"heritage/internal/usecase"

	"github.com/labstack/echo/v4"
)

// Echo context keys set by the auth middleware.
const (
	KeyIdentity        = "identity"
	KeyIdentitySettled = "identitySettled"
	KeyRoles           = "roles"
)

// AuthMiddleware provides middleware for JWT authentication and the
// admin access gate.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	access   usecase.AccessUsecase
	seed     usecase.SeedUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, access usecase.AccessUsecase, seed usecase.SeedUsecase) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, access: access, seed: seed}
}

// CallerIdentity returns the authenticated identity stored on the echo
// context, or the zero identity for anonymous requests.
func CallerIdentity(c echo.Context) entity.Identity {
	if identity, ok := c.Get(KeyIdentity).(entity.Identity); ok {
		return identity
	}

	return ""
}

// Authenticate validates the Bearer access token and stores the caller
// identity on the context. Requests without a valid token are rejected.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, err := m.claimsFromRequest(c)
		if err != nil {
			return err
		}

		m.settle(c, claims)

		return next(c)
	}
}

// OptionalAuthenticate extracts the caller identity when a valid token
// is present but lets anonymous requests through. Public pages use it
// so authenticated visitors still trigger session-scoped behavior.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if c.Request().Header.Get("Authorization") != "" {
			if claims, err := m.claimsFromRequest(c); err == nil {
				m.settle(c, claims)

				return next(c)
			}
		}

		c.Set(KeyIdentitySettled, true)

		return next(c)
	}
}

// RequireAdmin gates admin routes on the composed access state. Only
// an authorized resolution passes; every other state maps to its own
// response so the dashboard can render the matching view.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		settled, _ := c.Get(KeyIdentitySettled).(bool)

		resolution := m.access.Evaluate(c.Request().Context(), settled, CallerIdentity(c))
		switch resolution.State {
		case entity.AccessAuthorized:
			return next(c)
		case entity.AccessUnauthenticated:
			return domainerrors.ErrUnauthenticated
		case entity.AccessProfileIncomplete:
			return domainerrors.ErrProfileIncomplete
		case entity.AccessUnauthorized:
			return domainerrors.ErrForbidden
		case entity.AccessError:
			return domainerrors.ErrGatewayFailed.WithDetails(resolution.Cause.Error())
		default:
			return domainerrors.ErrGatewayUnavailable
		}
	}
}

// claimsFromRequest parses and validates the Bearer token. Failures
// come back as application errors the central error handler renders.
func (m *AuthMiddleware) claimsFromRequest(c echo.Context) (*service.Claims, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, domainerrors.ErrUnauthenticated.WithDetails("Authorization header is missing")
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return nil, domainerrors.ErrTokenInvalid.WithDetails("Invalid token format, must be Bearer token")
	}

	claims, err := m.tokenSvc.ValidateAccessToken(tokenString)
	if err != nil {
		return nil, domainerrors.ErrTokenInvalid.WithDetails(err.Error())
	}

	return claims, nil
}

// settle records the authenticated caller and fires the one-shot data
// seed for the session.
func (m *AuthMiddleware) settle(c echo.Context, claims *service.Claims) {
	c.Set(KeyIdentity, claims.Identity)
	c.Set(KeyIdentitySettled, true)
	c.Set(KeyRoles, claims.Roles)

	m.seed.MaybeSeed(c.Request().Context(), claims.Identity)
}
