package middleware

import (
	"bazaar/config"
	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware resolves the session cookie into an identity for each request.
type AuthMiddleware struct {
	identityUC usecase.IdentityUsecase
	cookieName string
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(identityUC usecase.IdentityUsecase, cfg *config.Config) *AuthMiddleware {
	cookieName := ""
	if cfg != nil && cfg.Auth != nil {
		cookieName = cfg.Auth.CookieName
	}

	return &AuthMiddleware{identityUC: identityUC, cookieName: cookieName}
}

// Authenticate validates the session cookie and attaches the resolved identity
// to the request. Requests without a cookie, with an invalid token, or with a
// token for a deleted account are all rejected before the handler runs.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := ""
		if cookie, err := c.Cookie(m.cookieName); err == nil {
			token = cookie.Value
		}

		identity, err := m.identityUC.Resolve(c.Request().Context(), token)
		if err != nil {
			return err
		}

		c.Set(string(deliverycontext.KeyIdentity), identity)

		return next(c)
	}
}

// RequireSeller rejects requests whose identity is not a seller.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireSeller(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		identity := CurrentIdentity(c)
		if identity == nil {
			return domainerrors.ErrUnauthenticated.WrapMessage("no identity on request")
		}
		if !identity.IsSeller() {
			return domainerrors.ErrSellerOnly.WrapMessage("seller account required for this route")
		}

		return next(c)
	}
}

// CurrentIdentity returns the identity attached by Authenticate, or nil.
func CurrentIdentity(c echo.Context) *entity.Identity {
	if identity, ok := c.Get(string(deliverycontext.KeyIdentity)).(*entity.Identity); ok {
		return identity
	}

	return nil
}
