package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"bazaar/config"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockIdentityUsecase struct {
	mock.Mock
}

func (m *mockIdentityUsecase) Resolve(ctx context.Context, token string) (*entity.Identity, error) {
	args := m.Called(ctx, token)
	if identity, ok := args.Get(0).(*entity.Identity); ok {
		return identity, args.Error(1)
	}

	return nil, args.Error(1)
}

func newTestAuthMiddleware(identityUC *mockIdentityUsecase) *AuthMiddleware {
	cfg := &config.Config{Auth: &config.AuthConfig{CookieName: "token"}}

	return NewAuthMiddleware(identityUC, cfg)
}

func passthrough(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestAuthMiddleware_Authenticate_AttachesIdentity(t *testing.T) {
	identityUC := new(mockIdentityUsecase)
	mw := newTestAuthMiddleware(identityUC)

	identity := entity.NewBuyerIdentity(&entity.Buyer{BuyerID: 7, Email: "ann@example.com"})
	identityUC.On("Resolve", mock.Anything, "signed-token").Return(identity, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/buyers/me", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: "signed-token"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen *entity.Identity
	err := mw.Authenticate(func(c echo.Context) error {
		seen = CurrentIdentity(c)

		return c.NoContent(http.StatusOK)
	})(c)

	require.NoError(t, err)
	assert.Equal(t, identity, seen)
}

// A missing cookie resolves with an empty token so the usecase decides the error.
func TestAuthMiddleware_Authenticate_NoCookie(t *testing.T) {
	identityUC := new(mockIdentityUsecase)
	mw := newTestAuthMiddleware(identityUC)

	identityUC.On("Resolve", mock.Anything, "").Return(nil, domainerrors.ErrUnauthenticated)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/buyers/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := mw.Authenticate(passthrough)(c)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestAuthMiddleware_RequireSeller(t *testing.T) {
	mw := newTestAuthMiddleware(new(mockIdentityUsecase))

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/sellers/addProduct", nil)
	rec := httptest.NewRecorder()

	t.Run("seller passes", func(t *testing.T) {
		c := e.NewContext(req, rec)
		c.Set("identity", entity.NewSellerIdentity(&entity.Seller{SellerID: 11}))

		assert.NoError(t, mw.RequireSeller(passthrough)(c))
	})

	t.Run("buyer rejected", func(t *testing.T) {
		c := e.NewContext(req, httptest.NewRecorder())
		c.Set("identity", entity.NewBuyerIdentity(&entity.Buyer{BuyerID: 7}))

		err := mw.RequireSeller(passthrough)(c)
		assert.ErrorIs(t, err, domainerrors.ErrSellerOnly)
	})

	t.Run("missing identity rejected", func(t *testing.T) {
		c := e.NewContext(req, httptest.NewRecorder())

		err := mw.RequireSeller(passthrough)(c)
		assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
	})
}
