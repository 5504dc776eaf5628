package handler

import (
	"log/slog"
	"net/http"

	"bazaar/config"
	"bazaar/internal/delivery/http/middleware"
	"bazaar/internal/delivery/http/response"
	"bazaar/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// BuyerHandler holds dependencies for buyer-facing routes.
type BuyerHandler struct {
	accountUC  usecase.AccountUsecase
	identityUC usecase.IdentityUsecase
	catalogUC  usecase.CatalogUsecase
	cookies    *SessionCookies
	cookieName string
	logger     *slog.Logger
}

// NewBuyerHandler is the constructor for BuyerHandler, injected by Fx.
func NewBuyerHandler(
	accountUC usecase.AccountUsecase,
	identityUC usecase.IdentityUsecase,
	catalogUC usecase.CatalogUsecase,
	cookies *SessionCookies,
	cfg *config.Config,
	logger *slog.Logger,
) *BuyerHandler {
	cookieName := ""
	if cfg != nil && cfg.Auth != nil {
		cookieName = cfg.Auth.CookieName
	}

	return &BuyerHandler{
		accountUC:  accountUC,
		identityUC: identityUC,
		catalogUC:  catalogUC,
		cookies:    cookies,
		cookieName: cookieName,
		logger:     logger,
	}
}

// Signup handles buyer registration and opens a session.
func (h *BuyerHandler) Signup(c echo.Context) error {
	var input usecase.SignupInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid signup input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.accountUC.SignupBuyer(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	h.cookies.Issue(c, output.Token)

	return response.Success(c, http.StatusCreated, newAccountView(output.Identity), "Signed Up Successfully")
}

// Signin handles buyer authentication and opens a session.
func (h *BuyerHandler) Signin(c echo.Context) error {
	var input usecase.SigninInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid signin input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.accountUC.SigninBuyer(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	h.cookies.Issue(c, output.Token)

	return response.Success(c, http.StatusCreated, newAccountView(output.Identity), "Signed In Successfully")
}

// Logout clears the session cookie. The identity is echoed back when the
// cookie still resolves, but an unresolvable cookie is cleared all the same.
func (h *BuyerHandler) Logout(c echo.Context) error {
	token := ""
	if cookie, err := c.Cookie(h.cookieName); err == nil {
		token = cookie.Value
	}

	var data any
	if identity, err := h.identityUC.Resolve(c.Request().Context(), token); err == nil {
		data = newAccountView(identity)
	}

	h.cookies.Clear(c)

	return response.Success(c, http.StatusOK, data, "Logout successful")
}

// Me returns the authenticated identity.
func (h *BuyerHandler) Me(c echo.Context) error {
	identity := middleware.CurrentIdentity(c)

	return response.Success(c, http.StatusOK, newAccountView(identity), "")
}

// ListProducts returns the full catalog.
func (h *BuyerHandler) ListProducts(c echo.Context) error {
	products, err := h.catalogUC.ListAll(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newProductViews(products), "")
}

// SearchByCategory returns products matching the category query parameter.
func (h *BuyerHandler) SearchByCategory(c echo.Context) error {
	products, err := h.catalogUC.SearchByCategory(c.Request().Context(), c.QueryParam("category"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newProductViews(products), "")
}

// SearchByName returns products whose name contains the name query parameter.
func (h *BuyerHandler) SearchByName(c echo.Context) error {
	products, err := h.catalogUC.SearchByName(c.Request().Context(), c.QueryParam("name"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newProductViews(products), "")
}

// GetCategories returns the distinct categories in the catalog.
func (h *BuyerHandler) GetCategories(c echo.Context) error {
	categories, err := h.catalogUC.ListCategories(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, categories, "")
}
