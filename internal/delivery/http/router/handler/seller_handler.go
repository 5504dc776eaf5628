package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"bazaar/config"
	"bazaar/internal/delivery/http/middleware"
	"bazaar/internal/delivery/http/response"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SellerHandler holds dependencies for seller-facing routes.
type SellerHandler struct {
	accountUC  usecase.AccountUsecase
	identityUC usecase.IdentityUsecase
	catalogUC  usecase.CatalogUsecase
	cookies    *SessionCookies
	cookieName string
	logger     *slog.Logger
}

// NewSellerHandler is the constructor for SellerHandler, injected by Fx.
func NewSellerHandler(
	accountUC usecase.AccountUsecase,
	identityUC usecase.IdentityUsecase,
	catalogUC usecase.CatalogUsecase,
	cookies *SessionCookies,
	cfg *config.Config,
	logger *slog.Logger,
) *SellerHandler {
	cookieName := ""
	if cfg != nil && cfg.Auth != nil {
		cookieName = cfg.Auth.CookieName
	}

	return &SellerHandler{
		accountUC:  accountUC,
		identityUC: identityUC,
		catalogUC:  catalogUC,
		cookies:    cookies,
		cookieName: cookieName,
		logger:     logger,
	}
}

// Signup handles seller registration and opens a session.
func (h *SellerHandler) Signup(c echo.Context) error {
	var input usecase.SignupInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid signup input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.accountUC.SignupSeller(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	h.cookies.Issue(c, output.Token)

	return response.Success(c, http.StatusCreated, newAccountView(output.Identity), "Signed Up Successfully")
}

// Signin handles seller authentication and opens a session.
func (h *SellerHandler) Signin(c echo.Context) error {
	var input usecase.SigninInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid signin input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.accountUC.SigninSeller(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	h.cookies.Issue(c, output.Token)

	return response.Success(c, http.StatusCreated, newAccountView(output.Identity), "Signed In Successfully")
}

// Logout clears the session cookie, echoing the identity when it resolves.
func (h *SellerHandler) Logout(c echo.Context) error {
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
func (h *SellerHandler) Me(c echo.Context) error {
	identity := middleware.CurrentIdentity(c)

	return response.Success(c, http.StatusOK, newAccountView(identity), "")
}

// AddProduct creates a listing owned by the calling seller.
func (h *SellerHandler) AddProduct(c echo.Context) error {
	var input usecase.ProductInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	identity := middleware.CurrentIdentity(c)

	product, err := h.catalogUC.AddProduct(c.Request().Context(), identity, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newProductView(product), "Product added successfully")
}

// GetMyProducts lists the calling seller's products.
func (h *SellerHandler) GetMyProducts(c echo.Context) error {
	identity := middleware.CurrentIdentity(c)

	products, err := h.catalogUC.ListMine(c.Request().Context(), identity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newProductViews(products), "")
}

// UpdateProduct overwrites an existing listing.
func (h *SellerHandler) UpdateProduct(c echo.Context) error {
	productID, err := parseProductID(c)
	if err != nil {
		return err
	}

	var input usecase.ProductInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	identity := middleware.CurrentIdentity(c)

	product, err := h.catalogUC.UpdateProduct(c.Request().Context(), identity, productID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newProductView(product), "Product updated successfully")
}

// DeleteProduct removes an existing listing.
func (h *SellerHandler) DeleteProduct(c echo.Context) error {
	productID, err := parseProductID(c)
	if err != nil {
		return err
	}

	identity := middleware.CurrentIdentity(c)

	product, err := h.catalogUC.DeleteProduct(c.Request().Context(), identity, productID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newProductView(product), "Product deleted successfully")
}

// parseProductID reads the :id path parameter. A non-numeric id gets the same
// error as a missing product.
func parseProductID(c echo.Context) (int64, error) {
	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, domainerrors.ErrProductNotFound.WrapMessage("product id is not numeric")
	}

	return productID, nil
}
