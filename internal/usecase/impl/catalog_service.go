package impl

import (
	"context"
	"log/slog"
	"strings"

	"bazaar/config"
	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/usecase"
	"bazaar/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	productRepo      repository.ProductRepository
	enforceOwnership bool
	logger           *slog.Logger
}

// CatalogServiceParams holds dependencies for catalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	Config      *config.Config
	Logger      *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	enforceOwnership := false
	if params.Config != nil && params.Config.Catalog != nil {
		enforceOwnership = params.Config.Catalog.EnforceOwnership
	}

	return &catalogService{
		productRepo:      params.ProductRepo,
		enforceOwnership: enforceOwnership,
		logger:           params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListAll returns the full catalog.
func (srv *catalogService) ListAll(ctx context.Context) ([]*entity.Product, error) {
	products, err := srv.productRepo.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list catalog")
	}
	if len(products) == 0 {
		return nil, domainerrors.ErrNoProducts
	}

	return products, nil
}

// SearchByCategory returns products in the given category.
func (srv *catalogService) SearchByCategory(ctx context.Context, category string) ([]*entity.Product, error) {
	category = strings.TrimSpace(util.StripMarkup(category))
	if category == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("category is required")
	}

	products, err := srv.productRepo.ListByCategory(ctx, category)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search by category")
	}
	if len(products) == 0 {
		return nil, domainerrors.ErrNoProducts
	}

	return products, nil
}

// SearchByName returns products whose name contains the query, case-insensitively.
func (srv *catalogService) SearchByName(ctx context.Context, name string) ([]*entity.Product, error) {
	name = strings.TrimSpace(util.StripMarkup(name))
	if name == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("search term is required")
	}

	products, err := srv.productRepo.SearchByName(ctx, name)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search by name")
	}
	if len(products) == 0 {
		return nil, domainerrors.ErrNoProducts
	}

	return products, nil
}

// ListCategories returns the distinct categories in the catalog.
func (srv *catalogService) ListCategories(ctx context.Context) ([]string, error) {
	categories, err := srv.productRepo.ListCategories(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}
	if len(categories) == 0 {
		return nil, domainerrors.ErrNoProducts
	}

	return categories, nil
}

// AddProduct creates a new listing owned by the calling seller. Ownership is
// taken from the resolved identity, never from the request body.
func (srv *catalogService) AddProduct(ctx context.Context, seller *entity.Identity, input *usecase.ProductInput) (*entity.Product, error) {
	if err := requireSeller(seller); err != nil {
		return nil, err
	}
	if err := validateProductInput(input); err != nil {
		return nil, err
	}

	product := &entity.Product{
		Name:        input.Name,
		Description: input.Description,
		Category:    input.Category,
		Price:       input.Price,
		Discount:    input.Discount,
		SellerEmail: seller.Email(),
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		srv.log(ctx).Error("Failed to create product", slog.String("seller", seller.Email()), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Product created", slog.Int64("productID", product.ProductID), slog.String("seller", seller.Email()))

	return product, nil
}

// ListMine returns the products owned by the calling seller.
func (srv *catalogService) ListMine(ctx context.Context, seller *entity.Identity) ([]*entity.Product, error) {
	if err := requireSeller(seller); err != nil {
		return nil, err
	}

	products, err := srv.productRepo.ListBySellerEmail(ctx, seller.Email())
	if err != nil {
		return nil, errors.Wrap(err, "failed to list seller products")
	}
	if len(products) == 0 {
		return nil, domainerrors.ErrNoOwnProducts
	}

	return products, nil
}

// UpdateProduct overwrites an existing listing's fields.
func (srv *catalogService) UpdateProduct(ctx context.Context, seller *entity.Identity, productID int64, input *usecase.ProductInput) (*entity.Product, error) {
	if err := requireSeller(seller); err != nil {
		return nil, err
	}
	if err := validateProductInput(input); err != nil {
		return nil, err
	}

	existing, err := srv.loadOwnedProduct(ctx, seller, productID)
	if err != nil {
		return nil, err
	}

	existing.Name = input.Name
	existing.Description = input.Description
	existing.Category = input.Category
	existing.Price = input.Price
	existing.Discount = input.Discount

	if err := srv.productRepo.Update(ctx, existing); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound.WrapMessage("product vanished during update")
		}

		srv.log(ctx).Error("Failed to update product", slog.Int64("productID", productID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Product updated", slog.Int64("productID", productID), slog.String("seller", seller.Email()))

	return existing, nil
}

// DeleteProduct removes an existing listing and returns what was deleted.
func (srv *catalogService) DeleteProduct(ctx context.Context, seller *entity.Identity, productID int64) (*entity.Product, error) {
	if err := requireSeller(seller); err != nil {
		return nil, err
	}

	product, err := srv.loadOwnedProduct(ctx, seller, productID)
	if err != nil {
		return nil, err
	}

	if err := srv.productRepo.Delete(ctx, productID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound.WrapMessage("product vanished during delete")
		}

		srv.log(ctx).Error("Failed to delete product", slog.Int64("productID", productID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Product deleted", slog.Int64("productID", productID), slog.String("seller", seller.Email()))

	return product, nil
}

// loadOwnedProduct fetches a product and, when ownership enforcement is
// enabled, rejects sellers touching listings they do not own.
func (srv *catalogService) loadOwnedProduct(ctx context.Context, seller *entity.Identity, productID int64) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound.WrapMessage("no product with this id")
		}

		return nil, errors.Wrap(err, "failed to load product")
	}

	if srv.enforceOwnership && product.SellerEmail != seller.Email() {
		srv.log(ctx).Warn("Seller touched a listing they do not own",
			slog.Int64("productID", productID),
			slog.String("owner", product.SellerEmail),
			slog.String("caller", seller.Email()))

		return nil, domainerrors.ErrNotProductOwner.WrapMessage("listing belongs to another seller")
	}

	return product, nil
}

func requireSeller(identity *entity.Identity) error {
	if identity == nil {
		return domainerrors.ErrUnauthenticated.WrapMessage("no identity on request")
	}
	if !identity.IsSeller() {
		return domainerrors.ErrSellerOnly.WrapMessage("catalog mutations require a seller account")
	}

	return nil
}

func validateProductInput(input *usecase.ProductInput) error {
	input.Name = strings.TrimSpace(util.StripMarkup(input.Name))
	input.Description = strings.TrimSpace(util.StripMarkup(input.Description))
	input.Category = strings.TrimSpace(util.StripMarkup(input.Category))

	if input.Name == "" || input.Description == "" || input.Category == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("name, description and category are required")
	}
	if input.Price <= 0 {
		return domainerrors.ErrValidationFailed.WrapMessage("price must be greater than zero")
	}
	if input.Discount < 0 {
		return domainerrors.ErrValidationFailed.WrapMessage("discount must not be negative")
	}

	return nil
}
