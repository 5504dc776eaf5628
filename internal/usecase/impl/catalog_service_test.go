package impl

import (
	"context"
	"testing"

	"bazaar/config"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type catalogServiceFixtures struct {
	service     usecase.CatalogUsecase
	productRepo *mockProductRepository
}

func createTestCatalogService(t *testing.T, enforceOwnership bool) catalogServiceFixtures {
	t.Helper()

	productRepo := new(mockProductRepository)

	service := NewCatalogService(CatalogServiceParams{
		ProductRepo: productRepo,
		Config: &config.Config{
			Catalog: &config.CatalogConfig{EnforceOwnership: enforceOwnership},
		},
		Logger: newDiscardLogger(),
	})

	return catalogServiceFixtures{service: service, productRepo: productRepo}
}

func sellerIdentity(email string) *entity.Identity {
	return entity.NewSellerIdentity(&entity.Seller{SellerID: 11, Email: email})
}

func buyerIdentity() *entity.Identity {
	return entity.NewBuyerIdentity(&entity.Buyer{BuyerID: 7, Email: "buyer@example.com"})
}

func validProductInput() *usecase.ProductInput {
	return &usecase.ProductInput{
		Name:        "Rice Cooker",
		Description: "Five cup capacity",
		Category:    "Appliances",
		Price:       59.9,
		Discount:    5,
	}
}

func TestCatalogService_ListAll(t *testing.T) {
	fixtures := createTestCatalogService(t, false)
	ctx := context.Background()

	products := []*entity.Product{{ProductID: 1, Name: "Rice Cooker"}}
	fixtures.productRepo.On("ListAll", ctx).Return(products, nil)

	got, err := fixtures.service.ListAll(ctx)

	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestCatalogService_ListAll_Empty(t *testing.T) {
	fixtures := createTestCatalogService(t, false)
	ctx := context.Background()

	fixtures.productRepo.On("ListAll", ctx).Return([]*entity.Product{}, nil)

	_, err := fixtures.service.ListAll(ctx)

	assert.ErrorIs(t, err, domainerrors.ErrNoProducts)
}

func TestCatalogService_SearchByCategory_Empty(t *testing.T) {
	fixtures := createTestCatalogService(t, false)
	ctx := context.Background()

	fixtures.productRepo.On("ListByCategory", ctx, "Garden").Return([]*entity.Product{}, nil)

	_, err := fixtures.service.SearchByCategory(ctx, "Garden")

	assert.ErrorIs(t, err, domainerrors.ErrNoProducts)
}

func TestCatalogService_SearchByCategory_BlankQuery(t *testing.T) {
	fixtures := createTestCatalogService(t, false)

	_, err := fixtures.service.SearchByCategory(context.Background(), "   ")

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	fixtures.productRepo.AssertNotCalled(t, "ListByCategory", mock.Anything, mock.Anything)
}

func TestCatalogService_SearchByName(t *testing.T) {
	fixtures := createTestCatalogService(t, false)
	ctx := context.Background()

	products := []*entity.Product{{ProductID: 1, Name: "Rice Cooker"}}
	fixtures.productRepo.On("SearchByName", ctx, "rice").Return(products, nil)

	got, err := fixtures.service.SearchByName(ctx, "rice")

	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestCatalogService_ListCategories(t *testing.T) {
	fixtures := createTestCatalogService(t, false)
	ctx := context.Background()

	fixtures.productRepo.On("ListCategories", ctx).Return([]string{"Appliances", "Garden"}, nil)

	categories, err := fixtures.service.ListCategories(ctx)

	require.NoError(t, err)
	assert.Equal(t, []string{"Appliances", "Garden"}, categories)
}

func TestCatalogService_ListCategories_Empty(t *testing.T) {
	fixtures := createTestCatalogService(t, false)
	ctx := context.Background()

	fixtures.productRepo.On("ListCategories", ctx).Return([]string{}, nil)

	_, err := fixtures.service.ListCategories(ctx)

	assert.ErrorIs(t, err, domainerrors.ErrNoProducts)
}

func TestCatalogService_AddProduct_SetsOwnerFromIdentity(t *testing.T) {
	fixtures := createTestCatalogService(t, false)
	ctx := context.Background()

	fixtures.productRepo.On("Create", ctx, mock.AnythingOfType("*entity.Product")).
		Run(func(args mock.Arguments) {
			product := args.Get(1).(*entity.Product)
			product.ProductID = 42
		}).
		Return(nil)

	product, err := fixtures.service.AddProduct(ctx, sellerIdentity("ann@example.com"), validProductInput())

	require.NoError(t, err)
	assert.Equal(t, int64(42), product.ProductID)
	assert.Equal(t, "ann@example.com", product.SellerEmail)
}

func TestCatalogService_AddProduct_BuyerRejected(t *testing.T) {
	fixtures := createTestCatalogService(t, false)

	_, err := fixtures.service.AddProduct(context.Background(), buyerIdentity(), validProductInput())

	assert.ErrorIs(t, err, domainerrors.ErrSellerOnly)
	fixtures.productRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCatalogService_AddProduct_InvalidPrice(t *testing.T) {
	fixtures := createTestCatalogService(t, false)

	input := validProductInput()
	input.Price = 0

	_, err := fixtures.service.AddProduct(context.Background(), sellerIdentity("ann@example.com"), input)

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

// A discount is only constrained to be non-negative; it may exceed the price.
func TestCatalogService_AddProduct_DiscountAbovePriceAccepted(t *testing.T) {
	fixtures := createTestCatalogService(t, false)
	ctx := context.Background()

	input := validProductInput()
	input.Discount = input.Price + 10

	fixtures.productRepo.On("Create", ctx, mock.AnythingOfType("*entity.Product")).Return(nil)

	product, err := fixtures.service.AddProduct(ctx, sellerIdentity("ann@example.com"), input)

	require.NoError(t, err)
	assert.Equal(t, input.Discount, product.Discount)
}

func TestCatalogService_AddProduct_NegativeDiscount(t *testing.T) {
	fixtures := createTestCatalogService(t, false)

	input := validProductInput()
	input.Discount = -1

	_, err := fixtures.service.AddProduct(context.Background(), sellerIdentity("ann@example.com"), input)

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCatalogService_ListMine_Empty(t *testing.T) {
	fixtures := createTestCatalogService(t, false)
	ctx := context.Background()

	fixtures.productRepo.On("ListBySellerEmail", ctx, "ann@example.com").Return([]*entity.Product{}, nil)

	_, err := fixtures.service.ListMine(ctx, sellerIdentity("ann@example.com"))

	assert.ErrorIs(t, err, domainerrors.ErrNoOwnProducts)
}

func TestCatalogService_UpdateProduct_Success(t *testing.T) {
	fixtures := createTestCatalogService(t, false)
	ctx := context.Background()

	existing := &entity.Product{ProductID: 42, Name: "Old", SellerEmail: "ann@example.com"}
	fixtures.productRepo.On("FindByID", ctx, int64(42)).Return(existing, nil)
	fixtures.productRepo.On("Update", ctx, mock.AnythingOfType("*entity.Product")).Return(nil)

	product, err := fixtures.service.UpdateProduct(ctx, sellerIdentity("ann@example.com"), 42, validProductInput())

	require.NoError(t, err)
	assert.Equal(t, "Rice Cooker", product.Name)
	assert.Equal(t, "ann@example.com", product.SellerEmail)
}

func TestCatalogService_UpdateProduct_NotFound(t *testing.T) {
	fixtures := createTestCatalogService(t, false)
	ctx := context.Background()

	fixtures.productRepo.On("FindByID", ctx, int64(99)).Return(nil, repository.ErrProductNotFound)

	_, err := fixtures.service.UpdateProduct(ctx, sellerIdentity("ann@example.com"), 99, validProductInput())

	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

// With ownership enforcement off, any seller may edit any listing.
func TestCatalogService_UpdateProduct_OtherSellerAllowedWhenNotEnforced(t *testing.T) {
	fixtures := createTestCatalogService(t, false)
	ctx := context.Background()

	existing := &entity.Product{ProductID: 42, Name: "Old", SellerEmail: "owner@example.com"}
	fixtures.productRepo.On("FindByID", ctx, int64(42)).Return(existing, nil)
	fixtures.productRepo.On("Update", ctx, mock.AnythingOfType("*entity.Product")).Return(nil)

	_, err := fixtures.service.UpdateProduct(ctx, sellerIdentity("other@example.com"), 42, validProductInput())

	require.NoError(t, err)
}

func TestCatalogService_UpdateProduct_OtherSellerRejectedWhenEnforced(t *testing.T) {
	fixtures := createTestCatalogService(t, true)
	ctx := context.Background()

	existing := &entity.Product{ProductID: 42, Name: "Old", SellerEmail: "owner@example.com"}
	fixtures.productRepo.On("FindByID", ctx, int64(42)).Return(existing, nil)

	_, err := fixtures.service.UpdateProduct(ctx, sellerIdentity("other@example.com"), 42, validProductInput())

	assert.ErrorIs(t, err, domainerrors.ErrNotProductOwner)
	fixtures.productRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestCatalogService_DeleteProduct_Success(t *testing.T) {
	fixtures := createTestCatalogService(t, false)
	ctx := context.Background()

	existing := &entity.Product{ProductID: 42, Name: "Rice Cooker", SellerEmail: "ann@example.com"}
	fixtures.productRepo.On("FindByID", ctx, int64(42)).Return(existing, nil)
	fixtures.productRepo.On("Delete", ctx, int64(42)).Return(nil)

	deleted, err := fixtures.service.DeleteProduct(ctx, sellerIdentity("ann@example.com"), 42)

	require.NoError(t, err)
	assert.Equal(t, "Rice Cooker", deleted.Name)
}

func TestCatalogService_DeleteProduct_NotFound(t *testing.T) {
	fixtures := createTestCatalogService(t, false)
	ctx := context.Background()

	fixtures.productRepo.On("FindByID", ctx, int64(99)).Return(nil, repository.ErrProductNotFound)

	_, err := fixtures.service.DeleteProduct(ctx, sellerIdentity("ann@example.com"), 99)

	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
	fixtures.productRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
