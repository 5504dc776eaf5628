package handler

import (
	"context"
	"io"
	"log/slog"
	"time"

	"bazaar/internal/delivery/http/validator"
	"bazaar/internal/domain/entity"
	"bazaar/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()

	return e
}

func testSessionCookies() *SessionCookies {
	return &SessionCookies{name: "token", ttl: 15 * time.Minute, dev: true}
}

type mockAccountUsecase struct {
	mock.Mock
}

func (m *mockAccountUsecase) SignupBuyer(ctx context.Context, input *usecase.SignupInput) (*usecase.AuthOutput, error) {
	args := m.Called(ctx, input)
	if output, ok := args.Get(0).(*usecase.AuthOutput); ok {
		return output, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockAccountUsecase) SigninBuyer(ctx context.Context, input *usecase.SigninInput) (*usecase.AuthOutput, error) {
	args := m.Called(ctx, input)
	if output, ok := args.Get(0).(*usecase.AuthOutput); ok {
		return output, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockAccountUsecase) SignupSeller(ctx context.Context, input *usecase.SignupInput) (*usecase.AuthOutput, error) {
	args := m.Called(ctx, input)
	if output, ok := args.Get(0).(*usecase.AuthOutput); ok {
		return output, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockAccountUsecase) SigninSeller(ctx context.Context, input *usecase.SigninInput) (*usecase.AuthOutput, error) {
	args := m.Called(ctx, input)
	if output, ok := args.Get(0).(*usecase.AuthOutput); ok {
		return output, args.Error(1)
	}

	return nil, args.Error(1)
}

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

type mockCatalogUsecase struct {
	mock.Mock
}

func (m *mockCatalogUsecase) ListAll(ctx context.Context) ([]*entity.Product, error) {
	args := m.Called(ctx)
	if products, ok := args.Get(0).([]*entity.Product); ok {
		return products, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockCatalogUsecase) SearchByCategory(ctx context.Context, category string) ([]*entity.Product, error) {
	args := m.Called(ctx, category)
	if products, ok := args.Get(0).([]*entity.Product); ok {
		return products, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockCatalogUsecase) SearchByName(ctx context.Context, name string) ([]*entity.Product, error) {
	args := m.Called(ctx, name)
	if products, ok := args.Get(0).([]*entity.Product); ok {
		return products, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockCatalogUsecase) ListCategories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if categories, ok := args.Get(0).([]string); ok {
		return categories, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockCatalogUsecase) AddProduct(ctx context.Context, seller *entity.Identity, input *usecase.ProductInput) (*entity.Product, error) {
	args := m.Called(ctx, seller, input)
	if product, ok := args.Get(0).(*entity.Product); ok {
		return product, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockCatalogUsecase) ListMine(ctx context.Context, seller *entity.Identity) ([]*entity.Product, error) {
	args := m.Called(ctx, seller)
	if products, ok := args.Get(0).([]*entity.Product); ok {
		return products, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockCatalogUsecase) UpdateProduct(ctx context.Context, seller *entity.Identity, productID int64, input *usecase.ProductInput) (*entity.Product, error) {
	args := m.Called(ctx, seller, productID, input)
	if product, ok := args.Get(0).(*entity.Product); ok {
		return product, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockCatalogUsecase) DeleteProduct(ctx context.Context, seller *entity.Identity, productID int64) (*entity.Product, error) {
	args := m.Called(ctx, seller, productID)
	if product, ok := args.Get(0).(*entity.Product); ok {
		return product, args.Error(1)
	}

	return nil, args.Error(1)
}
