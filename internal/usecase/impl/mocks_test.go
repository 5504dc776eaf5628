package impl

import (
	"context"
	"io"
	"log/slog"
	"time"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// --- repository mocks ---

type mockBuyerRepository struct {
	mock.Mock
}

func (m *mockBuyerRepository) FindByID(ctx context.Context, id int64) (*entity.Buyer, error) {
	args := m.Called(ctx, id)
	if buyer, ok := args.Get(0).(*entity.Buyer); ok {
		return buyer, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockBuyerRepository) FindByEmail(ctx context.Context, email string) (*entity.Buyer, error) {
	args := m.Called(ctx, email)
	if buyer, ok := args.Get(0).(*entity.Buyer); ok {
		return buyer, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockBuyerRepository) Create(ctx context.Context, buyer *entity.Buyer) error {
	args := m.Called(ctx, buyer)

	return args.Error(0)
}

type mockSellerRepository struct {
	mock.Mock
}

func (m *mockSellerRepository) FindByID(ctx context.Context, id int64) (*entity.Seller, error) {
	args := m.Called(ctx, id)
	if seller, ok := args.Get(0).(*entity.Seller); ok {
		return seller, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockSellerRepository) FindByEmail(ctx context.Context, email string) (*entity.Seller, error) {
	args := m.Called(ctx, email)
	if seller, ok := args.Get(0).(*entity.Seller); ok {
		return seller, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockSellerRepository) Create(ctx context.Context, seller *entity.Seller) error {
	args := m.Called(ctx, seller)

	return args.Error(0)
}

type mockProductRepository struct {
	mock.Mock
}

func (m *mockProductRepository) Create(ctx context.Context, product *entity.Product) error {
	args := m.Called(ctx, product)

	return args.Error(0)
}

func (m *mockProductRepository) FindByID(ctx context.Context, id int64) (*entity.Product, error) {
	args := m.Called(ctx, id)
	if product, ok := args.Get(0).(*entity.Product); ok {
		return product, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockProductRepository) Update(ctx context.Context, product *entity.Product) error {
	args := m.Called(ctx, product)

	return args.Error(0)
}

func (m *mockProductRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

func (m *mockProductRepository) ListAll(ctx context.Context) ([]*entity.Product, error) {
	args := m.Called(ctx)
	if products, ok := args.Get(0).([]*entity.Product); ok {
		return products, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockProductRepository) ListByCategory(ctx context.Context, category string) ([]*entity.Product, error) {
	args := m.Called(ctx, category)
	if products, ok := args.Get(0).([]*entity.Product); ok {
		return products, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockProductRepository) SearchByName(ctx context.Context, name string) ([]*entity.Product, error) {
	args := m.Called(ctx, name)
	if products, ok := args.Get(0).([]*entity.Product); ok {
		return products, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockProductRepository) ListCategories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if categories, ok := args.Get(0).([]string); ok {
		return categories, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockProductRepository) ListBySellerEmail(ctx context.Context, email string) ([]*entity.Product, error) {
	args := m.Called(ctx, email)
	if products, ok := args.Get(0).([]*entity.Product); ok {
		return products, args.Error(1)
	}

	return nil, args.Error(1)
}

// mockRepositoryFactory hands out the mock repositories inside a fake transaction.
type mockRepositoryFactory struct {
	buyerRepo   *mockBuyerRepository
	sellerRepo  *mockSellerRepository
	productRepo *mockProductRepository
}

func (f *mockRepositoryFactory) BuyerRepo() repository.BuyerRepository {
	return f.buyerRepo
}

func (f *mockRepositoryFactory) SellerRepo() repository.SellerRepository {
	return f.sellerRepo
}

func (f *mockRepositoryFactory) ProductRepo() repository.ProductRepository {
	return f.productRepo
}

// mockTransactionManager runs the callback synchronously against the mock factory.
type mockTransactionManager struct {
	mock.Mock
	factory *mockRepositoryFactory
}

func (m *mockTransactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	args := m.Called(ctx, fn)
	if args.Error(0) != nil {
		return args.Error(0)
	}

	return fn(m.factory)
}

// --- service mocks ---

type mockPasswordHasher struct {
	mock.Mock
}

func (m *mockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *mockPasswordHasher) Check(password, hash string) bool {
	args := m.Called(password, hash)

	return args.Bool(0)
}

type mockTokenCodec struct {
	mock.Mock
}

func (m *mockTokenCodec) Issue(subjectID int64) (string, error) {
	args := m.Called(subjectID)

	return args.String(0), args.Error(1)
}

func (m *mockTokenCodec) Verify(token string) (int64, error) {
	args := m.Called(token)

	return args.Get(0).(int64), args.Error(1)
}

func (m *mockTokenCodec) SessionTTL() time.Duration {
	args := m.Called()

	return args.Get(0).(time.Duration)
}
