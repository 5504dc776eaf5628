package usecase

import (
	"context"

	"bazaar/internal/domain/entity"
)

// ProductInput defines the data required to create or update a product listing.
type ProductInput struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description" validate:"required"`
	Category    string  `json:"category" validate:"required"`
	Price       float64 `json:"price" validate:"gt=0"`
	Discount    float64 `json:"discount" validate:"gte=0"`
}

// CatalogUsecase defines the interface for product catalog operations.
// Browse operations are open to any authenticated account; mutating
// operations require a seller identity.
type CatalogUsecase interface {
	// Browse operations
	ListAll(ctx context.Context) ([]*entity.Product, error)
	SearchByCategory(ctx context.Context, category string) ([]*entity.Product, error)
	SearchByName(ctx context.Context, name string) ([]*entity.Product, error)
	ListCategories(ctx context.Context) ([]string, error)

	// Seller operations
	AddProduct(ctx context.Context, seller *entity.Identity, input *ProductInput) (*entity.Product, error)
	ListMine(ctx context.Context, seller *entity.Identity) ([]*entity.Product, error)
	UpdateProduct(ctx context.Context, seller *entity.Identity, productID int64, input *ProductInput) (*entity.Product, error)
	DeleteProduct(ctx context.Context, seller *entity.Identity, productID int64) (*entity.Product, error)
}
