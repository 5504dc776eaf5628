package repository

import (
	"context"
	"errors"

	"bazaar/internal/domain/entity"
)

// ErrProductNotFound is a domain-specific error returned when a product row is absent.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the standard operations for catalog persistence.
type ProductRepository interface {
	// Create persists a new product listing.
	Create(ctx context.Context, product *entity.Product) error

	// FindByID retrieves a single product by primary key.
	FindByID(ctx context.Context, id int64) (*entity.Product, error)

	// Update performs a full-field overwrite of an existing product.
	Update(ctx context.Context, product *entity.Product) error

	// Delete removes a product by primary key.
	Delete(ctx context.Context, id int64) error

	// ListAll returns every product in the catalog.
	ListAll(ctx context.Context) ([]*entity.Product, error)

	// ListByCategory returns products whose category matches exactly.
	ListByCategory(ctx context.Context, category string) ([]*entity.Product, error)

	// SearchByName returns products whose name contains the substring,
	// case-insensitively.
	SearchByName(ctx context.Context, name string) ([]*entity.Product, error)

	// ListCategories returns the distinct category strings in ascending order.
	ListCategories(ctx context.Context) ([]string, error)

	// ListBySellerEmail returns the products owned by the given seller email.
	ListBySellerEmail(ctx context.Context, email string) ([]*entity.Product, error)
}
