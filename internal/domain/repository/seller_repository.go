package repository

import (
	"context"
	"errors"

	"bazaar/internal/domain/entity"
)

// ErrSellerNotFound is a domain-specific error returned when a seller row is absent.
var ErrSellerNotFound = errors.New("seller not found")

// SellerRepository defines the standard operations for seller persistence.
type SellerRepository interface {
	// FindByID retrieves a single seller by primary key.
	FindByID(ctx context.Context, id int64) (*entity.Seller, error)

	// FindByEmail retrieves a single seller by email address.
	FindByEmail(ctx context.Context, email string) (*entity.Seller, error)

	// Create persists a new seller. Email uniqueness is enforced per table only;
	// a buyer may hold the same email.
	Create(ctx context.Context, seller *entity.Seller) error
}
