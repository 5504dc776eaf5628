// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"bazaar/internal/domain/entity"
)

// ErrBuyerNotFound is a domain-specific error returned when a buyer row is absent.
var ErrBuyerNotFound = errors.New("buyer not found")

// BuyerRepository defines the standard operations for buyer persistence.
// The application layer depends on this interface, not the concrete implementation.
type BuyerRepository interface {
	// FindByID retrieves a single buyer by primary key. The identity resolver
	// consults this before the seller table when subject ids collide.
	FindByID(ctx context.Context, id int64) (*entity.Buyer, error)

	// FindByEmail retrieves a single buyer by email address.
	FindByEmail(ctx context.Context, email string) (*entity.Buyer, error)

	// Create persists a new buyer. The buyers table enforces email uniqueness;
	// a constraint violation surfaces as the domain's already-exists error.
	Create(ctx context.Context, buyer *entity.Buyer) error
}
