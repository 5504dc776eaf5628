package usecase

import (
	"context"

	"bazaar/internal/domain/entity"
)

// IdentityUsecase resolves a session token to the account it belongs to.
// Buyers and sellers live in separate tables with independent id sequences,
// so a token subject may match a row in both. Resolution always checks
// buyers first and only falls through to sellers when no buyer matches.
type IdentityUsecase interface {
	Resolve(ctx context.Context, token string) (*entity.Identity, error)
}
