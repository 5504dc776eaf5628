// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"bazaar/internal/domain/entity"
)

// SignupInput defines the data required to register a new account.
type SignupInput struct {
	Name         string `json:"name" validate:"required"`
	BusinessName string `json:"businessName" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required"`
}

// SigninInput defines the data required to authenticate an account.
type SigninInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthOutput is the result of a successful signup or signin. The token is a
// signed session token the delivery layer places in the session cookie.
type AuthOutput struct {
	Identity *entity.Identity
	Token    string
}

// AccountUsecase defines the interface for buyer and seller account operations.
type AccountUsecase interface {
	SignupBuyer(ctx context.Context, input *SignupInput) (*AuthOutput, error)
	SigninBuyer(ctx context.Context, input *SigninInput) (*AuthOutput, error)
	SignupSeller(ctx context.Context, input *SignupInput) (*AuthOutput, error)
	SigninSeller(ctx context.Context, input *SigninInput) (*AuthOutput, error)
}
