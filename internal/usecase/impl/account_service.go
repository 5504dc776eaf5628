// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"bazaar/config"
	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	"bazaar/internal/usecase"
	"bazaar/internal/util"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface for both account kinds.
type accountService struct {
	txManager         repository.TransactionManager
	buyerRepo         repository.BuyerRepository
	sellerRepo        repository.SellerRepository
	hasher            service.PasswordHasher
	tokenCodec        service.TokenCodec
	validate          *validator.Validate
	minPasswordLength int
	logger            *slog.Logger
}

// signupConfig parameterizes the shared signup flow per account kind.
type signupConfig struct {
	Kind        entity.IdentityKind
	Exists      func(ctx context.Context, factory repository.RepositoryFactory, email string) (bool, error)
	Create      func(ctx context.Context, factory repository.RepositoryFactory, input *usecase.SignupInput, passwordHash string) (*entity.Identity, error)
	ExistsError func() error
}

// signinConfig parameterizes the shared signin flow per account kind.
type signinConfig struct {
	Kind          entity.IdentityKind
	FindByEmail   func(ctx context.Context, email string) (*entity.Identity, error)
	NotFoundError func() error
}

// AccountServiceParams holds dependencies for accountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	BuyerRepo  repository.BuyerRepository
	SellerRepo repository.SellerRepository
	Hasher     service.PasswordHasher
	TokenCodec service.TokenCodec
	Config     *config.Config
	Logger     *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	minPasswordLength := 0
	if params.Config != nil && params.Config.Auth != nil {
		minPasswordLength = params.Config.Auth.MinPasswordLength
	}

	return &accountService{
		txManager:         params.TxManager,
		buyerRepo:         params.BuyerRepo,
		sellerRepo:        params.SellerRepo,
		hasher:            params.Hasher,
		tokenCodec:        params.TokenCodec,
		validate:          validator.New(),
		minPasswordLength: minPasswordLength,
		logger:            params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SignupBuyer registers a new buyer account and opens a session for it.
func (srv *accountService) SignupBuyer(ctx context.Context, input *usecase.SignupInput) (*usecase.AuthOutput, error) {
	cfg := &signupConfig{
		Kind: entity.KindBuyer,
		Exists: func(ctx context.Context, factory repository.RepositoryFactory, email string) (bool, error) {
			_, err := factory.BuyerRepo().FindByEmail(ctx, email)
			if errors.Is(err, repository.ErrBuyerNotFound) {
				return false, nil
			}
			if err != nil {
				return false, err
			}

			return true, nil
		},
		Create: func(ctx context.Context, factory repository.RepositoryFactory, input *usecase.SignupInput, passwordHash string) (*entity.Identity, error) {
			buyer := &entity.Buyer{
				Name:         input.Name,
				BusinessName: input.BusinessName,
				Email:        input.Email,
				PasswordHash: passwordHash,
			}
			if err := factory.BuyerRepo().Create(ctx, buyer); err != nil {
				return nil, err
			}

			return entity.NewBuyerIdentity(buyer), nil
		},
		ExistsError: func() error {
			return domainerrors.ErrBuyerAlreadyExists.WrapMessage("email already registered as buyer")
		},
	}

	return srv.executeSignup(ctx, input, cfg)
}

// SignupSeller registers a new seller account and opens a session for it.
func (srv *accountService) SignupSeller(ctx context.Context, input *usecase.SignupInput) (*usecase.AuthOutput, error) {
	cfg := &signupConfig{
		Kind: entity.KindSeller,
		Exists: func(ctx context.Context, factory repository.RepositoryFactory, email string) (bool, error) {
			_, err := factory.SellerRepo().FindByEmail(ctx, email)
			if errors.Is(err, repository.ErrSellerNotFound) {
				return false, nil
			}
			if err != nil {
				return false, err
			}

			return true, nil
		},
		Create: func(ctx context.Context, factory repository.RepositoryFactory, input *usecase.SignupInput, passwordHash string) (*entity.Identity, error) {
			seller := &entity.Seller{
				Name:         input.Name,
				BusinessName: input.BusinessName,
				Email:        input.Email,
				PasswordHash: passwordHash,
			}
			if err := factory.SellerRepo().Create(ctx, seller); err != nil {
				return nil, err
			}

			return entity.NewSellerIdentity(seller), nil
		},
		ExistsError: func() error {
			return domainerrors.ErrSellerAlreadyExists.WrapMessage("email already registered as seller")
		},
	}

	return srv.executeSignup(ctx, input, cfg)
}

// SigninBuyer authenticates a buyer by email and password.
func (srv *accountService) SigninBuyer(ctx context.Context, input *usecase.SigninInput) (*usecase.AuthOutput, error) {
	cfg := &signinConfig{
		Kind: entity.KindBuyer,
		FindByEmail: func(ctx context.Context, email string) (*entity.Identity, error) {
			buyer, err := srv.buyerRepo.FindByEmail(ctx, email)
			if err != nil {
				return nil, err
			}

			return entity.NewBuyerIdentity(buyer), nil
		},
		NotFoundError: func() error {
			return domainerrors.ErrBuyerNotFound.WrapMessage("no buyer registered with this email")
		},
	}

	return srv.executeSignin(ctx, input, cfg)
}

// SigninSeller authenticates a seller by email and password.
func (srv *accountService) SigninSeller(ctx context.Context, input *usecase.SigninInput) (*usecase.AuthOutput, error) {
	cfg := &signinConfig{
		Kind: entity.KindSeller,
		FindByEmail: func(ctx context.Context, email string) (*entity.Identity, error) {
			seller, err := srv.sellerRepo.FindByEmail(ctx, email)
			if err != nil {
				return nil, err
			}

			return entity.NewSellerIdentity(seller), nil
		},
		NotFoundError: func() error {
			return domainerrors.ErrSellerNotFound.WrapMessage("no seller registered with this email")
		},
	}

	return srv.executeSignin(ctx, input, cfg)
}

func (srv *accountService) executeSignup(ctx context.Context, input *usecase.SignupInput, cfg *signupConfig) (*usecase.AuthOutput, error) {
	sanitizeSignupInput(input)

	if err := srv.validateSignupInput(input); err != nil {
		srv.log(ctx).Warn("Signup validation failed", slog.Any("kind", cfg.Kind), slog.String("email", input.Email))

		return nil, err
	}

	srv.log(ctx).Info("Starting signup", slog.Any("kind", cfg.Kind), slog.String("email", input.Email))

	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during signup", slog.Any("kind", cfg.Kind), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during signup")
	}

	// The existence check and the insert run in one transaction. The unique
	// index on email remains the authoritative signal for concurrent signups,
	// so a constraint violation from Create still maps to the same error.
	var identity *entity.Identity
	err = srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		exists, err := cfg.Exists(ctx, factory, input.Email)
		if err != nil {
			return errors.Wrap(err, "failed to check for existing account")
		}
		if exists {
			return cfg.ExistsError()
		}

		identity, err = cfg.Create(ctx, factory, input, passwordHash)
		if err != nil {
			return errors.Wrap(err, "failed to create account")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Signup transaction failed", slog.Any("kind", cfg.Kind), slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	token, err := srv.tokenCodec.Issue(identity.SubjectID())
	if err != nil {
		srv.log(ctx).Error("Failed to issue session token after signup", slog.Any("kind", cfg.Kind), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue session token")
	}

	srv.log(ctx).Debug("Signup completed", slog.Any("kind", cfg.Kind), slog.Int64("subjectID", identity.SubjectID()))

	return &usecase.AuthOutput{Identity: identity, Token: token}, nil
}

func (srv *accountService) executeSignin(ctx context.Context, input *usecase.SigninInput, cfg *signinConfig) (*usecase.AuthOutput, error) {
	input.Email = strings.TrimSpace(util.StripMarkup(input.Email))

	if err := srv.validateSigninInput(input); err != nil {
		srv.log(ctx).Warn("Signin validation failed", slog.Any("kind", cfg.Kind), slog.String("email", input.Email))

		return nil, err
	}

	identity, err := cfg.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrBuyerNotFound) || errors.Is(err, repository.ErrSellerNotFound) {
			srv.log(ctx).Warn("Signin for unknown account", slog.Any("kind", cfg.Kind), slog.String("email", input.Email))

			return nil, cfg.NotFoundError()
		}

		return nil, errors.Wrap(err, "failed to load account for signin")
	}

	if !srv.hasher.Check(input.Password, identity.PasswordHash()) {
		srv.log(ctx).Warn("Signin password mismatch", slog.Any("kind", cfg.Kind), slog.String("email", input.Email))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("password mismatch during signin")
	}

	token, err := srv.tokenCodec.Issue(identity.SubjectID())
	if err != nil {
		srv.log(ctx).Error("Failed to issue session token after signin", slog.Any("kind", cfg.Kind), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue session token")
	}

	srv.log(ctx).Debug("Signin completed", slog.Any("kind", cfg.Kind), slog.Int64("subjectID", identity.SubjectID()))

	return &usecase.AuthOutput{Identity: identity, Token: token}, nil
}

func (srv *accountService) validateSignupInput(input *usecase.SignupInput) error {
	if input.Name == "" || input.BusinessName == "" || input.Email == "" || input.Password == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("all signup fields are required")
	}
	if err := srv.validate.Var(input.Email, "required,email"); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("email address is not valid")
	}
	if srv.minPasswordLength > 0 {
		if err := srv.validate.Var(input.Password, fmt.Sprintf("min=%d", srv.minPasswordLength)); err != nil {
			return domainerrors.ErrValidationFailed.WrapMessage(fmt.Sprintf("password must be at least %d characters", srv.minPasswordLength))
		}
	}

	return nil
}

func (srv *accountService) validateSigninInput(input *usecase.SigninInput) error {
	if input.Email == "" || input.Password == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("email and password are required")
	}
	if err := srv.validate.Var(input.Email, "required,email"); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("email address is not valid")
	}

	return nil
}

// sanitizeSignupInput strips markup from free-text fields before validation
// so stored names never carry tags.
func sanitizeSignupInput(input *usecase.SignupInput) {
	input.Name = strings.TrimSpace(util.StripMarkup(input.Name))
	input.BusinessName = strings.TrimSpace(util.StripMarkup(input.BusinessName))
	input.Email = strings.TrimSpace(util.StripMarkup(input.Email))
}
