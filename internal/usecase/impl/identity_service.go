package impl

import (
	"context"
	"log/slog"

	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	"bazaar/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// identityService implements the IdentityUsecase interface.
type identityService struct {
	buyerRepo  repository.BuyerRepository
	sellerRepo repository.SellerRepository
	tokenCodec service.TokenCodec
	logger     *slog.Logger
}

// IdentityServiceParams holds dependencies for identityService, injected by Fx.
type IdentityServiceParams struct {
	fx.In

	BuyerRepo  repository.BuyerRepository
	SellerRepo repository.SellerRepository
	TokenCodec service.TokenCodec
	Logger     *slog.Logger
}

// NewIdentityService is the constructor for identityService.
func NewIdentityService(params IdentityServiceParams) usecase.IdentityUsecase {
	return &identityService{
		buyerRepo:  params.BuyerRepo,
		sellerRepo: params.SellerRepo,
		tokenCodec: params.TokenCodec,
		logger:     params.Logger,
	}
}

func (srv *identityService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Resolve verifies a session token and loads the account it names.
// Buyers are checked before sellers; that order is load bearing because the
// two id sequences are independent and may collide.
func (srv *identityService) Resolve(ctx context.Context, token string) (*entity.Identity, error) {
	if token == "" {
		return nil, domainerrors.ErrUnauthenticated.WrapMessage("no session token presented")
	}

	subjectID, err := srv.tokenCodec.Verify(token)
	if err != nil {
		srv.log(ctx).Warn("Session token rejected", slog.Any("error", err))

		return nil, err
	}

	buyer, err := srv.buyerRepo.FindByID(ctx, subjectID)
	if err == nil {
		return entity.NewBuyerIdentity(buyer), nil
	}
	if !errors.Is(err, repository.ErrBuyerNotFound) {
		return nil, errors.Wrap(err, "failed to look up buyer for session")
	}

	seller, err := srv.sellerRepo.FindByID(ctx, subjectID)
	if err == nil {
		return entity.NewSellerIdentity(seller), nil
	}
	if !errors.Is(err, repository.ErrSellerNotFound) {
		return nil, errors.Wrap(err, "failed to look up seller for session")
	}

	srv.log(ctx).Warn("Valid token for a deleted account", slog.Int64("subjectID", subjectID))

	return nil, domainerrors.ErrIdentityNotFound.WrapMessage("no account matches the session subject")
}
