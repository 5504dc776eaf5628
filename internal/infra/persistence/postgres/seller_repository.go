package postgres

import (
	"context"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// sellerRepository implements the domain.SellerRepository interface using GORM.
type sellerRepository struct {
	db *gorm.DB
}

// NewSellerRepository is the constructor for sellerRepository.
func NewSellerRepository(db *gorm.DB) repository.SellerRepository {
	return &sellerRepository{db: db}
}

// FindByID retrieves a single seller by primary key.
func (repo *sellerRepository) FindByID(ctx context.Context, id int64) (*entity.Seller, error) {
	var sellerM model.SellerModel
	if err := repo.db.WithContext(ctx).First(&sellerM, "seller_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSellerNotFound
		}

		return nil, errors.Wrap(err, "failed to find seller by id")
	}

	return toSellerDomain(&sellerM), nil
}

// FindByEmail retrieves a single seller by email address.
func (repo *sellerRepository) FindByEmail(ctx context.Context, email string) (*entity.Seller, error) {
	var sellerM model.SellerModel
	if err := repo.db.WithContext(ctx).First(&sellerM, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSellerNotFound
		}

		return nil, errors.Wrap(err, "failed to find seller by email")
	}

	return toSellerDomain(&sellerM), nil
}

// Create persists a new seller, with the email unique index as the
// authoritative duplicate-signup signal.
func (repo *sellerRepository) Create(ctx context.Context, seller *entity.Seller) error {
	sellerM := fromSellerDomain(seller)

	if err := repo.db.WithContext(ctx).Create(sellerM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrSellerAlreadyExists.WrapMessage("email already registered as seller")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required seller information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create seller")
	}

	seller.SellerID = sellerM.SellerID
	seller.CreatedAt = sellerM.CreatedAt
	seller.UpdatedAt = sellerM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

// toSellerDomain converts a GORM SellerModel to a domain Seller entity.
func toSellerDomain(data *model.SellerModel) *entity.Seller {
	if data == nil {
		return nil
	}

	return &entity.Seller{
		SellerID:     data.SellerID,
		Name:         data.Name,
		BusinessName: data.BusinessName,
		Email:        data.Email,
		PasswordHash: data.Password,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromSellerDomain converts a domain Seller entity to a GORM SellerModel for persistence.
func fromSellerDomain(data *entity.Seller) *model.SellerModel {
	if data == nil {
		return nil
	}

	return &model.SellerModel{
		SellerID:     data.SellerID,
		Name:         data.Name,
		BusinessName: data.BusinessName,
		Email:        data.Email,
		Password:     data.PasswordHash,
	}
}
