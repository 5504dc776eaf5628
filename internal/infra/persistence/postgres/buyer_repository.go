// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
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

// buyerRepository implements the domain.BuyerRepository interface using GORM.
type buyerRepository struct {
	db *gorm.DB
}

// NewBuyerRepository is the constructor for buyerRepository.
// It returns the repository as a domain interface, adhering to dependency inversion.
func NewBuyerRepository(db *gorm.DB) repository.BuyerRepository {
	return &buyerRepository{db: db}
}

// FindByID retrieves a single buyer by primary key.
func (repo *buyerRepository) FindByID(ctx context.Context, id int64) (*entity.Buyer, error) {
	var buyerM model.BuyerModel
	if err := repo.db.WithContext(ctx).First(&buyerM, "buyer_id = ?", id).Error; err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBuyerNotFound
		}

		return nil, errors.Wrap(err, "failed to find buyer by id")
	}

	return toBuyerDomain(&buyerM), nil
}

// FindByEmail retrieves a single buyer by email address.
func (repo *buyerRepository) FindByEmail(ctx context.Context, email string) (*entity.Buyer, error) {
	var buyerM model.BuyerModel
	if err := repo.db.WithContext(ctx).First(&buyerM, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBuyerNotFound
		}

		return nil, errors.Wrap(err, "failed to find buyer by email")
	}

	return toBuyerDomain(&buyerM), nil
}

// Create persists a new buyer. The unique index on email is the authoritative
// duplicate-signup signal; a constraint violation maps to the domain's
// already-exists error regardless of any earlier existence check.
func (repo *buyerRepository) Create(ctx context.Context, buyer *entity.Buyer) error {
	buyerM := fromBuyerDomain(buyer)

	if err := repo.db.WithContext(ctx).Create(buyerM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrBuyerAlreadyExists.WrapMessage("email already registered as buyer")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required buyer information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create buyer")
	}

	// Propagate the generated id and timestamps back to the entity.
	buyer.BuyerID = buyerM.BuyerID
	buyer.CreatedAt = buyerM.CreatedAt
	buyer.UpdatedAt = buyerM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

// toBuyerDomain converts a GORM BuyerModel to a domain Buyer entity.
func toBuyerDomain(data *model.BuyerModel) *entity.Buyer {
	if data == nil {
		return nil
	}

	return &entity.Buyer{
		BuyerID:      data.BuyerID,
		Name:         data.Name,
		BusinessName: data.BusinessName,
		Email:        data.Email,
		PasswordHash: data.Password,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromBuyerDomain converts a domain Buyer entity to a GORM BuyerModel for persistence.
func fromBuyerDomain(data *entity.Buyer) *model.BuyerModel {
	if data == nil {
		return nil
	}

	return &model.BuyerModel{
		BuyerID:      data.BuyerID,
		Name:         data.Name,
		BusinessName: data.BusinessName,
		Email:        data.Email,
		Password:     data.PasswordHash,
	}
}
