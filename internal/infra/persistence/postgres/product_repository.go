package postgres

import (
	"context"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// productRepository implements the domain.ProductRepository interface using GORM.
// Catalog reads are routed to read replicas when any are configured.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// Create persists a new product listing.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrSellerNotFound.WrapMessage("seller email does not reference a seller")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required product information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.ProductID = productM.ProductID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// FindByID retrieves a single product by primary key.
func (repo *productRepository) FindByID(ctx context.Context, id int64) (*entity.Product, error) {
	var productM model.ProductModel
	if err := repo.db.WithContext(ctx).First(&productM, "product_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return toProductDomain(&productM), nil
}

// Update performs a full-field overwrite of an existing product.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("product_id = ?", product.ProductID).
		Updates(map[string]any{
			"name":        productM.Name,
			"description": productM.Description,
			"category":    productM.Category,
			"price":       productM.Price,
			"discount":    productM.Discount,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// Delete removes a product by primary key.
func (repo *productRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Delete(&model.ProductModel{}, "product_id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// ListAll returns every product in the catalog.
func (repo *productRepository) ListAll(ctx context.Context) ([]*entity.Product, error) {
	var productMs []model.ProductModel
	if err := repo.readDB(ctx).Find(&productMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return toProductDomains(productMs), nil
}

// ListByCategory returns products whose category matches exactly.
func (repo *productRepository) ListByCategory(ctx context.Context, category string) ([]*entity.Product, error) {
	var productMs []model.ProductModel
	if err := repo.readDB(ctx).Where("category = ?", category).Find(&productMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products by category")
	}

	return toProductDomains(productMs), nil
}

// SearchByName returns products whose name contains the substring, case-insensitively.
func (repo *productRepository) SearchByName(ctx context.Context, name string) ([]*entity.Product, error) {
	var productMs []model.ProductModel
	if err := repo.readDB(ctx).Where("name ILIKE ?", "%"+name+"%").Find(&productMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to search products by name")
	}

	return toProductDomains(productMs), nil
}

// ListCategories returns the distinct category strings in ascending order.
func (repo *productRepository) ListCategories(ctx context.Context) ([]string, error) {
	var categories []string
	if err := repo.readDB(ctx).
		Model(&model.ProductModel{}).
		Distinct("category").
		Order("category asc").
		Pluck("category", &categories).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

// ListBySellerEmail returns the products owned by the given seller email.
func (repo *productRepository) ListBySellerEmail(ctx context.Context, email string) ([]*entity.Product, error) {
	var productMs []model.ProductModel
	if err := repo.readDB(ctx).Where("seller_email = ?", email).Find(&productMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products by seller")
	}

	return toProductDomains(productMs), nil
}

// readDB routes catalog reads to a replica when the resolver has one configured.
func (repo *productRepository) readDB(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).Clauses(dbresolver.Read)
}

// --- Mapper Functions ---

// toProductDomain converts a GORM ProductModel to a domain Product entity.
func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		ProductID:   data.ProductID,
		Name:        data.Name,
		Description: data.Description,
		Category:    data.Category,
		Price:       data.Price,
		Discount:    data.Discount,
		SellerEmail: data.SellerEmail,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func toProductDomains(data []model.ProductModel) []*entity.Product {
	products := make([]*entity.Product, 0, len(data))
	for i := range data {
		products = append(products, toProductDomain(&data[i]))
	}

	return products
}

// fromProductDomain converts a domain Product entity to a GORM ProductModel for persistence.
func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	return &model.ProductModel{
		ProductID:   data.ProductID,
		Name:        data.Name,
		Description: data.Description,
		Category:    data.Category,
		Price:       data.Price,
		Discount:    data.Discount,
		SellerEmail: data.SellerEmail,
	}
}
