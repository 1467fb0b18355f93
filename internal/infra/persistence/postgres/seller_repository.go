// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/repository"
	"catalog/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// sellerRepository implements the repository.SellerRepository interface using GORM.
type sellerRepository struct {
	db *gorm.DB
}

// NewSellerRepository is the constructor for sellerRepository.
// It returns the repository as a repository.SellerRepository interface, adhering to dependency inversion.
func NewSellerRepository(db *gorm.DB) repository.SellerRepository {
	return &sellerRepository{db: db}
}

// Create inserts the seller and copies the generated ID and timestamps back.
func (repo *sellerRepository) Create(ctx context.Context, seller *entity.Seller) error {
	sellerM := fromSellerDomain(seller)

	if err := repo.db.WithContext(ctx).Omit("Books").Create(sellerM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrSellerEmailExists
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create seller")
	}

	seller.ID = sellerM.ID
	seller.CreatedAt = sellerM.CreatedAt
	seller.UpdatedAt = sellerM.UpdatedAt

	return nil
}

// FindByID retrieves a single seller by ID without loading books.
func (repo *sellerRepository) FindByID(ctx context.Context, id int64) (*entity.Seller, error) {
	var sellerM model.SellerModel

	if err := repo.db.WithContext(ctx).First(&sellerM, id).Error; err != nil {
		return nil, translateSellerLookupError(err, "failed to find seller by id")
	}

	return toSellerDomain(&sellerM), nil
}

// FindByIDWithBooks retrieves a seller and preloads its books ordered by ID.
func (repo *sellerRepository) FindByIDWithBooks(ctx context.Context, id int64) (*entity.Seller, error) {
	var sellerM model.SellerModel

	err := repo.db.WithContext(ctx).
		Preload("Books", func(db *gorm.DB) *gorm.DB {
			return db.Order("books.id")
		}).
		First(&sellerM, id).Error
	if err != nil {
		return nil, translateSellerLookupError(err, "failed to find seller with books")
	}

	seller := toSellerDomain(&sellerM)
	if seller.Books == nil {
		seller.Books = []*entity.Book{}
	}

	return seller, nil
}

// FindByEmail retrieves a single seller by login email.
func (repo *sellerRepository) FindByEmail(ctx context.Context, email string) (*entity.Seller, error) {
	var sellerM model.SellerModel

	if err := repo.db.WithContext(ctx).Where("email = ?", email).First(&sellerM).Error; err != nil {
		return nil, translateSellerLookupError(err, "failed to find seller by email")
	}

	return toSellerDomain(&sellerM), nil
}

// List returns every seller ordered by ID.
func (repo *sellerRepository) List(ctx context.Context) ([]*entity.Seller, error) {
	var sellerMs []model.SellerModel

	if err := repo.db.WithContext(ctx).Order("id").Find(&sellerMs).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list sellers")
	}

	sellers := make([]*entity.Seller, 0, len(sellerMs))
	for i := range sellerMs {
		sellers = append(sellers, toSellerDomain(&sellerMs[i]))
	}

	return sellers, nil
}

// Update writes first name, last name and email only.
func (repo *sellerRepository) Update(ctx context.Context, seller *entity.Seller) error {
	seller.UpdatedAt = time.Now()
	sellerM := fromSellerDomain(seller)

	result := repo.db.WithContext(ctx).
		Model(&model.SellerModel{}).
		Where("id = ?", seller.ID).
		Select("first_name", "last_name", "email", "updated_at").
		Updates(sellerM)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrSellerEmailExists
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update seller")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSellerNotFound
	}

	return nil
}

// Delete removes the seller row. Books must be removed first or by the ON DELETE CASCADE constraint.
func (repo *sellerRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Delete(&model.SellerModel{}, id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete seller")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSellerNotFound
	}

	return nil
}

func translateSellerLookupError(err error, details string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return repository.ErrSellerNotFound
	}

	return domainerrors.NewDatabaseExecuteError(err, details)
}
