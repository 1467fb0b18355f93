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

// bookRepository implements the repository.BookRepository interface using GORM.
type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository is the constructor for bookRepository.
func NewBookRepository(db *gorm.DB) repository.BookRepository {
	return &bookRepository{db: db}
}

// Create inserts the book and copies the generated ID and timestamps back.
func (repo *bookRepository) Create(ctx context.Context, book *entity.Book) error {
	bookM := fromBookDomain(book)

	if err := repo.db.WithContext(ctx).Create(bookM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrBookSellerMissing
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create book")
	}

	book.ID = bookM.ID
	book.CreatedAt = bookM.CreatedAt
	book.UpdatedAt = bookM.UpdatedAt

	return nil
}

func (repo *bookRepository) FindByID(ctx context.Context, id int64) (*entity.Book, error) {
	var bookM model.BookModel

	if err := repo.db.WithContext(ctx).First(&bookM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBookNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find book by id")
	}

	return toBookDomain(&bookM), nil
}

func (repo *bookRepository) List(ctx context.Context) ([]*entity.Book, error) {
	var bookMs []model.BookModel

	if err := repo.db.WithContext(ctx).Order("id").Find(&bookMs).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list books")
	}

	return toBookDomainList(bookMs), nil
}

func (repo *bookRepository) ListBySellerID(ctx context.Context, sellerID int64) ([]*entity.Book, error) {
	var bookMs []model.BookModel

	if err := repo.db.WithContext(ctx).Where("seller_id = ?", sellerID).Order("id").Find(&bookMs).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list books by seller")
	}

	return toBookDomainList(bookMs), nil
}

// Update replaces the editable fields. seller_id is never rewritten.
func (repo *bookRepository) Update(ctx context.Context, book *entity.Book) error {
	book.UpdatedAt = time.Now()
	bookM := fromBookDomain(book)

	result := repo.db.WithContext(ctx).
		Model(&model.BookModel{}).
		Where("id = ?", book.ID).
		Select("title", "author", "year", "count_pages", "updated_at").
		Updates(bookM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update book")
	}

	if result.RowsAffected == 0 {
		return repository.ErrBookNotFound
	}

	return nil
}

func (repo *bookRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Delete(&model.BookModel{}, id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete book")
	}

	if result.RowsAffected == 0 {
		return repository.ErrBookNotFound
	}

	return nil
}

func (repo *bookRepository) DeleteBySellerID(ctx context.Context, sellerID int64) (int64, error) {
	result := repo.db.WithContext(ctx).Where("seller_id = ?", sellerID).Delete(&model.BookModel{})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete books by seller")
	}

	return result.RowsAffected, nil
}
