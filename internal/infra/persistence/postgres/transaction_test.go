package postgres

import (
	"context"
	"testing"

	"catalog/internal/domain/repository"
	"catalog/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionManager_DeleteSellerWithBooks(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	seller := seedSeller(t, db, "ada@example.com")
	for _, title := range []string{"A", "B", "C", "D"} {
		seedBook(t, db, seller.ID, title)
	}

	tm := NewTransactionManager(db)
	err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		if _, err := f.NewBookRepository().DeleteBySellerID(ctx, seller.ID); err != nil {
			return err
		}

		return f.NewSellerRepository().Delete(ctx, seller.ID)
	})
	require.NoError(t, err)

	var books int64
	require.NoError(t, db.Model(&model.BookModel{}).Where("seller_id = ?", seller.ID).Count(&books).Error)
	assert.Zero(t, books)
}

func TestTransactionManager_RollbackOnError(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	seller := seedSeller(t, db, "ada@example.com")
	seedBook(t, db, seller.ID, "Dune")

	boom := errors.New("boom")
	err := NewTransactionManager(db).Execute(ctx, func(f repository.RepositoryFactory) error {
		if _, err := f.NewBookRepository().DeleteBySellerID(ctx, seller.ID); err != nil {
			return err
		}

		return boom
	})
	assert.True(t, errors.Is(err, boom))

	books, err := NewBookRepository(db).ListBySellerID(ctx, seller.ID)
	require.NoError(t, err)
	assert.Len(t, books, 1)
}

func TestTransactionManager_RollbackOnPanic(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	seller := seedSeller(t, db, "ada@example.com")

	assert.Panics(t, func() {
		_ = NewTransactionManager(db).Execute(ctx, func(f repository.RepositoryFactory) error {
			if err := f.NewSellerRepository().Delete(ctx, seller.ID); err != nil {
				return err
			}
			panic("handler bug")
		})
	})

	_, err := NewSellerRepository(db).FindByID(ctx, seller.ID)
	assert.NoError(t, err)
}

func TestSellerDeleteCascadesAtSchemaLevel(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	seller := seedSeller(t, db, "ada@example.com")
	seedBook(t, db, seller.ID, "Dune")
	seedBook(t, db, seller.ID, "Hyperion")

	require.NoError(t, NewSellerRepository(db).Delete(ctx, seller.ID))

	books, err := NewBookRepository(db).ListBySellerID(ctx, seller.ID)
	require.NoError(t, err)
	assert.Empty(t, books)
}
