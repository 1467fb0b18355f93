package postgres

import (
	"context"
	"testing"

	"catalog/internal/domain/entity"
	"catalog/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookRepository_CreateAndFind(t *testing.T) {
	db := newTestDB(t)
	repo := NewBookRepository(db)
	ctx := context.Background()

	seller := seedSeller(t, db, "ada@example.com")
	book := seedBook(t, db, seller.ID, "Dune")
	assert.NotZero(t, book.ID)

	found, err := repo.FindByID(ctx, book.ID)
	require.NoError(t, err)
	assert.Equal(t, "Dune", found.Title)
	assert.Equal(t, 1965, found.Year)
	assert.Equal(t, 412, found.CountPages)
	assert.Equal(t, seller.ID, found.SellerID)

	_, err = repo.FindByID(ctx, book.ID+100)
	assert.True(t, errors.Is(err, repository.ErrBookNotFound))
}

func TestBookRepository_CreateRequiresExistingSeller(t *testing.T) {
	db := newTestDB(t)

	book := &entity.Book{Title: "Orphan", Author: "Nobody", Year: 2000, SellerID: 999}
	err := NewBookRepository(db).Create(context.Background(), book)
	assert.True(t, errors.Is(err, repository.ErrBookSellerMissing))
}

func TestBookRepository_ListAndListBySeller(t *testing.T) {
	db := newTestDB(t)
	repo := NewBookRepository(db)
	ctx := context.Background()

	ada := seedSeller(t, db, "ada@example.com")
	grace := seedSeller(t, db, "grace@example.com")
	seedBook(t, db, ada.ID, "Dune")
	seedBook(t, db, grace.ID, "Neuromancer")
	seedBook(t, db, ada.ID, "Hyperion")

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	adas, err := repo.ListBySellerID(ctx, ada.ID)
	require.NoError(t, err)
	require.Len(t, adas, 2)
	assert.Equal(t, "Dune", adas[0].Title)
	assert.Equal(t, "Hyperion", adas[1].Title)
}

func TestBookRepository_UpdateKeepsOwner(t *testing.T) {
	db := newTestDB(t)
	repo := NewBookRepository(db)
	ctx := context.Background()

	ada := seedSeller(t, db, "ada@example.com")
	grace := seedSeller(t, db, "grace@example.com")
	book := seedBook(t, db, ada.ID, "Dune")

	book.Apply(entity.BookDetails{Title: "Dune Messiah", Author: "Frank Herbert", Year: 1969, CountPages: 256})
	book.SellerID = grace.ID
	require.NoError(t, repo.Update(ctx, book))

	found, err := repo.FindByID(ctx, book.ID)
	require.NoError(t, err)
	assert.Equal(t, "Dune Messiah", found.Title)
	assert.Equal(t, 1969, found.Year)
	assert.Equal(t, 256, found.CountPages)
	assert.Equal(t, ada.ID, found.SellerID)

	missing := &entity.Book{ID: book.ID + 100, Title: "x", Author: "y", Year: 2000}
	assert.True(t, errors.Is(repo.Update(ctx, missing), repository.ErrBookNotFound))
}

func TestBookRepository_Delete(t *testing.T) {
	db := newTestDB(t)
	repo := NewBookRepository(db)
	ctx := context.Background()

	seller := seedSeller(t, db, "ada@example.com")
	book := seedBook(t, db, seller.ID, "Dune")

	require.NoError(t, repo.Delete(ctx, book.ID))
	assert.True(t, errors.Is(repo.Delete(ctx, book.ID), repository.ErrBookNotFound))
}

func TestBookRepository_DeleteBySellerID(t *testing.T) {
	db := newTestDB(t)
	repo := NewBookRepository(db)
	ctx := context.Background()

	ada := seedSeller(t, db, "ada@example.com")
	grace := seedSeller(t, db, "grace@example.com")
	for _, title := range []string{"A", "B", "C"} {
		seedBook(t, db, ada.ID, title)
	}
	seedBook(t, db, grace.ID, "Kept")

	removed, err := repo.DeleteBySellerID(ctx, ada.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), removed)

	rest, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, rest, 1)
	assert.Equal(t, "Kept", rest[0].Title)
}
