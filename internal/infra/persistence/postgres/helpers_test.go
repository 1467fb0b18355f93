package postgres

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"catalog/config"
	"catalog/internal/domain/entity"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		TranslateError:         true,
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)), &config.Config{}),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A single connection keeps the in-memory database shared across statements.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, Migrate(context.Background(), db))

	return db
}

func seedSeller(t *testing.T, db *gorm.DB, email string) *entity.Seller {
	t.Helper()

	seller := &entity.Seller{
		FirstName:      "Ada",
		LastName:       "Lovelace",
		Email:          email,
		HashedPassword: "$2a$10$hash",
	}
	require.NoError(t, NewSellerRepository(db).Create(context.Background(), seller))

	return seller
}

func seedBook(t *testing.T, db *gorm.DB, sellerID int64, title string) *entity.Book {
	t.Helper()

	book := &entity.Book{
		Title:      title,
		Author:     "Frank Herbert",
		Year:       1965,
		CountPages: 412,
		SellerID:   sellerID,
	}
	require.NoError(t, NewBookRepository(db).Create(context.Background(), book))

	return book
}
