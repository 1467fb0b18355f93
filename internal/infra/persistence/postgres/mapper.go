package postgres

import (
	"catalog/internal/domain/entity"
	"catalog/internal/infra/persistence/model"
)

func toSellerDomain(m *model.SellerModel) *entity.Seller {
	if m == nil {
		return nil
	}

	seller := &entity.Seller{
		ID:             m.ID,
		FirstName:      m.FirstName,
		LastName:       m.LastName,
		Email:          m.Email,
		HashedPassword: m.HashedPassword,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}

	if m.Books != nil {
		seller.Books = make([]*entity.Book, 0, len(m.Books))
		for i := range m.Books {
			seller.Books = append(seller.Books, toBookDomain(&m.Books[i]))
		}
	}

	return seller
}

func fromSellerDomain(s *entity.Seller) *model.SellerModel {
	return &model.SellerModel{
		ID:             s.ID,
		FirstName:      s.FirstName,
		LastName:       s.LastName,
		Email:          s.Email,
		HashedPassword: s.HashedPassword,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}

func toBookDomain(m *model.BookModel) *entity.Book {
	if m == nil {
		return nil
	}

	return &entity.Book{
		ID:         m.ID,
		Title:      m.Title,
		Author:     m.Author,
		Year:       m.Year,
		CountPages: m.CountPages,
		SellerID:   m.SellerID,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func fromBookDomain(b *entity.Book) *model.BookModel {
	return &model.BookModel{
		ID:         b.ID,
		Title:      b.Title,
		Author:     b.Author,
		Year:       b.Year,
		CountPages: b.CountPages,
		SellerID:   b.SellerID,
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
}

func toBookDomainList(models []model.BookModel) []*entity.Book {
	books := make([]*entity.Book, 0, len(models))
	for i := range models {
		books = append(books, toBookDomain(&models[i]))
	}

	return books
}
