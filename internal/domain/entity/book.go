package entity

import "time"

// Book is a listing owned by exactly one seller.
type Book struct {
	ID         int64
	Title      string
	Author     string
	Year       int
	CountPages int
	SellerID   int64 // Always the authenticated creator; never taken from client input.
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// BookDetails is the client-editable part of a book. Updates replace it in full.
type BookDetails struct {
	Title      string
	Author     string
	Year       int
	CountPages int
}

// Apply copies the details onto the book.
func (b *Book) Apply(d BookDetails) {
	b.Title = d.Title
	b.Author = d.Author
	b.Year = d.Year
	b.CountPages = d.CountPages
}
