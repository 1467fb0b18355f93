package model

import "time"

// BookModel mirrors the 'books' table. SellerID references sellers.id.
type BookModel struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"`
	Title      string `gorm:"type:varchar(100);not null"`
	Author     string `gorm:"type:varchar(100);not null"`
	Year       int    `gorm:"not null"`
	CountPages int    `gorm:"not null;default:0"`
	SellerID   int64  `gorm:"not null;index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (BookModel) TableName() string {
	return "books"
}
