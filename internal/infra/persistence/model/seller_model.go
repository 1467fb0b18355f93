package model

import "time"

// SellerModel mirrors the 'sellers' table.
type SellerModel struct {
	ID             int64  `gorm:"primaryKey;autoIncrement"`
	FirstName      string `gorm:"type:varchar(50);not null"`
	LastName       string `gorm:"type:varchar(50);not null"`
	Email          string `gorm:"type:varchar(100);not null;uniqueIndex:idx_sellers_email"`
	HashedPassword string `gorm:"type:varchar(128);not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Books []BookModel `gorm:"foreignKey:SellerID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (SellerModel) TableName() string {
	return "sellers"
}
