// Package model holds the GORM persistence models.
package model

// All lists every model in dependency order for migrations.
func All() []any {
	return []any{
		&SellerModel{},
		&BookModel{},
	}
}
