// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// Seller is an account that owns book listings and authenticates by email.
type Seller struct {
	ID             int64     // Server-generated identifier, immutable.
	FirstName      string    // Given name, at most 50 characters.
	LastName       string    // Family name, at most 50 characters.
	Email          string    // Unique login identifier.
	HashedPassword string    // bcrypt digest; never serialized.
	Books          []*Book   // Owned books. Only populated by detail lookups.
	CreatedAt      time.Time // Timestamp of when this seller was registered.
	UpdatedAt      time.Time // Timestamp of the last profile modification.
}

// SellerProfile is the mutable part of a seller.
type SellerProfile struct {
	FirstName string
	LastName  string
	Email     string
}

// Apply copies the profile onto the seller.
func (s *Seller) Apply(p SellerProfile) {
	s.FirstName = p.FirstName
	s.LastName = p.LastName
	s.Email = p.Email
}
