// Package service declares the stateless capabilities the usecases depend on.
package service

// PasswordHasher turns seller passwords into salted one-way digests.
type PasswordHasher interface {
	// Hash returns a new digest; two calls with the same password yield different digests.
	Hash(password string) (string, error)

	// Check reports whether password matches digest. A malformed digest never matches.
	Check(password, digest string) bool
}
