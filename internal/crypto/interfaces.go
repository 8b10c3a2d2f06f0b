// Package crypto holds credential hashing for stored passwords.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns plaintext passwords into one-way salted hashes and
// verifies candidates against them.
type PasswordHasher interface {
	// Hash returns a salted hash of plain. Two calls with the same input
	// produce different hashes.
	Hash(plain string) (string, error)

	// Verify reports whether plain matches hash. A malformed hash never
	// matches.
	Verify(plain, hash string) bool
}
