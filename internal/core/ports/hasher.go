package ports

// PasswordHasher abstracts the salted one-way password transform.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Verify reports whether plaintext matches the stored hash. A malformed
	// hash verifies false; it never authenticates.
	Verify(password, hash string) bool
}
