package ports

// PasswordHasher defines the credential hashing contract used when creating
// user accounts. Implemented by the bcrypt adapter.
type PasswordHasher interface {
	// Hash derives an opaque, verifiable hash from a plaintext password.
	Hash(plaintext string) (string, error)

	// Verify reports whether plaintext matches a previously produced hash.
	Verify(hash, plaintext string) error
}
