package ports

// PasswordHasher turns plaintext passwords into self-describing hashes.
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Verify reports whether password matches encodedHash.
	Verify(password, encodedHash string) (bool, error)
}
