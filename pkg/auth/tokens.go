package auth

// TokenIssuer abstracts token creation (e.g., JWT).
// It allows use cases to stay framework-agnostic.
type TokenIssuer interface {
	Issue(subject string, admin bool) (string, error)
}

// PasswordHasher abstracts the one-way password digest.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, digest string) bool
}
