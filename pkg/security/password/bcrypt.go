// Package password provides one-way password hashing and verification.
package password

import "golang.org/x/crypto/bcrypt"

// Hasher produces and verifies bcrypt digests.
type Hasher struct {
	cost int
}

// NewHasher returns a Hasher with the given bcrypt cost.
// Out-of-range costs are clamped to the valid bcrypt range.
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}
	if cost > bcrypt.MaxCost {
		cost = bcrypt.MaxCost
	}
	return &Hasher{cost: cost}
}

// Hash creates a salted bcrypt digest from a plaintext password.
func (h *Hasher) Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify reports whether plaintext matches digest. A malformed digest
// yields false; Verify never returns an error.
func (h *Hasher) Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
