package hasher

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Hasher hashes and verifies passwords with bcrypt at a fixed cost.
type Hasher struct {
	cost int
}

// New returns a Hasher using cost, falling back to bcrypt.DefaultCost when
// cost is outside the range bcrypt accepts.
func New(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash returns the bcrypt digest of password.
func (h *Hasher) Hash(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(digest), nil
}

// Verify reports whether password matches digest. A malformed digest is a
// mismatch.
func (h *Hasher) Verify(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}

// NeedsRehash reports whether digest was produced with a different cost.
func (h *Hasher) NeedsRehash(digest string) bool {
	cost, err := bcrypt.Cost([]byte(digest))
	if err != nil {
		return true
	}
	return cost != h.cost
}
