// Package security owns password hashing and verification. It is pure and
// stateless: no I/O, no globals, safe for concurrent use. Plaintext secrets
// are never stored or logged; only the salted bcrypt hash leaves this
// package.
package security

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// maxSecretLen is bcrypt's input limit in bytes; longer secrets would be
// silently truncated by older implementations, so they are rejected here.
const maxSecretLen = 72

var (
	// ErrEmptySecret is returned when hashing an empty secret.
	ErrEmptySecret = errors.New("secret must not be empty")
	// ErrSecretTooLong is returned when the secret exceeds bcrypt's limit.
	ErrSecretTooLong = errors.New("secret exceeds 72 bytes")
)

// Hasher hashes and verifies passwords with a fixed cost factor. The cost
// is a deployment-time setting; callers never choose it per call.
type Hasher struct {
	cost int
}

// NewHasher returns a Hasher with the given bcrypt cost. Costs outside the
// algorithm's valid range fall back to bcrypt.DefaultCost.
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash derives a salted hash from secret. A fresh random salt is used on
// every call, so hashing the same secret twice yields different strings
// that both verify.
func (h *Hasher) Hash(secret string) (string, error) {
	if secret == "" {
		return "", ErrEmptySecret
	}
	if len(secret) > maxSecretLen {
		return "", ErrSecretTooLong
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(secret), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify reports whether secret matches the stored hash. It returns false
// for a mismatch and for any malformed or corrupt stored value; the two
// cases are deliberately indistinguishable. Comparison is delegated to
// bcrypt, which compares in constant time.
func (h *Hasher) Verify(secret, stored string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(secret)) == nil
}
