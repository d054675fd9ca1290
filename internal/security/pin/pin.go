// Package pin validates and hashes the short shared secrets that gate record mutations.
//
// A PIN is exactly four ASCII digits. Only bcrypt hashes are persisted; the raw value
// lives no longer than the request that carries it.
package pin

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

const Length = 4

var (
	ErrInvalidFormat = errors.New("pin must be exactly 4 digits")
	ErrMismatch      = errors.New("pin does not match")
	ErrNotSet        = errors.New("record has no pin set")
)

// Valid reports whether p is exactly four ASCII digits.
func Valid(p string) bool {
	if len(p) != Length {
		return false
	}
	for i := 0; i < len(p); i++ {
		if p[i] < '0' || p[i] > '9' {
			return false
		}
	}
	return true
}

// Hasher hashes and verifies PINs with bcrypt at a fixed cost.
type Hasher struct {
	cost int
}

// NewHasher clamps cost into bcrypt's accepted range.
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}
	if cost > bcrypt.MaxCost {
		cost = bcrypt.MaxCost
	}
	return &Hasher{cost: cost}
}

func (h *Hasher) Hash(p string) (string, error) {
	if !Valid(p) {
		return "", ErrInvalidFormat
	}
	b, err := bcrypt.GenerateFromPassword([]byte(p), h.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Verify checks p against a stored hash. An empty hash never verifies, whatever p is.
func (h *Hasher) Verify(hash, p string) error {
	if hash == "" {
		return ErrNotSet
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(p)); err != nil {
		return ErrMismatch
	}
	return nil
}
