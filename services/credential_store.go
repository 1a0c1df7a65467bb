package services

import (
	"strings"

	"github.com/yeremiapane/hotel-brand-api/models"
	"github.com/yeremiapane/hotel-brand-api/utils"
	"golang.org/x/crypto/bcrypt"
)

// CredentialStore owns password hashing. It is the only place a User's
// Password field is written.
type CredentialStore struct {
	cost int
}

func NewCredentialStore(cost int) *CredentialStore {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &CredentialStore{cost: cost}
}

func (cs *CredentialStore) Hash(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), cs.cost)
	if err != nil {
		return "", utils.NewInternal("failed to hash password", err)
	}
	return string(hash), nil
}

// Verify compares plain with hash using bcrypt's own constant-time check.
func (cs *CredentialStore) Verify(plain, hash string) bool {
	if hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// SetPassword stores a fresh hash of plain on u. An empty plain, or one that
// already matches the stored hash, leaves the hash untouched; the return
// value reports whether it changed.
func (cs *CredentialStore) SetPassword(u *models.User, plain string) (bool, error) {
	if plain == "" {
		return false, nil
	}
	if u.Password != "" && cs.Verify(plain, u.Password) {
		return false, nil
	}
	hash, err := cs.Hash(plain)
	if err != nil {
		return false, err
	}
	u.Password = hash
	return true, nil
}

// NormalizeEmail trims and lower-cases an address the way it is stored.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
