package repository

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/ospreyai/osprey/internal/domain"
)

// CredentialRepository is the read-only account store.
type CredentialRepository struct {
	byUsername map[string]*domain.Credential
	order      []string

	// dummyHash is compared against for unknown usernames.
	dummyHash []byte
}

// NewCredentialRepository hashes the seeded passwords at the given bcrypt cost.
// Seeds carrying a password_hash are stored as is.
func NewCredentialRepository(users []UserSeed, cost int) (*CredentialRepository, error) {
	dummy, err := bcrypt.GenerateFromPassword([]byte("osprey-unknown-user"), cost)
	if err != nil {
		return nil, fmt.Errorf("hash placeholder password: %w", err)
	}

	r := &CredentialRepository{
		byUsername: make(map[string]*domain.Credential, len(users)),
		order:      make([]string, 0, len(users)),
		dummyHash:  dummy,
	}

	for _, u := range users {
		key := normalizeUsername(u.Username)
		if key == "" {
			return nil, fmt.Errorf("%w: empty username", domain.ErrValidation)
		}
		if _, dup := r.byUsername[key]; dup {
			return nil, fmt.Errorf("%w: duplicate username %q", domain.ErrValidation, u.Username)
		}

		hash := []byte(u.PasswordHash)
		if u.PasswordHash == "" {
			hash, err = bcrypt.GenerateFromPassword([]byte(u.Password), cost)
			if err != nil {
				return nil, fmt.Errorf("hash password for %q: %w", u.Username, err)
			}
		} else if _, err := bcrypt.Cost(hash); err != nil {
			return nil, fmt.Errorf("%w: password_hash for %q: %v", domain.ErrValidation, u.Username, err)
		}

		r.byUsername[key] = &domain.Credential{
			Username:     u.Username,
			PasswordHash: hash,
			Role:         domain.Role(u.Role),
			Name:         u.Name,
			Email:        u.Email,
		}
		r.order = append(r.order, key)
	}

	return r, nil
}

// Lookup finds an account by username, ignoring case.
func (r *CredentialRepository) Lookup(username string) (*domain.Credential, error) {
	cred, ok := r.byUsername[normalizeUsername(username)]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	c := *cred
	return &c, nil
}

// Verify reports whether password matches the account's hash.
// Unknown usernames always return false.
func (r *CredentialRepository) Verify(username, password string) bool {
	cred, ok := r.byUsername[normalizeUsername(username)]
	if !ok {
		bcrypt.CompareHashAndPassword(r.dummyHash, []byte(password))
		return false
	}
	return bcrypt.CompareHashAndPassword(cred.PasswordHash, []byte(password)) == nil
}

// Authenticate verifies the pair and returns the identity snapshot.
func (r *CredentialRepository) Authenticate(username, password string) (domain.Identity, error) {
	if !r.Verify(username, password) {
		return domain.Identity{}, domain.ErrInvalidCredentials
	}
	cred, err := r.Lookup(username)
	if err != nil {
		return domain.Identity{}, domain.ErrInvalidCredentials
	}
	return cred.Identity(), nil
}

// List returns every account identity in seed order.
func (r *CredentialRepository) List() []domain.Identity {
	identities := make([]domain.Identity, len(r.order))
	for i, key := range r.order {
		identities[i] = r.byUsername[key].Identity()
	}
	return identities
}
