package service

import "github.com/ospreyai/osprey/internal/domain"

// CheckAuthenticated passes when identity is present.
func CheckAuthenticated(identity *domain.Identity) error {
	if identity == nil {
		return domain.ErrNotAuthenticated
	}
	return nil
}

// CheckAdmin passes when identity is present and holds the admin role.
// A missing identity yields domain.ErrNotAuthenticated, a non-admin one
// domain.ErrForbidden.
func CheckAdmin(identity *domain.Identity) error {
	if err := CheckAuthenticated(identity); err != nil {
		return err
	}
	if !identity.IsAdmin() {
		return domain.ErrForbidden
	}
	return nil
}
