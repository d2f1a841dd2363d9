package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ospreyai/osprey/internal/domain"
	"github.com/ospreyai/osprey/internal/service"
)

func TestCheckAuthenticated(t *testing.T) {
	assert.ErrorIs(t, service.CheckAuthenticated(nil), domain.ErrNotAuthenticated)
	assert.NoError(t, service.CheckAuthenticated(&domain.Identity{Username: "demo", Role: domain.RoleUser}))
}

func TestCheckAdmin(t *testing.T) {
	user := &domain.Identity{Username: "demo", Role: domain.RoleUser}
	admin := &domain.Identity{Username: "admin", Role: domain.RoleAdmin}

	assert.NoError(t, service.CheckAdmin(admin))

	// Missing identity and missing privilege are distinct outcomes.
	errAnon := service.CheckAdmin(nil)
	errUser := service.CheckAdmin(user)
	assert.ErrorIs(t, errAnon, domain.ErrNotAuthenticated)
	assert.ErrorIs(t, errUser, domain.ErrForbidden)
	assert.NotErrorIs(t, errUser, domain.ErrNotAuthenticated)
}
