package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ospreyai/osprey/internal/domain"
	"github.com/ospreyai/osprey/internal/session"
)

func TestRunSweeper_PurgesUntilCancelled(t *testing.T) {
	store := session.NewMemoryStore()
	m := session.NewManager(store, time.Millisecond)

	_, err := m.Create(domain.Identity{Username: "demo", Role: domain.RoleUser})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		session.RunSweeper(ctx, m, 5*time.Millisecond)
		close(done)
	}()

	assert.Eventually(t, func() bool { return store.Len() == 0 }, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop after cancel")
	}
}

func TestRunSweeper_DisabledInterval(t *testing.T) {
	m := session.NewManager(session.NewMemoryStore(), time.Hour)

	done := make(chan struct{})
	go func() {
		session.RunSweeper(context.Background(), m, 0)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sweeper with zero interval should return immediately")
	}
}
