package main

import (
	"fmt"
	"time"

	"github.com/ospreyai/osprey/internal/chat"
	"github.com/ospreyai/osprey/internal/config"
	"github.com/ospreyai/osprey/internal/handler"
	"github.com/ospreyai/osprey/internal/metrics"
	"github.com/ospreyai/osprey/internal/repository"
	"github.com/ospreyai/osprey/internal/service"
	"github.com/ospreyai/osprey/internal/session"
)

// app is the wired object graph of a running server.
type app struct {
	handler  *handler.Handler
	sessions *session.Manager
}

// newApp builds repositories from seed and wires them into the handlers.
// startedAt anchors the seeded workflow run times.
func newApp(cfg config.Config, seed *repository.Seed, startedAt time.Time) (*app, error) {
	credentials, err := repository.NewCredentialRepository(seed.Users, cfg.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("build credential store: %w", err)
	}

	agents := repository.NewAgentRepository(seed.AgentRecords())
	workflows := repository.NewWorkflowRepository(seed.WorkflowRecords(startedAt))

	sessions := session.NewManager(session.NewMemoryStore(), cfg.SessionTTL)

	h := handler.New(handler.Deps{
		Auth:          service.NewAuthService(credentials, sessions),
		Credentials:   credentials,
		Agents:        agents,
		Workflows:     workflows,
		Activity:      repository.NewActivityRepository(seed.Activities),
		Overview:      repository.NewMetricsRepository(agents, seed.Health()),
		Chat:          chat.NewKeywordResponder(agents, workflows),
		Telemetry:     metrics.New(sessions.Active),
		SecureCookies: cfg.SecureCookies,
		StaticDir:     cfg.StaticDir,
	})

	return &app{
		handler:  h,
		sessions: sessions,
	}, nil
}
