package repository

import (
	"github.com/ospreyai/osprey/internal/domain"
)

// AgentRepository serves the agent catalog. It is immutable after construction.
type AgentRepository struct {
	agents []domain.Agent
	byID   map[string]int
}

// NewAgentRepository creates a new AgentRepository holding copies of agents.
func NewAgentRepository(agents []domain.Agent) *AgentRepository {
	r := &AgentRepository{
		agents: make([]domain.Agent, len(agents)),
		byID:   make(map[string]int, len(agents)),
	}
	for i, a := range agents {
		r.agents[i] = a.Clone()
		r.byID[a.ID] = i
	}
	return r
}

// List returns all agents in insertion order.
func (r *AgentRepository) List() []domain.Agent {
	agents := make([]domain.Agent, len(r.agents))
	for i, a := range r.agents {
		agents[i] = a.Clone()
	}
	return agents
}

// GetByID retrieves an agent by ID.
func (r *AgentRepository) GetByID(id string) (*domain.Agent, error) {
	i, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrAgentNotFound
	}
	agent := r.agents[i].Clone()
	return &agent, nil
}

// CountByStatus returns how many agents are in status.
func (r *AgentRepository) CountByStatus(status domain.AgentStatus) int {
	n := 0
	for _, a := range r.agents {
		if a.Status == status {
			n++
		}
	}
	return n
}
