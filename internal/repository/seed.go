package repository

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ospreyai/osprey/internal/domain"
)

//go:embed seed.yaml
var defaultSeed []byte

// Seed is the startup data set for all repositories.
type Seed struct {
	Users        []UserSeed     `yaml:"users"`
	Agents       []AgentSeed    `yaml:"agents"`
	Workflows    []WorkflowSeed `yaml:"workflows"`
	Activities   []ActivitySeed `yaml:"activities"`
	SystemHealth HealthSeed     `yaml:"system_health"`
}

// UserSeed describes an account. Exactly one of Password or PasswordHash is set.
type UserSeed struct {
	Username     string `yaml:"username"`
	Password     string `yaml:"password"`
	PasswordHash string `yaml:"password_hash"`
	Role         string `yaml:"role"`
	Name         string `yaml:"name"`
	Email        string `yaml:"email"`
}

// AgentSeed describes an agent record.
type AgentSeed struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Type        string   `yaml:"type"`
	Description string   `yaml:"description"`
	Status      string   `yaml:"status"`
	Model       string   `yaml:"model"`
	Tools       []string `yaml:"tools"`
	Metrics     struct {
		Requests        int64   `yaml:"requests"`
		SuccessRate     float64 `yaml:"success_rate"`
		AvgResponseTime float64 `yaml:"avg_response_time"`
	} `yaml:"metrics"`
}

// WorkflowSeed describes a workflow. LastRunAgo is a Go duration relative
// to startup; empty means the workflow never ran.
type WorkflowSeed struct {
	ID          string  `yaml:"id"`
	Name        string  `yaml:"name"`
	Trigger     string  `yaml:"trigger"`
	Status      string  `yaml:"status"`
	LastRunAgo  string  `yaml:"last_run_ago"`
	SuccessRate float64 `yaml:"success_rate"`
	Steps       int     `yaml:"steps"`
}

// ActivitySeed describes a feed entry that happened Ago before the read.
type ActivitySeed struct {
	Agent  string `yaml:"agent"`
	Action string `yaml:"action"`
	Status string `yaml:"status"`
	Ago    string `yaml:"ago"`
}

// HealthSeed is the static resource utilization snapshot.
type HealthSeed struct {
	CPU     int `yaml:"cpu"`
	Memory  int `yaml:"memory"`
	Storage int `yaml:"storage"`
	Network int `yaml:"network"`
}

// LoadSeed reads the seed at path, or the embedded default when path is empty.
func LoadSeed(path string) (*Seed, error) {
	if path == "" {
		return ParseSeed(defaultSeed)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return ParseSeed(data)
}

// DefaultSeed returns the embedded seed.
func DefaultSeed() *Seed {
	seed, err := ParseSeed(defaultSeed)
	if err != nil {
		panic(fmt.Sprintf("embedded seed is invalid: %v", err))
	}
	return seed
}

// ParseSeed decodes and validates a YAML seed document.
func ParseSeed(data []byte) (*Seed, error) {
	var seed Seed
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("decode seed: %w", err)
	}
	if err := seed.validate(); err != nil {
		return nil, err
	}
	return &seed, nil
}

func (s *Seed) validate() error {
	users := make(map[string]struct{}, len(s.Users))
	for i, u := range s.Users {
		key := normalizeUsername(u.Username)
		if key == "" {
			return fmt.Errorf("%w: user %d has no username", domain.ErrValidation, i)
		}
		if _, dup := users[key]; dup {
			return fmt.Errorf("%w: duplicate username %q", domain.ErrValidation, u.Username)
		}
		users[key] = struct{}{}

		if (u.Password == "") == (u.PasswordHash == "") {
			return fmt.Errorf("%w: user %q needs exactly one of password or password_hash", domain.ErrValidation, u.Username)
		}
		if !domain.Role(u.Role).IsValid() {
			return fmt.Errorf("%w: user %q has invalid role %q", domain.ErrValidation, u.Username, u.Role)
		}
	}

	agents := make(map[string]struct{}, len(s.Agents))
	for i, a := range s.Agents {
		if a.ID == "" {
			return fmt.Errorf("%w: agent %d has no id", domain.ErrValidation, i)
		}
		if _, dup := agents[a.ID]; dup {
			return fmt.Errorf("%w: duplicate agent id %q", domain.ErrValidation, a.ID)
		}
		agents[a.ID] = struct{}{}
	}

	workflows := make(map[string]struct{}, len(s.Workflows))
	for i, w := range s.Workflows {
		if w.ID == "" {
			return fmt.Errorf("%w: workflow %d has no id", domain.ErrValidation, i)
		}
		if _, dup := workflows[w.ID]; dup {
			return fmt.Errorf("%w: duplicate workflow id %q", domain.ErrValidation, w.ID)
		}
		workflows[w.ID] = struct{}{}
		if w.LastRunAgo != "" {
			if _, err := time.ParseDuration(w.LastRunAgo); err != nil {
				return fmt.Errorf("%w: workflow %q last_run_ago: %v", domain.ErrValidation, w.ID, err)
			}
		}
	}

	for i, a := range s.Activities {
		if _, err := time.ParseDuration(a.Ago); err != nil {
			return fmt.Errorf("%w: activity %d ago: %v", domain.ErrValidation, i, err)
		}
	}

	return nil
}

// AgentRecords converts the agent seeds to domain records in seed order.
func (s *Seed) AgentRecords() []domain.Agent {
	agents := make([]domain.Agent, len(s.Agents))
	for i, a := range s.Agents {
		agents[i] = domain.Agent{
			ID:          a.ID,
			Name:        a.Name,
			Type:        a.Type,
			Description: a.Description,
			Status:      domain.AgentStatus(a.Status),
			Model:       a.Model,
			Tools:       append([]string(nil), a.Tools...),
			Metrics: domain.AgentUsage{
				Requests:        a.Metrics.Requests,
				SuccessRate:     a.Metrics.SuccessRate,
				AvgResponseTime: a.Metrics.AvgResponseTime,
			},
		}
	}
	return agents
}

// WorkflowRecords converts the workflow seeds, anchoring last runs at startedAt.
func (s *Seed) WorkflowRecords(startedAt time.Time) []domain.Workflow {
	workflows := make([]domain.Workflow, len(s.Workflows))
	for i, w := range s.Workflows {
		var lastRun *time.Time
		if w.LastRunAgo != "" {
			ago, _ := time.ParseDuration(w.LastRunAgo) // checked in validate
			t := startedAt.Add(-ago)
			lastRun = &t
		}
		workflows[i] = domain.Workflow{
			ID:          w.ID,
			Name:        w.Name,
			Trigger:     w.Trigger,
			Status:      domain.WorkflowStatus(w.Status),
			LastRun:     lastRun,
			SuccessRate: w.SuccessRate,
			Steps:       w.Steps,
		}
	}
	return workflows
}

// Health returns the system health snapshot.
func (s *Seed) Health() domain.SystemHealth {
	return domain.SystemHealth{
		CPU:     s.SystemHealth.CPU,
		Memory:  s.SystemHealth.Memory,
		Storage: s.SystemHealth.Storage,
		Network: s.SystemHealth.Network,
	}
}

func normalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}
