package dto

import (
	"time"

	"github.com/ospreyai/osprey/internal/domain"
)

// NeverRun is the lastRun value of a workflow that has not run.
const NeverRun = "never"

// UserInfo is the public view of an identity.
type UserInfo struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	Name     string `json:"name"`
	Email    string `json:"email"`
}

// UserResponse is returned by login and session endpoints.
type UserResponse struct {
	Success bool     `json:"success"`
	User    UserInfo `json:"user"`
}

// UsersResponse represents the response for GET /api/admin/users.
type UsersResponse struct {
	Success bool       `json:"success"`
	Users   []UserInfo `json:"users"`
}

// MessageResponse is a success envelope carrying only a message.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// HealthResponse represents the response for GET /healthz.
type HealthResponse struct {
	Success bool   `json:"success"`
	Status  string `json:"status"`
}

// AgentMetrics holds agent usage counters.
type AgentMetrics struct {
	Requests        int64   `json:"requests"`
	SuccessRate     float64 `json:"successRate"`
	AvgResponseTime float64 `json:"avgResponseTime"`
}

// Agent is the JSON view of an agent.
type Agent struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Type        string       `json:"type"`
	Description string       `json:"description"`
	Status      string       `json:"status"`
	Model       string       `json:"model"`
	Tools       []string     `json:"tools"`
	Metrics     AgentMetrics `json:"metrics"`
}

// AgentsResponse represents the response for GET /api/agents.
type AgentsResponse struct {
	Success bool    `json:"success"`
	Agents  []Agent `json:"agents"`
}

// AgentResponse represents the response for GET /api/agents/{id}.
type AgentResponse struct {
	Success bool  `json:"success"`
	Agent   Agent `json:"agent"`
}

// Workflow is the JSON view of a workflow. LastRun is RFC 3339 or "never".
type Workflow struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Trigger     string  `json:"trigger"`
	Status      string  `json:"status"`
	LastRun     string  `json:"lastRun"`
	SuccessRate float64 `json:"successRate"`
	Steps       int     `json:"steps"`
}

// WorkflowsResponse represents the response for GET /api/workflows.
type WorkflowsResponse struct {
	Success   bool       `json:"success"`
	Workflows []Workflow `json:"workflows"`
}

// SystemHealth is the resource utilization snapshot.
type SystemHealth struct {
	CPU     int `json:"cpu"`
	Memory  int `json:"memory"`
	Storage int `json:"storage"`
	Network int `json:"network"`
}

// OverviewMetrics is the JSON view of the dashboard aggregates.
type OverviewMetrics struct {
	ActiveAgents    int          `json:"activeAgents"`
	TotalRequests   int64        `json:"totalRequests"`
	SuccessRate     float64      `json:"successRate"`
	AvgResponseTime int64        `json:"avgResponseTime"`
	SystemHealth    SystemHealth `json:"systemHealth"`
}

// MetricsResponse represents the response for GET /api/metrics/overview.
type MetricsResponse struct {
	Success bool            `json:"success"`
	Metrics OverviewMetrics `json:"metrics"`
}

// Activity is a feed entry.
type Activity struct {
	Agent     string    `json:"agent"`
	Action    string    `json:"action"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// ActivitiesResponse represents the response for GET /api/activity/recent.
type ActivitiesResponse struct {
	Success    bool       `json:"success"`
	Activities []Activity `json:"activities"`
}

// ChatResponse represents the response for POST /api/chat.
type ChatResponse struct {
	Success   bool   `json:"success"`
	ID        string `json:"id"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	AgentID   string `json:"agentId"`
}

// ToUserInfo converts domain.Identity to UserInfo.
func ToUserInfo(identity domain.Identity) UserInfo {
	return UserInfo{
		Username: identity.Username,
		Role:     string(identity.Role),
		Name:     identity.Name,
		Email:    identity.Email,
	}
}

// ToAgent converts domain.Agent to Agent.
func ToAgent(agent *domain.Agent) Agent {
	tools := agent.Tools
	if tools == nil {
		tools = []string{}
	}
	return Agent{
		ID:          agent.ID,
		Name:        agent.Name,
		Type:        agent.Type,
		Description: agent.Description,
		Status:      string(agent.Status),
		Model:       agent.Model,
		Tools:       tools,
		Metrics: AgentMetrics{
			Requests:        agent.Metrics.Requests,
			SuccessRate:     agent.Metrics.SuccessRate,
			AvgResponseTime: agent.Metrics.AvgResponseTime,
		},
	}
}

// ToWorkflow converts domain.Workflow to Workflow.
func ToWorkflow(workflow *domain.Workflow) Workflow {
	lastRun := NeverRun
	if workflow.LastRun != nil {
		lastRun = workflow.LastRun.UTC().Format(time.RFC3339)
	}
	return Workflow{
		ID:          workflow.ID,
		Name:        workflow.Name,
		Trigger:     workflow.Trigger,
		Status:      string(workflow.Status),
		LastRun:     lastRun,
		SuccessRate: workflow.SuccessRate,
		Steps:       workflow.Steps,
	}
}

// ToOverviewMetrics converts domain.OverviewMetrics to OverviewMetrics.
func ToOverviewMetrics(m domain.OverviewMetrics) OverviewMetrics {
	return OverviewMetrics{
		ActiveAgents:    m.ActiveAgents,
		TotalRequests:   m.TotalRequests,
		SuccessRate:     m.SuccessRate,
		AvgResponseTime: m.AvgResponseTime,
		SystemHealth: SystemHealth{
			CPU:     m.SystemHealth.CPU,
			Memory:  m.SystemHealth.Memory,
			Storage: m.SystemHealth.Storage,
			Network: m.SystemHealth.Network,
		},
	}
}

// ToActivity converts domain.Activity to Activity.
func ToActivity(a domain.Activity) Activity {
	return Activity{
		Agent:     a.Agent,
		Action:    a.Action,
		Status:    a.Status,
		Timestamp: a.Timestamp.UTC(),
	}
}
