package domain

// AgentStatus is the lifecycle state shown for an agent.
type AgentStatus string

const (
	AgentStatusActive   AgentStatus = "active"
	AgentStatusTraining AgentStatus = "training"
	AgentStatusInactive AgentStatus = "inactive"
)

// AgentUsage holds the usage counters reported for an agent.
type AgentUsage struct {
	Requests        int64
	SuccessRate     float64 // percent
	AvgResponseTime float64 // milliseconds
}

// Agent represents an AI agent listed on the platform.
type Agent struct {
	ID          string
	Name        string
	Type        string
	Description string
	Status      AgentStatus
	Model       string
	Tools       []string
	Metrics     AgentUsage
}

// Clone returns a copy that shares no slices with a.
func (a Agent) Clone() Agent {
	if a.Tools != nil {
		a.Tools = append([]string(nil), a.Tools...)
	}
	return a
}
