package domain

import "time"

// WorkflowStatus is the state shown for a workflow.
type WorkflowStatus string

const (
	WorkflowStatusActive  WorkflowStatus = "active"
	WorkflowStatusRunning WorkflowStatus = "running"
	WorkflowStatusPaused  WorkflowStatus = "paused"
)

// Workflow represents an automated workflow definition.
type Workflow struct {
	ID          string
	Name        string
	Trigger     string
	Status      WorkflowStatus
	LastRun     *time.Time // nil if never run
	SuccessRate float64    // percent
	Steps       int
}
