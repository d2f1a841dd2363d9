package repository

import (
	"github.com/ospreyai/osprey/internal/domain"
)

// WorkflowRepository serves the workflow list. It is immutable after construction.
type WorkflowRepository struct {
	workflows []domain.Workflow
}

// NewWorkflowRepository creates a new WorkflowRepository holding copies of workflows.
func NewWorkflowRepository(workflows []domain.Workflow) *WorkflowRepository {
	return &WorkflowRepository{
		workflows: append([]domain.Workflow(nil), workflows...),
	}
}

// List returns all workflows in insertion order.
func (r *WorkflowRepository) List() []domain.Workflow {
	return append(make([]domain.Workflow, 0, len(r.workflows)), r.workflows...)
}

// CountByStatus returns how many workflows are in status.
func (r *WorkflowRepository) CountByStatus(status domain.WorkflowStatus) int {
	n := 0
	for _, w := range r.workflows {
		if w.Status == status {
			n++
		}
	}
	return n
}

// MeanSuccessRate returns the average success rate, or 0 with no workflows.
func (r *WorkflowRepository) MeanSuccessRate() float64 {
	if len(r.workflows) == 0 {
		return 0
	}
	var sum float64
	for _, w := range r.workflows {
		sum += w.SuccessRate
	}
	return sum / float64(len(r.workflows))
}
