package handler

import (
	"net/http"

	"github.com/ospreyai/osprey/internal/handler/dto"
)

// @Summary List workflows
// @Description lastRun is RFC 3339, or "never" for workflows that have not run.
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.WorkflowsResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /workflows [get]
func (h *Handler) handleListWorkflows(w http.ResponseWriter, r *http.Request) {
	workflows := h.workflows.List()

	resp := dto.WorkflowsResponse{
		Success:   true,
		Workflows: make([]dto.Workflow, len(workflows)),
	}
	for i := range workflows {
		resp.Workflows[i] = dto.ToWorkflow(&workflows[i])
	}

	respondJSON(w, http.StatusOK, resp)
}

// handleOverviewMetrics recomputes the dashboard aggregates on every call.
// @Summary Overview metrics
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.MetricsResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /metrics/overview [get]
func (h *Handler) handleOverviewMetrics(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, dto.MetricsResponse{
		Success: true,
		Metrics: dto.ToOverviewMetrics(h.overview.Overview()),
	})
}

// @Summary Recent activity
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.ActivitiesResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /activity/recent [get]
func (h *Handler) handleRecentActivity(w http.ResponseWriter, r *http.Request) {
	activities := h.activity.Recent(h.now())

	resp := dto.ActivitiesResponse{
		Success:    true,
		Activities: make([]dto.Activity, len(activities)),
	}
	for i, a := range activities {
		resp.Activities[i] = dto.ToActivity(a)
	}

	respondJSON(w, http.StatusOK, resp)
}
