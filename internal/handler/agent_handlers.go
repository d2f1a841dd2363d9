package handler

import (
	"net/http"

	"github.com/ospreyai/osprey/internal/handler/dto"
)

// handleListAgents lists agents in catalog order.
// @Summary List agents
// @Tags agents
// @Produce json
// @Success 200 {object} dto.AgentsResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /agents [get]
func (h *Handler) handleListAgents(w http.ResponseWriter, r *http.Request) {
	agents := h.agents.List()

	resp := dto.AgentsResponse{
		Success: true,
		Agents:  make([]dto.Agent, len(agents)),
	}
	for i := range agents {
		resp.Agents[i] = dto.ToAgent(&agents[i])
	}

	respondJSON(w, http.StatusOK, resp)
}

// @Summary Get agent
// @Tags agents
// @Produce json
// @Param id path string true "Agent ID"
// @Success 200 {object} dto.AgentResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /agents/{id} [get]
func (h *Handler) handleGetAgent(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		respondError(w, http.StatusBadRequest, "Agent id is required")
		return
	}

	agent, err := h.agents.GetByID(id)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.AgentResponse{
		Success: true,
		Agent:   dto.ToAgent(agent),
	})
}
