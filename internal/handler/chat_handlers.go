package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ospreyai/osprey/internal/domain"
	"github.com/ospreyai/osprey/internal/handler/dto"
)

// generalAgentID is reported when the chat is not addressed to an agent.
const generalAgentID = "general"

// handleChat answers a chat message, optionally in the voice of an agent.
// Unknown agent ids fall back to the general assistant.
// @Summary Chat with an agent
// @Description agentId is optional; replies from a known agent are prefixed with its name.
// @Tags chat
// @Accept json
// @Produce json
// @Param request body dto.ChatRequest true "Chat message"
// @Success 200 {object} dto.ChatResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /chat [post]
func (h *Handler) handleChat(w http.ResponseWriter, r *http.Request) {
	var req dto.ChatRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondDomainError(w, err)
		return
	}

	if strings.TrimSpace(req.Message) == "" {
		respondDomainError(w, domain.NewValidationError("Message required"))
		return
	}

	agentID := req.AgentID
	if agentID == "" {
		agentID = generalAgentID
	}

	agent, err := h.agents.GetByID(req.AgentID)
	if err != nil && !errors.Is(err, domain.ErrAgentNotFound) {
		respondDomainError(w, err)
		return
	}

	reply, err := h.chat.Respond(r.Context(), req.Message, agent)
	if err != nil {
		slog.Error("chat responder failed", "agent_id", agentID, "error", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, dto.ChatResponse{
		Success:   true,
		ID:        uuid.NewString(),
		Message:   reply,
		Timestamp: h.now().UTC().Format(time.RFC3339),
		AgentID:   agentID,
	})
}
