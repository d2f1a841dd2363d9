package handler

import (
	"net/http"

	"github.com/ospreyai/osprey/internal/handler/dto"
)

// handleListUsers lists every account identity. Admin only.
// @Summary List accounts
// @Tags admin
// @Produce json
// @Success 200 {object} dto.UsersResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /admin/users [get]
func (h *Handler) handleListUsers(w http.ResponseWriter, r *http.Request) {
	identities := h.credentials.List()

	resp := dto.UsersResponse{
		Success: true,
		Users:   make([]dto.UserInfo, len(identities)),
	}
	for i, identity := range identities {
		resp.Users[i] = dto.ToUserInfo(identity)
	}

	respondJSON(w, http.StatusOK, resp)
}
