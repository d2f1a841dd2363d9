package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/ospreyai/osprey/internal/domain"
	"github.com/ospreyai/osprey/internal/handler/dto"
	"github.com/ospreyai/osprey/internal/metrics"
	"github.com/ospreyai/osprey/internal/middleware"
)

// handleLogin verifies credentials, opens a session and issues its cookie.
// @Summary Log in
// @Description Verifies credentials, opens a session and sets the osprey_session cookie.
// @Tags session
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /login [post]
func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondDomainError(w, err)
		return
	}

	session, err := h.auth.Login(req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidCredentials):
			h.observeLogin(metrics.LoginInvalid)
			slog.Warn("login rejected", "username", req.Username)
		case errors.Is(err, domain.ErrValidation):
		default:
			h.observeLogin(metrics.LoginError)
			slog.Error("login failed", "username", req.Username, "error", err)
		}
		respondDomainError(w, err)
		return
	}

	// Drop the session the client arrived with, if any.
	if previous := middleware.SessionID(r); previous != "" {
		if err := h.auth.Logout(previous); err != nil {
			slog.Warn("failed to destroy previous session", "error", err)
		}
	}

	middleware.SetSessionCookie(w, r, session, h.secureCookies)
	h.observeLogin(metrics.LoginSuccess)
	slog.Info("user logged in", "username", session.Identity.Username, "role", session.Identity.Role)

	respondJSON(w, http.StatusOK, dto.UserResponse{
		Success: true,
		User:    dto.ToUserInfo(session.Identity),
	})
}

// handleLogout destroys the current session and clears the cookie.
// @Summary Log out
// @Description Destroys the current session and expires the cookie.
// @Tags session
// @Produce json
// @Success 200 {object} dto.MessageResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /logout [post]
func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	if err := h.auth.Logout(middleware.SessionID(r)); err != nil {
		slog.Error("logout failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Logout failed")
		return
	}

	middleware.ClearSessionCookie(w, r, h.secureCookies)
	if identity, err := currentIdentity(r); err == nil {
		slog.Info("user logged out", "username", identity.Username)
	}

	respondJSON(w, http.StatusOK, dto.MessageResponse{
		Success: true,
		Message: "Logged out successfully",
	})
}

// handleSession returns the identity bound to the current session.
// @Summary Current session
// @Tags session
// @Produce json
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /session [get]
func (h *Handler) handleSession(w http.ResponseWriter, r *http.Request) {
	identity, err := currentIdentity(r)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.UserResponse{
		Success: true,
		User:    dto.ToUserInfo(*identity),
	})
}

func (h *Handler) observeLogin(result string) {
	if h.telemetry != nil {
		h.telemetry.ObserveLogin(result)
	}
}
