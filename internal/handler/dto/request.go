package dto

// LoginRequest represents the request body for POST /api/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ChatRequest represents the request body for POST /api/chat.
type ChatRequest struct {
	Message string `json:"message"`
	AgentID string `json:"agentId,omitempty"`
}
