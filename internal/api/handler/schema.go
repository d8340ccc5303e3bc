package handler

import "github.com/taskforge/task-tracker/internal/core/domain"

// errorResponse mirrors the envelope rendered by the API error handler;
// referenced by the swagger annotations.
type errorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

// --- Request / Response types ---

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type tokenResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"token_type"`
	ExpiresIn int64  `json:"expires_in"`
}

type registerRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role"     validate:"omitempty,oneof=user admin"`
}

type userResponse struct {
	ID       int64       `json:"id"`
	Username string      `json:"username"`
	Role     domain.Role `json:"role"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{ID: u.ID, Username: u.Username, Role: u.Role}
}

type createTaskRequest struct {
	Title    string `json:"title"    validate:"required"`
	Priority string `json:"priority" validate:"omitempty,oneof=low medium high"`
}

type updateTaskRequest struct {
	Status   *string `json:"status"   validate:"omitempty,oneof=pending in_progress completed"`
	Priority *string `json:"priority" validate:"omitempty,oneof=low medium high"`
}
