package types

// ------------------------------
// Response Types
// ------------------------------

// LoginResponse carries the bearer token and the authenticated user.
type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// ToggleTaskResponse wraps PATCH /tasks/{id}/toggle; the backend nests the
// updated record under "task".
type ToggleTaskResponse struct {
	Task Task `json:"task"`
}

// Ack is the generic acknowledgment body for deletes and password changes.
type Ack struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}
