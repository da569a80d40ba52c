package types

import "time"

// ------------------------------
// Request Types
// ------------------------------

// LoginRequest holds credentials for POST /login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest holds parameters for a new account.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// UpdateUserRequest holds profile fields to change; zero values are omitted.
type UpdateUserRequest struct {
	Name   string `json:"name,omitempty"`
	Email  string `json:"email,omitempty" validate:"omitempty,email"`
	Avatar string `json:"avatar,omitempty"`
}

// UpdatePasswordRequest changes the account password. ConfirmPassword is
// checked client-side only and never serialized.
type UpdatePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6"`
	ConfirmPassword string `json:"-" validate:"required,eqfield=NewPassword"`
}

// CreateEntryRequest holds parameters for a new journal entry.
type CreateEntryRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content"`
}

// UpdateEntryRequest holds the replacement fields for an entry.
type UpdateEntryRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content"`
}

// CreateTaskRequest holds parameters for a new task.
type CreateTaskRequest struct {
	Title       string     `json:"title" validate:"required"`
	Description string     `json:"description,omitempty"`
	Completed   bool       `json:"completed"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	Category    string     `json:"category,omitempty"`
	AssignedTo  string     `json:"assignedTo,omitempty"`
}

// UpdateTaskRequest holds the replacement fields for a task.
type UpdateTaskRequest struct {
	Title       string     `json:"title" validate:"required"`
	Description string     `json:"description,omitempty"`
	Completed   *bool      `json:"completed,omitempty"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	Category    string     `json:"category,omitempty"`
	AssignedTo  string     `json:"assignedTo,omitempty"`
}

// UpdateTaskStatusRequest sets the workflow state of an assigned task.
type UpdateTaskStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending accepted declined in-progress completed"`
}
