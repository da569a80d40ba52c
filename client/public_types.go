package client

import "github.com/Fulozz/daily-journal/client/internal/types"

// Public type aliases so SDK consumers can import only the client package.
type (
	// Domain entities
	Entry        = types.Entry
	Task         = types.Task
	User         = types.User
	Notification = types.Notification
	Session      = types.Session

	// Requests
	LoginRequest            = types.LoginRequest
	RegisterRequest         = types.RegisterRequest
	UpdateUserRequest       = types.UpdateUserRequest
	UpdatePasswordRequest   = types.UpdatePasswordRequest
	CreateEntryRequest      = types.CreateEntryRequest
	UpdateEntryRequest      = types.UpdateEntryRequest
	CreateTaskRequest       = types.CreateTaskRequest
	UpdateTaskRequest       = types.UpdateTaskRequest
	UpdateTaskStatusRequest = types.UpdateTaskStatusRequest

	// Responses
	LoginResponse = types.LoginResponse
	Ack           = types.Ack
)

// Task status values for assigned tasks.
const (
	TaskStatusPending    = types.TaskStatusPending
	TaskStatusAccepted   = types.TaskStatusAccepted
	TaskStatusDeclined   = types.TaskStatusDeclined
	TaskStatusInProgress = types.TaskStatusInProgress
	TaskStatusCompleted  = types.TaskStatusCompleted
)
