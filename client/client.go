// Package client is the typed SDK for the Daily Journal backend. It wraps
// one network operation per call, attaches the bearer credential, and
// normalizes every failure into the shared error taxonomy. No local state is
// mutated here; optimistic collections live in the store package.
package client

import (
	"context"
	"net/http"
	"time"

	"github.com/Fulozz/daily-journal/client/internal/api"
)

// Client performs authenticated calls against the backend REST API.
type Client struct {
	baseURL string
	http    *http.Client
	token   string // bearer credential; empty before login
}

// New constructs a Client for the given base URL. token may be empty for the
// unauthenticated surface (Login, Register); every other operation requires
// it. Additional options can be provided via functional arguments.
func New(baseURL, token string, opts ...Option) *Client {
	if baseURL == "" {
		panic("baseURL cannot be empty")
	}

	c := &Client{
		baseURL: baseURL,
		token:   token,
		http:    &http.Client{Timeout: 30 * time.Second},
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			panic(err)
		}
	}

	// Wrap HTTP transport to automatically add the Authorization header.
	c.wrapTransportWithToken()

	return c
}

// wrapTransportWithToken wraps the HTTP client's transport to add the
// Authorization header to all requests using the configured credential.
func (c *Client) wrapTransportWithToken() {
	baseTransport := c.http.Transport
	if baseTransport == nil {
		baseTransport = http.DefaultTransport
	}
	c.http.Transport = &bearerTransport{
		base:  baseTransport,
		token: c.token,
	}
}

// bearerTransport wraps an http.RoundTripper to attach the bearer credential.
type bearerTransport struct {
	base  http.RoundTripper
	token string
}

func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.token == "" {
		return t.base.RoundTrip(req)
	}
	// Clone the request to avoid modifying the original.
	cloned := req.Clone(req.Context())
	cloned.Header.Set("Authorization", "Bearer "+t.token)
	return t.base.RoundTrip(cloned)
}

// --------------------------------------------------------------------
// Entry operations - delegated to internal/api
// --------------------------------------------------------------------

// ListEntries retrieves all journal entries.
func (c *Client) ListEntries(ctx context.Context) ([]Entry, error) {
	return api.ListEntries(ctx, c.http, c.baseURL)
}

// CreateEntry creates a journal entry. On an endpoint-level 404 a local
// placeholder record is synthesized instead of failing.
func (c *Client) CreateEntry(ctx context.Context, req CreateEntryRequest) (*Entry, error) {
	return api.CreateEntry(ctx, c.http, c.baseURL, req)
}

// UpdateEntry replaces the title and content of an entry.
func (c *Client) UpdateEntry(ctx context.Context, entryID string, req UpdateEntryRequest) (*Entry, error) {
	return api.UpdateEntry(ctx, c.http, c.baseURL, entryID, req)
}

// DeleteEntry removes an entry by id.
func (c *Client) DeleteEntry(ctx context.Context, entryID string) error {
	return api.DeleteEntry(ctx, c.http, c.baseURL, entryID)
}

// --------------------------------------------------------------------
// Task operations - delegated to internal/api
// --------------------------------------------------------------------

// ListTasks retrieves all tasks owned by the authenticated user.
func (c *Client) ListTasks(ctx context.Context) ([]Task, error) {
	return api.ListTasks(ctx, c.http, c.baseURL)
}

// ListAssignedTasks retrieves tasks assigned to the authenticated user.
func (c *Client) ListAssignedTasks(ctx context.Context) ([]Task, error) {
	return api.ListAssignedTasks(ctx, c.http, c.baseURL)
}

// CreateTask creates a task, synthesizing a placeholder on endpoint-level 404.
func (c *Client) CreateTask(ctx context.Context, req CreateTaskRequest) (*Task, error) {
	return api.CreateTask(ctx, c.http, c.baseURL, req)
}

// UpdateTask replaces the mutable fields of a task.
func (c *Client) UpdateTask(ctx context.Context, taskID string, req UpdateTaskRequest) (*Task, error) {
	return api.UpdateTask(ctx, c.http, c.baseURL, taskID, req)
}

// ToggleTask flips a task's completion state; the server decides the
// resulting completionDate.
func (c *Client) ToggleTask(ctx context.Context, taskID string) (*Task, error) {
	return api.ToggleTask(ctx, c.http, c.baseURL, taskID)
}

// UpdateTaskStatus sets the workflow state of an assigned task.
func (c *Client) UpdateTaskStatus(ctx context.Context, taskID, status string) (*Task, error) {
	return api.UpdateTaskStatus(ctx, c.http, c.baseURL, taskID, status)
}

// DeleteTask removes a task by id.
func (c *Client) DeleteTask(ctx context.Context, taskID string) error {
	return api.DeleteTask(ctx, c.http, c.baseURL, taskID)
}

// --------------------------------------------------------------------
// Auth and profile operations - delegated to internal/api
// --------------------------------------------------------------------

// Login exchanges credentials for a bearer token and user profile.
func (c *Client) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	return api.Login(ctx, c.http, c.baseURL, req)
}

// Register creates a new account.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	return api.Register(ctx, c.http, c.baseURL, req)
}

// ValidateToken reports whether the configured credential is still accepted.
func (c *Client) ValidateToken(ctx context.Context) error {
	return api.ValidateToken(ctx, c.http, c.baseURL)
}

// UpdateUser changes profile fields of the authenticated user.
func (c *Client) UpdateUser(ctx context.Context, req UpdateUserRequest) (*User, error) {
	return api.UpdateUser(ctx, c.http, c.baseURL, req)
}

// UpdatePassword changes the account password. A confirm mismatch fails
// client-side and is never sent.
func (c *Client) UpdatePassword(ctx context.Context, req UpdatePasswordRequest) error {
	return api.UpdatePassword(ctx, c.http, c.baseURL, req)
}

// SearchUsers finds users whose name or email matches query.
func (c *Client) SearchUsers(ctx context.Context, query string) ([]User, error) {
	return api.SearchUsers(ctx, c.http, c.baseURL, query)
}

// --------------------------------------------------------------------
// Notification operations - delegated to internal/api
// --------------------------------------------------------------------

// ListNotifications retrieves the user's notifications.
func (c *Client) ListNotifications(ctx context.Context) ([]Notification, error) {
	return api.ListNotifications(ctx, c.http, c.baseURL)
}

// MarkNotificationRead flags a notification as read.
func (c *Client) MarkNotificationRead(ctx context.Context, notificationID string) (*Notification, error) {
	return api.MarkNotificationRead(ctx, c.http, c.baseURL, notificationID)
}
