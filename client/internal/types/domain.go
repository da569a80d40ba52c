package types

import (
	"encoding/json"
	"time"
)

// ------------------------------
// Core Domain Entities
// ------------------------------

// Task status values used for assigned tasks.
const (
	TaskStatusPending    = "pending"
	TaskStatusAccepted   = "accepted"
	TaskStatusDeclined   = "declined"
	TaskStatusInProgress = "in-progress"
	TaskStatusCompleted  = "completed"
)

// Entry is a journal record.
type Entry struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`

	// Local marks a client-synthesized placeholder that the backend never
	// acknowledged. It renders like any other record but is not persisted.
	Local bool `json:"-"`
}

// RecordID returns the canonical identifier.
func (e Entry) RecordID() string { return e.ID }

// SearchText returns the fields matched by case-insensitive search.
func (e Entry) SearchText() []string { return []string{e.Title, e.Content} }

// UnmarshalJSON accepts both "id" and "_id"; the backend emits either
// depending on the resource variant.
func (e *Entry) UnmarshalJSON(data []byte) error {
	type alias Entry
	aux := struct {
		*alias
		AltID string `json:"_id"`
	}{alias: (*alias)(e)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if e.ID == "" {
		e.ID = aux.AltID
	}
	return nil
}

// Task is a to-do record, optionally assigned to another user.
type Task struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	Description    string     `json:"description,omitempty"`
	Completed      bool       `json:"completed"`
	CompletionDate *time.Time `json:"completionDate,omitempty"`
	DueDate        *time.Time `json:"dueDate,omitempty"`
	Category       string     `json:"category,omitempty"`
	AssignedTo     string     `json:"assignedTo,omitempty"`
	AssignedToUser *User      `json:"assignedToDetails,omitempty"`
	Status         string     `json:"status,omitempty"` // assigned tasks only
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      *time.Time `json:"updatedAt,omitempty"`

	Local bool `json:"-"`
}

// RecordID returns the canonical identifier.
func (t Task) RecordID() string { return t.ID }

// SearchText returns the fields matched by case-insensitive search.
func (t Task) SearchText() []string { return []string{t.Title, t.Description} }

func (t *Task) UnmarshalJSON(data []byte) error {
	type alias Task
	aux := struct {
		*alias
		AltID string `json:"_id"`
	}{alias: (*alias)(t)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if t.ID == "" {
		t.ID = aux.AltID
	}
	t.NormalizeCompletion()
	return nil
}

// NormalizeCompletion enforces the invariant that completionDate is present
// iff completed is true. Backend responses violate it occasionally.
func (t *Task) NormalizeCompletion() {
	if !t.Completed {
		t.CompletionDate = nil
		return
	}
	if t.CompletionDate == nil {
		now := time.Now()
		t.CompletionDate = &now
	}
}

// User identifies an account (profile owner, assignee, or search result).
type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar,omitempty"`
}

func (u *User) UnmarshalJSON(data []byte) error {
	type alias User
	aux := struct {
		*alias
		AltID string `json:"_id"`
	}{alias: (*alias)(u)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if u.ID == "" {
		u.ID = aux.AltID
	}
	return nil
}

// Notification is a server-side event about task activity.
type Notification struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}

func (n *Notification) UnmarshalJSON(data []byte) error {
	type alias Notification
	aux := struct {
		*alias
		AltID string `json:"_id"`
	}{alias: (*alias)(n)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if n.ID == "" {
		n.ID = aux.AltID
	}
	return nil
}

// Session pairs the bearer credential with the account it belongs to.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
