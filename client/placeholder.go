package client

import "time"

// Placeholder datasets shown when a list endpoint is not deployed yet
// (endpoint-level 404). They are visually indistinguishable from server
// records but carry Local=true and are never persisted.

// PlaceholderEntries returns the sample journal shown when GET /entries is
// unavailable.
func PlaceholderEntries() []Entry {
	now := time.Now()
	yesterday := now.Add(-24 * time.Hour)
	return []Entry{
		{ID: "1", Title: "First Entry", Content: "This is my first journal entry.", CreatedAt: now, Local: true},
		{ID: "2", Title: "Second Entry", Content: "Today was a productive day.", CreatedAt: yesterday, Local: true},
	}
}

// PlaceholderTasks returns the sample task list shown when GET /tasks is
// unavailable.
func PlaceholderTasks() []Task {
	now := time.Now()
	in3d := now.Add(72 * time.Hour)
	in7d := now.Add(7 * 24 * time.Hour)
	doneAt := now.Add(-24 * time.Hour)
	return []Task{
		{
			ID:          "1",
			Title:       "Complete project documentation",
			Description: "Write detailed documentation for the new feature including API endpoints and usage examples.",
			DueDate:     &in3d,
			CreatedAt:   now,
			Local:       true,
		},
		{
			ID:             "2",
			Title:          "Buy groceries",
			Description:    "Milk, eggs, bread, fruits, and vegetables for the week.",
			Completed:      true,
			CompletionDate: &doneAt,
			DueDate:        &doneAt,
			CreatedAt:      now.Add(-72 * time.Hour),
			Local:          true,
		},
		{
			ID:          "3",
			Title:       "Schedule dentist appointment",
			Description: "Call Dr. Smith's office to schedule a check-up.",
			DueDate:     &in7d,
			CreatedAt:   now.Add(-48 * time.Hour),
			Local:       true,
		},
	}
}
