package tui

import (
	"context"
	"testing"

	"github.com/Fulozz/daily-journal/client"
	"github.com/Fulozz/daily-journal/store"
)

func TestVisibleTasksTabFilter(t *testing.T) {
	m := initModel(nil)
	m.tasks = []client.Task{
		{ID: "1", Title: "Write report"},
		{ID: "2", Title: "Buy milk", Completed: true},
		{ID: "3", Title: "Call dentist"},
	}

	m.taskTab = tabIncomplete
	if got := len(m.visibleTasks()); got != 2 {
		t.Fatalf("incomplete tab: %d tasks, want 2", got)
	}
	m.taskTab = tabCompleted
	if got := m.visibleTasks(); len(got) != 1 || got[0].ID != "2" {
		t.Fatalf("completed tab: %+v", got)
	}
	m.taskTab = tabAll
	if got := len(m.visibleTasks()); got != 3 {
		t.Fatalf("all tab: %d tasks, want 3", got)
	}
}

func TestVisibleTasksSearchCombinesWithTab(t *testing.T) {
	m := initModel(nil)
	m.tasks = []client.Task{
		{ID: "1", Title: "Write report"},
		{ID: "2", Title: "Report expenses", Completed: true},
	}
	m.searchInput.SetValue("report")
	m.taskTab = tabIncomplete

	got := m.visibleTasks()
	if len(got) != 1 || got[0].ID != "1" {
		t.Fatalf("search+tab: %+v", got)
	}
}

func TestVisibleEntriesSearch(t *testing.T) {
	m := initModel(nil)
	m.entries = []client.Entry{
		{ID: "1", Title: "Morning pages", Content: "coffee and code"},
		{ID: "2", Title: "Standup notes", Content: "deploy friday"},
	}
	m.searchInput.SetValue("COFFEE")
	got := m.visibleEntries()
	if len(got) != 1 || got[0].ID != "1" {
		t.Fatalf("search should be case-insensitive over content: %+v", got)
	}
}

func TestRefreshSnapshotsClampsCursor(t *testing.T) {
	entries := store.NewSyncer(func(ctx context.Context) ([]client.Entry, error) {
		return []client.Entry{{ID: "1", Title: "only"}}, nil
	}, store.Config{})
	defer entries.Close()
	tasks := store.NewSyncer(func(ctx context.Context) ([]client.Task, error) {
		return nil, nil
	}, store.Config{})
	defer tasks.Close()
	if err := entries.Refresh(context.Background()); err != nil {
		t.Fatal(err)
	}

	m := initModel(&App{Entries: entries, Tasks: tasks})
	m.entryCursor = 5
	m.refreshSnapshots()
	if m.entryCursor != 0 {
		t.Fatalf("cursor = %d, want 0", m.entryCursor)
	}
	if len(m.entries) != 1 {
		t.Fatalf("snapshot = %+v", m.entries)
	}
}
