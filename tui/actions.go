package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/Fulozz/daily-journal/client"
)

// Messages produced by async commands.

type errMsg struct{ err error }

type entriesLoadedMsg struct {
	items       []client.Entry
	placeholder bool
}

type tasksLoadedMsg struct {
	items       []client.Task
	placeholder bool
}

// collectionChangedMsg asks the model to re-snapshot after an optimistic
// mutation or a background confirmation/revert.
type collectionChangedMsg struct{}

type syncEventMsg Event

// listenEvents forwards one syncer event into the loop; Update re-issues it
// after each receipt.
func listenEvents(ch <-chan Event) tea.Cmd {
	return func() tea.Msg {
		return syncEventMsg(<-ch)
	}
}

// Load both collections from the server; an endpoint-level 404 substitutes
// the placeholder dataset instead of failing.

func (a *App) loadEntries() tea.Cmd {
	return func() tea.Msg {
		err := a.Entries.Refresh(context.Background())
		if client.IsEndpointMissing(err) {
			a.Entries.List().Reset(client.PlaceholderEntries())
			return entriesLoadedMsg{items: a.Entries.List().Snapshot(), placeholder: true}
		}
		if err != nil {
			return errMsg{err}
		}
		return entriesLoadedMsg{items: a.Entries.List().Snapshot()}
	}
}

func (a *App) loadTasks() tea.Cmd {
	return func() tea.Msg {
		err := a.Tasks.Refresh(context.Background())
		if client.IsEndpointMissing(err) {
			a.Tasks.List().Reset(client.PlaceholderTasks())
			return tasksLoadedMsg{items: a.Tasks.List().Snapshot(), placeholder: true}
		}
		if err != nil {
			return errMsg{err}
		}
		return tasksLoadedMsg{items: a.Tasks.List().Snapshot()}
	}
}

// Mutations: the syncer applies them to the visible list before the network
// call resolves, so each command returns collectionChangedMsg immediately
// after the speculative apply.

func (a *App) createEntry(title, content string) tea.Cmd {
	return func() tea.Msg {
		speculative := client.Entry{
			ID:        uuid.NewString(),
			Title:     title,
			Content:   content,
			CreatedAt: time.Now(),
			Local:     true,
		}
		err := a.Entries.Create(context.Background(), speculative, func(ctx context.Context) (client.Entry, error) {
			created, err := a.Client.CreateEntry(ctx, client.CreateEntryRequest{Title: title, Content: content})
			if err != nil {
				return client.Entry{}, err
			}
			return *created, nil
		})
		if err != nil {
			return errMsg{err}
		}
		return collectionChangedMsg{}
	}
}

func (a *App) updateEntry(entry client.Entry, title, content string) tea.Cmd {
	return func() tea.Msg {
		speculative := entry
		speculative.Title = title
		speculative.Content = content
		err := a.Entries.Update(context.Background(), entry.ID, speculative, func(ctx context.Context) (client.Entry, error) {
			updated, err := a.Client.UpdateEntry(ctx, entry.ID, client.UpdateEntryRequest{Title: title, Content: content})
			if err != nil {
				return client.Entry{}, err
			}
			return *updated, nil
		})
		if err != nil {
			return errMsg{err}
		}
		return collectionChangedMsg{}
	}
}

func (a *App) deleteEntry(id string) tea.Cmd {
	return func() tea.Msg {
		err := a.Entries.Delete(context.Background(), id, func(ctx context.Context) error {
			return a.Client.DeleteEntry(ctx, id)
		})
		if err != nil {
			return errMsg{err}
		}
		return collectionChangedMsg{}
	}
}

func (a *App) createTask(title, description string) tea.Cmd {
	return func() tea.Msg {
		speculative := client.Task{
			ID:          uuid.NewString(),
			Title:       title,
			Description: description,
			CreatedAt:   time.Now(),
			Local:       true,
		}
		err := a.Tasks.Create(context.Background(), speculative, func(ctx context.Context) (client.Task, error) {
			created, err := a.Client.CreateTask(ctx, client.CreateTaskRequest{Title: title, Description: description})
			if err != nil {
				return client.Task{}, err
			}
			return *created, nil
		})
		if err != nil {
			return errMsg{err}
		}
		return collectionChangedMsg{}
	}
}

func (a *App) toggleTask(task client.Task) tea.Cmd {
	return func() tea.Msg {
		speculative := task
		speculative.Completed = !task.Completed
		speculative.NormalizeCompletion()
		err := a.Tasks.Update(context.Background(), task.ID, speculative, func(ctx context.Context) (client.Task, error) {
			toggled, err := a.Client.ToggleTask(ctx, task.ID)
			if err != nil {
				return client.Task{}, err
			}
			return *toggled, nil
		})
		if err != nil {
			return errMsg{err}
		}
		return collectionChangedMsg{}
	}
}

func (a *App) deleteTask(id string) tea.Cmd {
	return func() tea.Msg {
		err := a.Tasks.Delete(context.Background(), id, func(ctx context.Context) error {
			return a.Client.DeleteTask(ctx, id)
		})
		if err != nil {
			return errMsg{err}
		}
		return collectionChangedMsg{}
	}
}
