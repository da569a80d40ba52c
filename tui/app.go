// Package tui is the terminal front end: one Bubble Tea event loop over the
// optimistic entry and task collections. All ephemeral view state (active
// tab, search text, form fields, in-progress flags) lives in the model;
// authoritative data lives in the store syncers.
package tui

import (
	"time"

	"github.com/Fulozz/daily-journal/client"
	"github.com/Fulozz/daily-journal/internal/config"
	"github.com/Fulozz/daily-journal/store"
)

// Event is a confirmation outcome reported by a syncer goroutine; it is
// pumped into the event loop via the app's channel.
type Event struct {
	Err          error
	Unauthorized bool
}

// App bundles the SDK client, the two optimistic collections, and the user
// the session belongs to.
type App struct {
	Client  *client.Client
	User    client.User
	Entries *store.Syncer[client.Entry]
	Tasks   *store.Syncer[client.Task]

	events chan Event
}

// NewApp wires the entry and task syncers to the client. Confirmation
// failures and credential expiry surface on the app's event channel.
func NewApp(c *client.Client, user client.User, cfg *config.Config) *App {
	a := &App{
		Client: c,
		User:   user,
		events: make(chan Event, 16),
	}
	syncCfg := store.Config{
		Shards:      cfg.Shards,
		QueueSize:   cfg.QueueSize,
		MaxAttempts: cfg.MaxAttempts,
		BaseBackoff: 250 * time.Millisecond,
		OnError:     func(err error) { a.events <- Event{Err: err} },
		OnUnauthorized: func() {
			a.events <- Event{Unauthorized: true}
		},
	}
	a.Entries = store.NewSyncer(c.ListEntries, syncCfg)
	a.Tasks = store.NewSyncer(c.ListTasks, syncCfg)
	return a
}

// Close drains pending confirmations and stops both syncers.
func (a *App) Close() {
	a.Entries.Close()
	a.Tasks.Close()
}
