package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/Fulozz/daily-journal/client"
	"github.com/Fulozz/daily-journal/internal/config"
	"github.com/Fulozz/daily-journal/session"
)

// setup loads the environment configuration and opens the session file.
func setup() (*config.Config, *session.Store, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, nil, err
	}
	store, err := session.Open(cfg.SessionFile)
	if err != nil {
		return nil, nil, err
	}
	return cfg, store, nil
}

// authedClient builds a Client from the persisted session. Fails when no
// unexpired session exists.
func authedClient(cfg *config.Config, store *session.Store) (*client.Client, client.Session, error) {
	sess, ok := store.Session()
	if !ok {
		return nil, client.Session{}, errors.New("not logged in — run 'journal login' first")
	}
	c := client.New(cfg.APIURL, sess.Token, client.WithHTTPTimeout(cfg.HTTPTimeout))
	return c, sess, nil
}

// anonClient builds a Client for the unauthenticated surface (login,
// register).
func anonClient(cfg *config.Config) *client.Client {
	return client.New(cfg.APIURL, "", client.WithHTTPTimeout(cfg.HTTPTimeout))
}

// friendlyErr rewrites taxonomy errors into messages fit for a terminal.
func friendlyErr(err error) error {
	switch {
	case err == nil:
		return nil
	case client.IsUnauthorized(err):
		return errors.New("session expired — run 'journal login' again")
	case client.IsValidation(err):
		return err
	case client.IsEndpointMissing(err):
		return errors.New("this feature is not available on the server yet")
	default:
		return err
	}
}

func printEntry(e client.Entry) {
	marker := ""
	if e.Local {
		marker = " (local)"
	}
	fmt.Printf("%s%s\n  %s\n  created %s\n", e.Title, marker, e.Content, e.CreatedAt.Format(time.RFC822))
	fmt.Printf("  id: %s\n", e.ID)
}

func printTask(t client.Task) {
	box := "[ ]"
	if t.Completed {
		box = "[x]"
	}
	marker := ""
	if t.Local {
		marker = " (local)"
	}
	fmt.Printf("%s %s%s\n", box, t.Title, marker)
	if t.Description != "" {
		fmt.Printf("    %s\n", t.Description)
	}
	if t.DueDate != nil {
		fmt.Printf("    due %s\n", t.DueDate.Format("2006-01-02"))
	}
	if t.Completed && t.CompletionDate != nil {
		fmt.Printf("    completed %s\n", t.CompletionDate.Format("2006-01-02"))
	}
	if t.Status != "" {
		fmt.Printf("    status: %s\n", t.Status)
	}
	fmt.Printf("    id: %s\n", t.ID)
}
