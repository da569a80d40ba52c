package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/Fulozz/daily-journal/client/internal/types"
	"github.com/Fulozz/daily-journal/internal/apierr"
)

// ListEntries retrieves all journal entries for the authenticated user.
// An endpoint-level 404 is returned as-is; the caller decides whether to
// substitute placeholder data.
func ListEntries(ctx context.Context, httpClient HTTPClient, baseURL string) ([]types.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	req, err := newJSONRequest(ctx, http.MethodGet, baseURL+apiPrefix+"/entries", nil)
	if err != nil {
		return nil, err
	}
	var entries []types.Entry
	if err := doJSON(httpClient, req, "list entries", &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// CreateEntry creates a journal entry. The server assigns id and createdAt.
// When the endpoint itself is missing the entry is synthesized locally with a
// client-generated id and current timestamp; it renders like a server record
// but is not persisted.
func CreateEntry(ctx context.Context, httpClient HTTPClient, baseURL string, req types.CreateEntryRequest) (*types.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.Validate("create entry", req); err != nil {
		return nil, err
	}
	httpReq, err := newJSONRequest(ctx, http.MethodPost, baseURL+apiPrefix+"/entries", req)
	if err != nil {
		return nil, err
	}
	var e types.Entry
	if err := doJSON(httpClient, httpReq, "create entry", &e); err != nil {
		if apierr.IsEndpointMissing(err) {
			placeholdersTotal.WithLabelValues("entry").Inc()
			return &types.Entry{
				ID:        uuid.NewString(),
				Title:     req.Title,
				Content:   req.Content,
				CreatedAt: time.Now(),
				Local:     true,
			}, nil
		}
		return nil, err
	}
	return &e, nil
}

// UpdateEntry replaces the title and content of an entry.
func UpdateEntry(ctx context.Context, httpClient HTTPClient, baseURL, entryID string, req types.UpdateEntryRequest) (*types.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateIDPresent(entryID, "entryId"); err != nil {
		return nil, err
	}
	if err := types.Validate("update entry", req); err != nil {
		return nil, err
	}
	url := fmt.Sprintf("%s%s/entries/%s", baseURL, apiPrefix, entryID)
	httpReq, err := newJSONRequest(ctx, http.MethodPut, url, req)
	if err != nil {
		return nil, err
	}
	var e types.Entry
	if err := doJSON(httpClient, httpReq, "update entry", &e); err != nil {
		return nil, err
	}
	return &e, nil
}

// DeleteEntry removes an entry by id.
func DeleteEntry(ctx context.Context, httpClient HTTPClient, baseURL, entryID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := types.ValidateIDPresent(entryID, "entryId"); err != nil {
		return err
	}
	url := fmt.Sprintf("%s%s/entries/%s", baseURL, apiPrefix, entryID)
	httpReq, err := newJSONRequest(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return err
	}
	return doJSON(httpClient, httpReq, "delete entry", nil)
}
