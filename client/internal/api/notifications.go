package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Fulozz/daily-journal/client/internal/types"
)

// ListNotifications retrieves the user's notifications, newest first.
func ListNotifications(ctx context.Context, httpClient HTTPClient, baseURL string) ([]types.Notification, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	req, err := newJSONRequest(ctx, http.MethodGet, baseURL+apiPrefix+"/notifications", nil)
	if err != nil {
		return nil, err
	}
	var ns []types.Notification
	if err := doJSON(httpClient, req, "list notifications", &ns); err != nil {
		return nil, err
	}
	return ns, nil
}

// MarkNotificationRead flags a notification as read.
func MarkNotificationRead(ctx context.Context, httpClient HTTPClient, baseURL, notificationID string) (*types.Notification, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateIDPresent(notificationID, "notificationId"); err != nil {
		return nil, err
	}
	url := fmt.Sprintf("%s%s/notifications/%s/read", baseURL, apiPrefix, notificationID)
	req, err := newJSONRequest(ctx, http.MethodPatch, url, struct{}{})
	if err != nil {
		return nil, err
	}
	var n types.Notification
	if err := doJSON(httpClient, req, "mark notification read", &n); err != nil {
		return nil, err
	}
	return &n, nil
}
