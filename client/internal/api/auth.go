package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/Fulozz/daily-journal/client/internal/types"
)

// Login exchanges credentials for a bearer token and user profile.
func Login(ctx context.Context, httpClient HTTPClient, baseURL string, req types.LoginRequest) (*types.LoginResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.Validate("login", req); err != nil {
		return nil, err
	}
	httpReq, err := newJSONRequest(ctx, http.MethodPost, baseURL+apiPrefix+"/login", req)
	if err != nil {
		return nil, err
	}
	var resp types.LoginResponse
	if err := doJSON(httpClient, httpReq, "login", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Register creates a new account.
func Register(ctx context.Context, httpClient HTTPClient, baseURL string, req types.RegisterRequest) (*types.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.Validate("register", req); err != nil {
		return nil, err
	}
	httpReq, err := newJSONRequest(ctx, http.MethodPost, baseURL+apiPrefix+"/register", req)
	if err != nil {
		return nil, err
	}
	var u types.User
	if err := doJSON(httpClient, httpReq, "register", &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// ValidateToken asks the backend whether the configured credential is still
// accepted. A nil error means the session is valid.
func ValidateToken(ctx context.Context, httpClient HTTPClient, baseURL string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	httpReq, err := newJSONRequest(ctx, http.MethodPost, baseURL+apiPrefix+"/validate-token", nil)
	if err != nil {
		return err
	}
	return doJSON(httpClient, httpReq, "validate token", nil)
}

// UpdateUser changes profile fields of the authenticated user.
func UpdateUser(ctx context.Context, httpClient HTTPClient, baseURL string, req types.UpdateUserRequest) (*types.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.Validate("update user", req); err != nil {
		return nil, err
	}
	httpReq, err := newJSONRequest(ctx, http.MethodPut, baseURL+apiPrefix+"/user", req)
	if err != nil {
		return nil, err
	}
	var u types.User
	if err := doJSON(httpClient, httpReq, "update user", &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// UpdatePassword changes the account password. The confirm check runs
// client-side; a mismatch never reaches the network.
func UpdatePassword(ctx context.Context, httpClient HTTPClient, baseURL string, req types.UpdatePasswordRequest) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := types.Validate("update password", req); err != nil {
		return err
	}
	httpReq, err := newJSONRequest(ctx, http.MethodPut, baseURL+apiPrefix+"/user/password", req)
	if err != nil {
		return err
	}
	return doJSON(httpClient, httpReq, "update password", nil)
}

// SearchUsers finds users whose name or email matches query.
func SearchUsers(ctx context.Context, httpClient HTTPClient, baseURL, query string) ([]types.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	u := fmt.Sprintf("%s%s/users/search?query=%s", baseURL, apiPrefix, url.QueryEscape(query))
	httpReq, err := newJSONRequest(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	var users []types.User
	if err := doJSON(httpClient, httpReq, "search users", &users); err != nil {
		return nil, err
	}
	return users, nil
}
