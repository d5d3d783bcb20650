package client

import (
	"context"
	"net/http"

	"github.com/familyledger/finance-backend/internal/domain/models"
)

type credentials struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

// Login stores the session cookie in the client's jar.
func (c *Client) Login(ctx context.Context, name string, password string) (*models.Identity, error) {
	return send[models.Identity](ctx, c, http.MethodPost, "/auth/login", credentials{Name: name, Password: password})
}

func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/auth/logout", nil, nil, nil)
}

// Me returns the logged in identity. Anonymous clients get a 404 APIError.
func (c *Client) Me(ctx context.Context) (*models.Identity, error) {
	return send[models.Identity](ctx, c, http.MethodGet, "/auth/me", nil)
}

func (c *Client) SetupStage(ctx context.Context) (models.SetupStage, error) {
	stage, err := send[models.SetupStage](ctx, c, http.MethodGet, "/api/v1/setup/stage", nil)
	if err != nil {
		return "", err
	}
	return *stage, nil
}

// SetupUser creates the first administrator and logs it in.
func (c *Client) SetupUser(ctx context.Context, name string, password string) (*models.User, error) {
	return send[models.User](ctx, c, http.MethodPost, "/api/v1/setup/user", credentials{Name: name, Password: password})
}

func (c *Client) SetupWorkspace(ctx context.Context, name string) (*models.Workspace, error) {
	return send[models.Workspace](ctx, c, http.MethodPost, "/api/v1/setup/workspace", &models.Workspace{Name: name})
}
