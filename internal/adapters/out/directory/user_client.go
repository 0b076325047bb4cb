package directory

import (
	"context"
	"fmt"
	"net/http"

	"fooddelivery/internal/core/domain/model/kernel"
)

const userService = "user-service"

// UserClient calls the user service's REST API.
type UserClient struct {
	baseURL string
	client  *http.Client
}

// NewUserClient creates a client for the user service at the given base
// URL.
func NewUserClient(baseURL string) *UserClient {
	return &UserClient{
		baseURL: baseURL,
		client:  newHTTPClient(),
	}
}

// UserExists reports whether the user id is a known account.
func (c *UserClient) UserExists(ctx context.Context, id kernel.UUID) (bool, error) {
	var dto struct {
		ID string `json:"id"`
	}

	url := fmt.Sprintf("%s/api/v1/users/%s", c.baseURL, id.String())
	return getJSON(ctx, c.client, userService, url, &dto)
}
