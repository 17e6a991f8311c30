package upstream

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/biblioteca-cpe/console-gateway/internal/core/domain"
	"github.com/biblioteca-cpe/console-gateway/internal/core/ports"
)

// Client implements ports.UserDirectory against /usuarios.

func (c *Client) ListUsers(ctx context.Context) ([]domain.User, error) {
	data, err := c.do(ctx, http.MethodGet, "/usuarios", nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[domain.User](data)
}

func (c *Client) SearchUsers(ctx context.Context, query string) ([]domain.User, error) {
	q := url.Values{"q": {query}}
	data, err := c.do(ctx, http.MethodGet, "/usuarios/search", q, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[domain.User](data)
}

func (c *Client) CreateUser(ctx context.Context, in ports.UserInput) error {
	_, err := c.do(ctx, http.MethodPost, "/usuarios", nil, in)
	return err
}

// CreateUsersBatch submits all imported rows in one request, matching the
// backend's /usuarios/lote contract.
func (c *Client) CreateUsersBatch(ctx context.Context, in []ports.UserInput) error {
	_, err := c.do(ctx, http.MethodPost, "/usuarios/lote", nil, in)
	return err
}

func (c *Client) UpdateUser(ctx context.Context, id int, in ports.UserInput) error {
	_, err := c.do(ctx, http.MethodPut, "/usuarios/"+strconv.Itoa(id), nil, in)
	return mapNotFound(err, domain.ErrUserNotFound)
}

func (c *Client) DeleteUser(ctx context.Context, id int) error {
	_, err := c.do(ctx, http.MethodDelete, "/usuarios/"+strconv.Itoa(id), nil, nil)
	return mapNotFound(err, domain.ErrUserNotFound)
}
