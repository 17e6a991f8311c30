package upstream

import (
	"context"
	"errors"
	"net/http"

	"github.com/biblioteca-cpe/console-gateway/internal/core/domain"
)

// Client implements ports.Authenticator against the backend's /login.

type loginRequest struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

type loginResponse struct {
	Token string `json:"token"`
	Nome  string `json:"nome"`
	Email string `json:"email"`
}

// Login exchanges credentials for the backend's bearer token and the
// librarian's profile. A 401 becomes ErrInvalidCredentials; the gateway does
// not distinguish unknown email from wrong password.
func (c *Client) Login(ctx context.Context, email, senha string) (string, domain.Profile, error) {
	data, err := c.do(ctx, http.MethodPost, "/login", nil, loginRequest{Email: email, Senha: senha})
	if err != nil {
		var ue *domain.UpstreamError
		if errors.As(err, &ue) && (ue.Status == http.StatusUnauthorized || ue.Status == http.StatusForbidden) {
			return "", domain.Profile{}, domain.ErrInvalidCredentials
		}
		return "", domain.Profile{}, err
	}

	var resp loginResponse
	if err := json.Unmarshal(data, &resp); err != nil || resp.Token == "" {
		return "", domain.Profile{}, domain.ErrMalformedResponse
	}
	return resp.Token, domain.Profile{Nome: resp.Nome, Email: resp.Email}, nil
}
