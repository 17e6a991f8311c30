package upstream

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/biblioteca-cpe/console-gateway/internal/core/domain"
	"github.com/biblioteca-cpe/console-gateway/internal/core/ports"
)

// Client implements ports.PenaltyRegistry against /penalidade. The resource
// is singular upstream, and its composite key adds the application date to
// the loan's key.

func penaltyPath(key ports.PenaltyKey) string {
	return fmt.Sprintf("/penalidade/%d/%s/%s/%s",
		key.UsuarioID, url.PathEscape(key.ExemplarCodigo),
		key.EmprestimoDataInicio, key.DataAplicacao)
}

func (c *Client) ListPenalties(ctx context.Context) ([]domain.Penalty, error) {
	data, err := c.do(ctx, http.MethodGet, "/penalidade", nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[domain.Penalty](data)
}

func (c *Client) CreatePenalty(ctx context.Context, in ports.PenaltyInput) error {
	_, err := c.do(ctx, http.MethodPost, "/penalidade", nil, in)
	return err
}

func (c *Client) FulfillPenalty(ctx context.Context, key ports.PenaltyKey) error {
	_, err := c.do(ctx, http.MethodPatch, penaltyPath(key)+"/cumprida", nil, nil)
	return mapNotFound(err, domain.ErrPenaltyNotFound)
}

func (c *Client) DeletePenalty(ctx context.Context, key ports.PenaltyKey) error {
	_, err := c.do(ctx, http.MethodDelete, penaltyPath(key), nil, nil)
	return mapNotFound(err, domain.ErrPenaltyNotFound)
}

func (c *Client) ListPenaltyTypes(ctx context.Context) ([]domain.PenaltyType, error) {
	data, err := c.do(ctx, http.MethodGet, "/penalidade/tipos", nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[domain.PenaltyType](data)
}

func (c *Client) ListPenaltyCauses(ctx context.Context) ([]domain.PenaltyCause, error) {
	data, err := c.do(ctx, http.MethodGet, "/penalidade/causas", nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[domain.PenaltyCause](data)
}
