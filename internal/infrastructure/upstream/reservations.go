package upstream

import (
	"context"
	"net/http"

	"github.com/biblioteca-cpe/console-gateway/internal/core/domain"
	"github.com/biblioteca-cpe/console-gateway/internal/core/ports"
)

// Client implements ports.ReservationBook against /reservas.

func (c *Client) ListReservations(ctx context.Context) ([]domain.Reservation, error) {
	data, err := c.do(ctx, http.MethodGet, "/reservas", nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[domain.Reservation](data)
}

func (c *Client) CreateReservation(ctx context.Context, in ports.ReservationInput) error {
	_, err := c.do(ctx, http.MethodPost, "/reservas", nil, in)
	return err
}
