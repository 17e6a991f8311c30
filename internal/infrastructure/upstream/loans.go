package upstream

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/biblioteca-cpe/console-gateway/internal/core/domain"
	"github.com/biblioteca-cpe/console-gateway/internal/core/ports"
)

// Client implements ports.LoanLedger against /emprestimos. Loans have no
// surrogate id; every row route carries the composite key, with the start
// date in its date-only form.

func loanPath(key ports.LoanKey) string {
	return fmt.Sprintf("/emprestimos/%d/%s/%s",
		key.UsuarioID, url.PathEscape(key.ExemplarCodigo), key.DataInicio)
}

func (c *Client) ListLoans(ctx context.Context) ([]domain.Loan, error) {
	data, err := c.do(ctx, http.MethodGet, "/emprestimos", nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[domain.Loan](data)
}

func (c *Client) CreateLoan(ctx context.Context, in ports.LoanInput) error {
	_, err := c.do(ctx, http.MethodPost, "/emprestimos", nil, in)
	return err
}

func (c *Client) RenewLoan(ctx context.Context, key ports.LoanKey) error {
	_, err := c.do(ctx, http.MethodPatch, loanPath(key)+"/renovar", nil, nil)
	return mapNotFound(err, domain.ErrLoanNotFound)
}

func (c *Client) ReturnLoan(ctx context.Context, key ports.LoanKey) error {
	_, err := c.do(ctx, http.MethodPatch, loanPath(key)+"/devolver", nil, nil)
	return mapNotFound(err, domain.ErrLoanNotFound)
}

func (c *Client) DeleteLoan(ctx context.Context, key ports.LoanKey) error {
	_, err := c.do(ctx, http.MethodDelete, loanPath(key), nil, nil)
	return mapNotFound(err, domain.ErrLoanNotFound)
}
