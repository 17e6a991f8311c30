package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/biblioteca-cpe/console-gateway/internal/core/domain"
	"github.com/biblioteca-cpe/console-gateway/internal/core/ports"
)

// LoanHandler handles HTTP requests for the loans screen.
type LoanHandler struct {
	loans ports.LoanService
}

func NewLoanHandler(loans ports.LoanService) *LoanHandler {
	return &LoanHandler{loans: loans}
}

// --- Request / Response types ---

type createLoanRequest struct {
	UsuarioID       int    `json:"usuario_id" validate:"required"`
	ExemplarCodigo  string `json:"exemplar_codigo" validate:"required"`
	DataInicio      string `json:"data_inicio"`
	DataFimPrevisto string `json:"data_fim_previsto"`
}

// loanResponse adds the per-row action guards to the upstream record, so the
// console enables renew and mark-returned without re-deriving the rules.
type loanResponse struct {
	domain.Loan
	PodeRenovar  bool `json:"pode_renovar"`
	PodeDevolver bool `json:"pode_devolver"`
}

func loanViews(loans []domain.Loan) []loanResponse {
	out := make([]loanResponse, 0, len(loans))
	for _, l := range loans {
		out = append(out, loanResponse{Loan: l, PodeRenovar: l.CanRenovar(), PodeDevolver: l.CanDevolver()})
	}
	return out
}

// loanKey reads the composite key from the row route.
func loanKey(c echo.Context) (ports.LoanKey, error) {
	usuario, err := pathInt(c, "usuario")
	if err != nil {
		return ports.LoanKey{}, err
	}
	return ports.LoanKey{
		UsuarioID:      usuario,
		ExemplarCodigo: c.Param("exemplar"),
		DataInicio:     domain.DateOnly(c.Param("data")),
	}, nil
}

// List returns the loans view.
//
// @Summary      List loans
// @Tags         emprestimos
// @Produce      json
// @Security     BearerAuth
// @Param        q        query  string  false  "filter text"
// @Param        campo    query  string  false  "filter field: usuario_nome, usuario_id, livro_titulo or exemplar_codigo"
// @Param        ordenar  query  string  false  "sort column: inicio or devolucao"
// @Param        ordem    query  string  false  "sort direction: asc or desc"
// @Param        refresh  query  bool    false  "force a reload from the backend"
// @Success      200  {array}   loanResponse
// @Failure      502  {object}  map[string]string
// @Router       /v1/emprestimos [get]
func (h *LoanHandler) List(c echo.Context) error {
	q := ports.LoanListQuery{
		ListQuery: listQuery(c),
		SortField: c.QueryParam("ordenar"),
		Ascending: c.QueryParam("ordem") != "desc",
	}
	loans, err := h.loans.List(c.Request().Context(), q)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, loanViews(loans))
}

// Create registers one loan; omitted dates default to today and today plus
// the standard term.
//
// @Summary      Create loan
// @Tags         emprestimos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  createLoanRequest  true  "loan fields"
// @Success      201  "created"
// @Failure      400  {object}  map[string]string
// @Router       /v1/emprestimos [post]
func (h *LoanHandler) Create(c echo.Context) error {
	var req createLoanRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	in := ports.LoanInput{
		UsuarioID:       req.UsuarioID,
		ExemplarCodigo:  req.ExemplarCodigo,
		DataInicio:      req.DataInicio,
		DataFimPrevisto: req.DataFimPrevisto,
	}
	if err := h.loans.Create(c.Request().Context(), in); err != nil {
		return err
	}
	return c.NoContent(http.StatusCreated)
}

// Renew renews one loan.
//
// @Summary      Renew loan
// @Tags         emprestimos
// @Produce      json
// @Security     BearerAuth
// @Param        usuario   path  int     true  "user id"
// @Param        exemplar  path  string  true  "exemplar code"
// @Param        data      path  string  true  "loan start date (yyyy-mm-dd)"
// @Success      204  "renewed"
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /v1/emprestimos/{usuario}/{exemplar}/{data}/renovar [patch]
func (h *LoanHandler) Renew(c echo.Context) error {
	key, err := loanKey(c)
	if err != nil {
		return err
	}
	if err := h.loans.Renew(c.Request().Context(), key); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Return marks one loan returned.
//
// @Summary      Mark loan returned
// @Tags         emprestimos
// @Produce      json
// @Security     BearerAuth
// @Param        usuario   path  int     true  "user id"
// @Param        exemplar  path  string  true  "exemplar code"
// @Param        data      path  string  true  "loan start date (yyyy-mm-dd)"
// @Success      204  "returned"
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /v1/emprestimos/{usuario}/{exemplar}/{data}/devolver [patch]
func (h *LoanHandler) Return(c echo.Context) error {
	key, err := loanKey(c)
	if err != nil {
		return err
	}
	if err := h.loans.Return(c.Request().Context(), key); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Delete removes one loan after the console's confirm dialog.
//
// @Summary      Delete loan
// @Tags         emprestimos
// @Produce      json
// @Security     BearerAuth
// @Param        usuario   path  int     true  "user id"
// @Param        exemplar  path  string  true  "exemplar code"
// @Param        data      path  string  true  "loan start date (yyyy-mm-dd)"
// @Success      204  "deleted"
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /v1/emprestimos/{usuario}/{exemplar}/{data} [delete]
func (h *LoanHandler) Delete(c echo.Context) error {
	key, err := loanKey(c)
	if err != nil {
		return err
	}
	if err := h.loans.Delete(c.Request().Context(), key); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
