package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/biblioteca-cpe/console-gateway/internal/core/domain"
	"github.com/biblioteca-cpe/console-gateway/internal/core/ports"
)

// PenaltyHandler handles HTTP requests for the penalties screen.
type PenaltyHandler struct {
	penalties ports.PenaltyService
}

func NewPenaltyHandler(penalties ports.PenaltyService) *PenaltyHandler {
	return &PenaltyHandler{penalties: penalties}
}

type createPenaltyRequest struct {
	UsuarioID            int    `json:"usuario_id" validate:"required"`
	ExemplarCodigo       string `json:"exemplar_codigo" validate:"required"`
	EmprestimoDataInicio string `json:"emprestimo_data_inicio" validate:"required"`
	DataAplicacao        string `json:"data_aplicacao" validate:"required"`
	TipoID               *int   `json:"tipo_id"`
	CausaID              int    `json:"causa_id" validate:"required"`
}

// penaltyKey reads the composite key from the row route.
func penaltyKey(c echo.Context) (ports.PenaltyKey, error) {
	usuario, err := pathInt(c, "usuario")
	if err != nil {
		return ports.PenaltyKey{}, err
	}
	return ports.PenaltyKey{
		UsuarioID:            usuario,
		ExemplarCodigo:       c.Param("exemplar"),
		EmprestimoDataInicio: domain.DateOnly(c.Param("dataInicio")),
		DataAplicacao:        domain.DateOnly(c.Param("dataAplicacao")),
	}, nil
}

// List returns the penalties view.
//
// @Summary      List penalties
// @Tags         penalidades
// @Produce      json
// @Security     BearerAuth
// @Param        q          query  string  false  "filter text (user name)"
// @Param        pendentes  query  bool    false  "only unfulfilled penalties"
// @Param        refresh    query  bool    false  "force a reload from the backend"
// @Success      200  {array}   domain.Penalty
// @Failure      502  {object}  map[string]string
// @Router       /v1/penalidades [get]
func (h *PenaltyHandler) List(c echo.Context) error {
	q := ports.PenaltyListQuery{
		ListQuery:   listQuery(c),
		PendingOnly: c.QueryParam("pendentes") == "true",
	}
	penalties, err := h.penalties.List(c.Request().Context(), q)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, penalties)
}

// Create registers one penalty; the "perda" cause forces the replacement
// block type regardless of the submitted tipo_id.
//
// @Summary      Create penalty
// @Tags         penalidades
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  createPenaltyRequest  true  "penalty fields"
// @Success      201  "created"
// @Failure      400  {object}  map[string]string
// @Router       /v1/penalidades [post]
func (h *PenaltyHandler) Create(c echo.Context) error {
	var req createPenaltyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	in := ports.PenaltyInput{
		UsuarioID:            req.UsuarioID,
		ExemplarCodigo:       req.ExemplarCodigo,
		EmprestimoDataInicio: req.EmprestimoDataInicio,
		DataAplicacao:        req.DataAplicacao,
		TipoID:               req.TipoID,
		CausaID:              req.CausaID,
	}
	if err := h.penalties.Create(c.Request().Context(), in); err != nil {
		return err
	}
	return c.NoContent(http.StatusCreated)
}

// Fulfill marks one penalty as served.
//
// @Summary      Mark penalty fulfilled
// @Tags         penalidades
// @Produce      json
// @Security     BearerAuth
// @Param        usuario        path  int     true  "user id"
// @Param        exemplar       path  string  true  "exemplar code"
// @Param        dataInicio     path  string  true  "loan start date (yyyy-mm-dd)"
// @Param        dataAplicacao  path  string  true  "penalty application date (yyyy-mm-dd)"
// @Success      204  "fulfilled"
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /v1/penalidades/{usuario}/{exemplar}/{dataInicio}/{dataAplicacao}/cumprida [patch]
func (h *PenaltyHandler) Fulfill(c echo.Context) error {
	key, err := penaltyKey(c)
	if err != nil {
		return err
	}
	if err := h.penalties.Fulfill(c.Request().Context(), key); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Delete removes one penalty after the console's confirm dialog.
//
// @Summary      Delete penalty
// @Tags         penalidades
// @Produce      json
// @Security     BearerAuth
// @Param        usuario        path  int     true  "user id"
// @Param        exemplar       path  string  true  "exemplar code"
// @Param        dataInicio     path  string  true  "loan start date (yyyy-mm-dd)"
// @Param        dataAplicacao  path  string  true  "penalty application date (yyyy-mm-dd)"
// @Success      204  "deleted"
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /v1/penalidades/{usuario}/{exemplar}/{dataInicio}/{dataAplicacao} [delete]
func (h *PenaltyHandler) Delete(c echo.Context) error {
	key, err := penaltyKey(c)
	if err != nil {
		return err
	}
	if err := h.penalties.Delete(c.Request().Context(), key); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Types lists the penalty types for the registration form.
//
// @Summary      List penalty types
// @Tags         penalidades
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.PenaltyType
// @Router       /v1/penalidades/tipos [get]
func (h *PenaltyHandler) Types(c echo.Context) error {
	types, err := h.penalties.Types(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, types)
}

// Causes lists the penalty causes for the registration form.
//
// @Summary      List penalty causes
// @Tags         penalidades
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.PenaltyCause
// @Router       /v1/penalidades/causas [get]
func (h *PenaltyHandler) Causes(c echo.Context) error {
	causes, err := h.penalties.Causes(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, causes)
}
