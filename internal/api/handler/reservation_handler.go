package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/biblioteca-cpe/console-gateway/internal/core/ports"
)

// ReservationHandler handles HTTP requests for the reservations screen.
type ReservationHandler struct {
	reservations ports.ReservationService
}

func NewReservationHandler(reservations ports.ReservationService) *ReservationHandler {
	return &ReservationHandler{reservations: reservations}
}

type createReservationRequest struct {
	UsuarioID      int    `json:"usuario_id" validate:"required"`
	ExemplarCodigo string `json:"exemplar_codigo" validate:"required"`
	DataEfetuacao  string `json:"data_efetuacao"`
}

// List returns the reservations view, always ordered by placement date.
//
// @Summary      List reservations
// @Tags         reservas
// @Produce      json
// @Security     BearerAuth
// @Param        q        query  string  false  "filter text (book title)"
// @Param        refresh  query  bool    false  "force a reload from the backend"
// @Success      200  {array}   domain.Reservation
// @Failure      502  {object}  map[string]string
// @Router       /v1/reservas [get]
func (h *ReservationHandler) List(c echo.Context) error {
	reservations, err := h.reservations.List(c.Request().Context(), listQuery(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, reservations)
}

// Create places one reservation against an unavailable exemplar.
//
// @Summary      Create reservation
// @Tags         reservas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  createReservationRequest  true  "reservation fields"
// @Success      201  "created"
// @Failure      400  {object}  map[string]string
// @Router       /v1/reservas [post]
func (h *ReservationHandler) Create(c echo.Context) error {
	var req createReservationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	in := ports.ReservationInput{
		UsuarioID:      req.UsuarioID,
		ExemplarCodigo: req.ExemplarCodigo,
		DataEfetuacao:  req.DataEfetuacao,
	}
	if err := h.reservations.Create(c.Request().Context(), in); err != nil {
		return err
	}
	return c.NoContent(http.StatusCreated)
}
