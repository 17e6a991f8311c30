package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/biblioteca-cpe/console-gateway/internal/core/domain"
	"github.com/biblioteca-cpe/console-gateway/internal/core/ports"
)

// UserHandler handles HTTP requests for the users screen.
type UserHandler struct {
	users ports.UserService
}

func NewUserHandler(users ports.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// --- Request types ---

// userRequest carries a user form submission. The digit-length rules mirror
// the registration form: CPF and telefone 11 digits, CEP 8.
type userRequest struct {
	Nome        string `json:"nome" validate:"required"`
	CPF         string `json:"cpf" validate:"required,len=11,numeric"`
	Gmail       string `json:"gmail" validate:"required,email"`
	Telefone    string `json:"telefone" validate:"required,len=11,numeric"`
	CEP         string `json:"cep" validate:"required,len=8,numeric"`
	Logradouro  string `json:"logradouro" validate:"required"`
	Numero      string `json:"numero" validate:"required"`
	Complemento string `json:"complemento"`
	Status      string `json:"status" validate:"omitempty,oneof=Regular Bloqueado"`
}

func (r userRequest) input() ports.UserInput {
	return ports.UserInput{
		Nome:        r.Nome,
		CPF:         r.CPF,
		Gmail:       r.Gmail,
		Telefone:    r.Telefone,
		CEP:         r.CEP,
		Logradouro:  r.Logradouro,
		Numero:      r.Numero,
		Complemento: r.Complemento,
		Status:      r.Status,
	}
}

type importResponse struct {
	Imported int `json:"imported"`
}

// List returns the users view.
//
// @Summary      List users
// @Tags         usuarios
// @Produce      json
// @Security     BearerAuth
// @Param        q        query  string  false  "filter text"
// @Param        campo    query  string  false  "filter field: nome, id or cpf"
// @Param        refresh  query  bool    false  "force a reload from the backend"
// @Success      200  {array}   domain.User
// @Failure      502  {object}  map[string]string
// @Router       /v1/usuarios [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.users.List(c.Request().Context(), listQuery(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// Search runs the debounced reference search.
//
// @Summary      Search users
// @Tags         usuarios
// @Produce      json
// @Security     BearerAuth
// @Param        q  query  string  true  "search text"
// @Success      200  {array}   domain.User
// @Failure      409  {object}  map[string]string
// @Router       /v1/usuarios/search [get]
func (h *UserHandler) Search(c echo.Context) error {
	users, err := h.users.Search(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return err
	}
	if users == nil {
		users = []domain.User{}
	}
	return c.JSON(http.StatusOK, users)
}

// Create registers one user.
//
// @Summary      Create user
// @Tags         usuarios
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  userRequest  true  "user fields"
// @Success      201  "created"
// @Failure      400  {object}  map[string]string
// @Router       /v1/usuarios [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req userRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.users.Create(c.Request().Context(), req.input()); err != nil {
		return err
	}
	return c.NoContent(http.StatusCreated)
}

// Import accepts either a multipart CSV upload (field "arquivo") or a JSON
// array of user objects, and forwards the rows as one backend batch.
//
// @Summary      Batch import users
// @Tags         usuarios
// @Accept       mpfd
// @Produce      json
// @Security     BearerAuth
// @Param        arquivo  formData  file  true  "CSV file (nome,cpf,gmail,telefone,cep,logradouro,numero,complemento)"
// @Success      200  {object}  importResponse
// @Failure      400  {object}  map[string]string
// @Router       /v1/usuarios/lote [post]
func (h *UserHandler) Import(c echo.Context) error {
	contentType := c.Request().Header.Get(echo.HeaderContentType)
	if strings.HasPrefix(contentType, echo.MIMEMultipartForm) {
		return h.importCSV(c)
	}

	var reqs []userRequest
	if err := c.Bind(&reqs); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	inputs := make([]ports.UserInput, 0, len(reqs))
	for _, r := range reqs {
		if err := c.Validate(&r); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		inputs = append(inputs, r.input())
	}

	n, err := h.users.ImportBatch(c.Request().Context(), inputs)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, importResponse{Imported: n})
}

func (h *UserHandler) importCSV(c echo.Context) error {
	file, err := c.FormFile("arquivo")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "missing csv file")
	}
	src, err := file.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unreadable csv file")
	}
	defer src.Close()

	n, err := h.users.Import(c.Request().Context(), src)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, importResponse{Imported: n})
}

// Update edits one user.
//
// @Summary      Update user
// @Tags         usuarios
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  int          true  "user id"
// @Param        body  body  userRequest  true  "user fields"
// @Success      204  "updated"
// @Failure      404  {object}  map[string]string
// @Router       /v1/usuarios/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	id, err := pathInt(c, "id")
	if err != nil {
		return err
	}

	var req userRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.users.Update(c.Request().Context(), id, req.input()); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Delete removes one user after the console's confirm dialog.
//
// @Summary      Delete user
// @Tags         usuarios
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "user id"
// @Success      204  "deleted"
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /v1/usuarios/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	id, err := pathInt(c, "id")
	if err != nil {
		return err
	}
	if err := h.users.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// --- shared helpers ---

// listQuery reads the view parameters common to every list screen.
func listQuery(c echo.Context) ports.ListQuery {
	return ports.ListQuery{
		Query:   c.QueryParam("q"),
		Field:   c.QueryParam("campo"),
		Refresh: c.QueryParam("refresh") == "true",
	}
}

func pathInt(c echo.Context, name string) (int, error) {
	v, err := strconv.Atoi(c.Param(name))
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, name+" must be numeric")
	}
	return v, nil
}
