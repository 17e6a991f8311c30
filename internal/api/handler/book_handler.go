package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/biblioteca-cpe/console-gateway/internal/core/domain"
	"github.com/biblioteca-cpe/console-gateway/internal/core/ports"
)

// BookHandler handles HTTP requests for the books screen and its copy
// management.
type BookHandler struct {
	catalog ports.CatalogService
}

func NewBookHandler(catalog ports.CatalogService) *BookHandler {
	return &BookHandler{catalog: catalog}
}

// --- Request types ---

type bookRequest struct {
	ISBN      string `json:"isbn" validate:"required"`
	Titulo    string `json:"titulo" validate:"required"`
	Editora   string `json:"editora"`
	Edicao    string `json:"edicao"`
	Categoria string `json:"categoria"`
	AutorIDs  []int  `json:"autor_ids"`
}

func (r bookRequest) input() ports.BookInput {
	return ports.BookInput{
		ISBN:      r.ISBN,
		Titulo:    r.Titulo,
		Editora:   r.Editora,
		Edicao:    r.Edicao,
		Categoria: r.Categoria,
		AutorIDs:  r.AutorIDs,
	}
}

type copyRequest struct {
	ISBN   string `json:"isbn" validate:"required"`
	Codigo string `json:"codigo" validate:"required"`
}

// List returns the books view.
//
// @Summary      List books
// @Tags         livros
// @Produce      json
// @Security     BearerAuth
// @Param        q        query  string  false  "filter text"
// @Param        campo    query  string  false  "filter field: titulo, categoria, isbn or autores"
// @Param        refresh  query  bool    false  "force a reload from the backend"
// @Success      200  {array}   domain.Book
// @Failure      502  {object}  map[string]string
// @Router       /v1/livros [get]
func (h *BookHandler) List(c echo.Context) error {
	books, err := h.catalog.List(c.Request().Context(), listQuery(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, books)
}

// Get returns one book for the edit page.
//
// @Summary      Get book by ISBN
// @Tags         livros
// @Produce      json
// @Security     BearerAuth
// @Param        isbn  path  string  true  "book ISBN"
// @Success      200  {object}  domain.Book
// @Failure      404  {object}  map[string]string
// @Router       /v1/livros/{isbn} [get]
func (h *BookHandler) Get(c echo.Context) error {
	book, err := h.catalog.Get(c.Request().Context(), c.Param("isbn"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, book)
}

// Create registers one book and links its authors.
//
// @Summary      Create book
// @Tags         livros
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  bookRequest  true  "book fields"
// @Success      201  "created"
// @Failure      400  {object}  map[string]string
// @Router       /v1/livros [post]
func (h *BookHandler) Create(c echo.Context) error {
	var req bookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.catalog.Create(c.Request().Context(), req.input()); err != nil {
		return err
	}
	return c.NoContent(http.StatusCreated)
}

// Update edits one book.
//
// @Summary      Update book
// @Tags         livros
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  int          true  "book id"
// @Param        body  body  bookRequest  true  "book fields"
// @Success      204  "updated"
// @Failure      404  {object}  map[string]string
// @Router       /v1/livros/{id} [put]
func (h *BookHandler) Update(c echo.Context) error {
	id, err := pathInt(c, "id")
	if err != nil {
		return err
	}

	var req bookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.catalog.Update(c.Request().Context(), id, req.input()); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Delete removes one book after the console's confirm dialog.
//
// @Summary      Delete book
// @Tags         livros
// @Produce      json
// @Security     BearerAuth
// @Param        isbn  path  string  true  "book ISBN"
// @Success      204  "deleted"
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /v1/livros/{isbn} [delete]
func (h *BookHandler) Delete(c echo.Context) error {
	if err := h.catalog.Delete(c.Request().Context(), c.Param("isbn")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Authors lists the registered authors for the book form.
//
// @Summary      List authors
// @Tags         livros
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Author
// @Router       /v1/autores [get]
func (h *BookHandler) Authors(c echo.Context) error {
	authors, err := h.catalog.Authors(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, authors)
}

// AvailableCopies lists a book's loanable exemplars.
//
// @Summary      List available copies
// @Tags         livros
// @Produce      json
// @Security     BearerAuth
// @Param        isbn  path  string  true  "book ISBN"
// @Success      200  {array}   domain.Copy
// @Failure      404  {object}  map[string]string
// @Router       /v1/livros/{isbn}/exemplares-disponiveis [get]
func (h *BookHandler) AvailableCopies(c echo.Context) error {
	copies, err := h.catalog.AvailableCopies(c.Request().Context(), c.Param("isbn"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, copies)
}

// UnavailableCopies lists a book's exemplars currently on loan, the set a
// reservation can be placed against.
//
// @Summary      List unavailable copies
// @Tags         livros
// @Produce      json
// @Security     BearerAuth
// @Param        isbn  path  string  true  "book ISBN"
// @Success      200  {array}   domain.Copy
// @Failure      404  {object}  map[string]string
// @Router       /v1/livros/{isbn}/exemplares-indisponiveis [get]
func (h *BookHandler) UnavailableCopies(c echo.Context) error {
	copies, err := h.catalog.UnavailableCopies(c.Request().Context(), c.Param("isbn"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, copies)
}

// AddCopy registers a new exemplar of a book.
//
// @Summary      Add copy
// @Tags         livros
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  copyRequest  true  "isbn and exemplar code"
// @Success      201  "created"
// @Failure      400  {object}  map[string]string
// @Router       /v1/exemplares [post]
func (h *BookHandler) AddCopy(c echo.Context) error {
	var req copyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.catalog.AddCopy(c.Request().Context(), req.ISBN, req.Codigo); err != nil {
		return err
	}
	return c.NoContent(http.StatusCreated)
}

// RemoveCopy deletes one exemplar by its code.
//
// @Summary      Remove copy
// @Tags         livros
// @Produce      json
// @Security     BearerAuth
// @Param        codigo  path  string  true  "exemplar code"
// @Success      204  "deleted"
// @Failure      409  {object}  map[string]string
// @Router       /v1/exemplares/{codigo} [delete]
func (h *BookHandler) RemoveCopy(c echo.Context) error {
	if err := h.catalog.RemoveCopy(c.Request().Context(), c.Param("codigo")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Search runs the debounced books search.
//
// @Summary      Search books
// @Tags         livros
// @Produce      json
// @Security     BearerAuth
// @Param        q  query  string  true  "search text"
// @Success      200  {array}   domain.Book
// @Failure      409  {object}  map[string]string
// @Router       /v1/livros/search [get]
func (h *BookHandler) Search(c echo.Context) error {
	books, err := h.catalog.Search(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return err
	}
	if books == nil {
		books = []domain.Book{}
	}
	return c.JSON(http.StatusOK, books)
}
