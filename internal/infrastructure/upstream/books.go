package upstream

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/biblioteca-cpe/console-gateway/internal/core/domain"
	"github.com/biblioteca-cpe/console-gateway/internal/core/ports"
)

// Client implements ports.Catalog against /livros, /autores and the
// exemplar routes.

func (c *Client) ListBooks(ctx context.Context) ([]domain.Book, error) {
	data, err := c.do(ctx, http.MethodGet, "/livros", nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[domain.Book](data)
}

func (c *Client) SearchBooks(ctx context.Context, query string) ([]domain.Book, error) {
	q := url.Values{"q": {query}}
	data, err := c.do(ctx, http.MethodGet, "/livros/search", q, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[domain.Book](data)
}

func (c *Client) GetBook(ctx context.Context, isbn string) (*domain.Book, error) {
	data, err := c.do(ctx, http.MethodGet, "/livros/isbn/"+url.PathEscape(isbn), nil, nil)
	if err != nil {
		return nil, mapNotFound(err, domain.ErrBookNotFound)
	}
	var book domain.Book
	if err := json.Unmarshal(data, &book); err != nil {
		return nil, domain.ErrMalformedResponse
	}
	return &book, nil
}

func (c *Client) CreateBook(ctx context.Context, in ports.BookInput) error {
	_, err := c.do(ctx, http.MethodPost, "/livros", nil, in)
	return err
}

// LinkAuthors associates existing authors with a book after creation; the
// backend keeps the book/author relation as a separate resource.
func (c *Client) LinkAuthors(ctx context.Context, isbn string, authorIDs []int) error {
	body := struct {
		ISBN    string `json:"isbn"`
		Autores []int  `json:"autores"`
	}{ISBN: isbn, Autores: authorIDs}
	_, err := c.do(ctx, http.MethodPost, "/livros/autor", nil, body)
	return err
}

func (c *Client) UpdateBook(ctx context.Context, id int, in ports.BookInput) error {
	_, err := c.do(ctx, http.MethodPut, "/livros/"+strconv.Itoa(id), nil, in)
	return mapNotFound(err, domain.ErrBookNotFound)
}

func (c *Client) DeleteBook(ctx context.Context, isbn string) error {
	_, err := c.do(ctx, http.MethodDelete, "/livros/"+url.PathEscape(isbn), nil, nil)
	return mapNotFound(err, domain.ErrBookNotFound)
}

func (c *Client) ListAuthors(ctx context.Context) ([]domain.Author, error) {
	data, err := c.do(ctx, http.MethodGet, "/autores", nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[domain.Author](data)
}

func (c *Client) AvailableCopies(ctx context.Context, isbn string) ([]domain.Copy, error) {
	data, err := c.do(ctx, http.MethodGet, "/livros/"+url.PathEscape(isbn)+"/exemplares-disponiveis", nil, nil)
	if err != nil {
		return nil, mapNotFound(err, domain.ErrBookNotFound)
	}
	return decodeList[domain.Copy](data)
}

func (c *Client) UnavailableCopies(ctx context.Context, isbn string) ([]domain.Copy, error) {
	data, err := c.do(ctx, http.MethodGet, "/livros/"+url.PathEscape(isbn)+"/exemplares-indisponiveis", nil, nil)
	if err != nil {
		return nil, mapNotFound(err, domain.ErrBookNotFound)
	}
	return decodeList[domain.Copy](data)
}

func (c *Client) AddCopy(ctx context.Context, isbn, codigo string) error {
	body := struct {
		ISBN   string `json:"isbn"`
		Codigo string `json:"codigo"`
	}{ISBN: isbn, Codigo: codigo}
	_, err := c.do(ctx, http.MethodPost, "/exemplares/adicionar", nil, body)
	return mapNotFound(err, domain.ErrBookNotFound)
}

func (c *Client) RemoveCopy(ctx context.Context, codigo string) error {
	_, err := c.do(ctx, http.MethodDelete, "/exemplar/"+url.PathEscape(codigo), nil, nil)
	return err
}
