package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/biblioteca-cpe/console-gateway/internal/api/metrics"
	"github.com/biblioteca-cpe/console-gateway/internal/core/domain"
	"github.com/biblioteca-cpe/console-gateway/internal/core/ports"
	"github.com/biblioteca-cpe/console-gateway/internal/core/table"
)

// CatalogService drives the books screen: the filtered catalog list, the
// debounced title search, book CRUD, and exemplar management for the edit
// page.
type CatalogService struct {
	cat     ports.Catalog
	loader  *table.Loader[domain.Book]
	search  *table.Debouncer[domain.Book]
	fields  table.Fields[domain.Book]
	actions *table.Dispatcher
	log     zerolog.Logger
}

func NewCatalogService(cat ports.Catalog, quiet time.Duration, log zerolog.Logger) *CatalogService {
	return &CatalogService{
		cat:    cat,
		loader: table.NewLoader(cat.ListBooks),
		search: table.NewDebouncer(quiet, cat.SearchBooks),
		fields: table.Fields[domain.Book]{
			"titulo":    table.Text(func(b domain.Book) string { return b.Titulo }),
			"categoria": table.Text(func(b domain.Book) string { return b.Categoria }),
			"isbn":      table.Text(func(b domain.Book) string { return b.ISBN }),
			"autores":   func(b domain.Book) []string { return b.AuthorNames() },
		},
		actions: table.NewDispatcher(log),
		log:     log,
	}
}

func (s *CatalogService) List(ctx context.Context, q ports.ListQuery) ([]domain.Book, error) {
	if err := reload(ctx, s.loader, "livros", q.Refresh); err != nil {
		return nil, err
	}
	return table.Filter(s.loader.Rows(), s.fields, q.Field, q.Query), nil
}

func (s *CatalogService) Search(ctx context.Context, query string) ([]domain.Book, error) {
	rows, err := s.search.Search(ctx, query)
	switch {
	case errors.Is(err, domain.ErrSearchSuperseded):
		metrics.SearchesTotal.WithLabelValues("livros", "superseded").Inc()
		return nil, err
	case err != nil:
		metrics.SearchesTotal.WithLabelValues("livros", "error").Inc()
		return nil, err
	}
	metrics.SearchesTotal.WithLabelValues("livros", "issued").Inc()
	return rows, nil
}

func (s *CatalogService) Get(ctx context.Context, isbn string) (*domain.Book, error) {
	return s.cat.GetBook(ctx, isbn)
}

// Create registers the book and then links its authors, the two-step write
// the upstream exposes.
func (s *CatalogService) Create(ctx context.Context, in ports.BookInput) error {
	if err := s.cat.CreateBook(ctx, in); err != nil {
		return err
	}
	if len(in.AutorIDs) > 0 {
		if err := s.cat.LinkAuthors(ctx, in.ISBN, in.AutorIDs); err != nil {
			return err
		}
	}
	s.log.Info().Str("isbn", in.ISBN).Str("titulo", in.Titulo).Msg("book created")
	return nil
}

func (s *CatalogService) Update(ctx context.Context, id int, in ports.BookInput) error {
	return s.cat.UpdateBook(ctx, id, in)
}

func (s *CatalogService) Delete(ctx context.Context, isbn string) error {
	err := s.actions.Run(ctx, "livro/"+isbn,
		func(ctx context.Context) error { return s.cat.DeleteBook(ctx, isbn) },
		refreshAfterAction(s.loader, "livros", s.log),
	)
	countAction("livros", "excluir", err)
	return err
}

func (s *CatalogService) Authors(ctx context.Context) ([]domain.Author, error) {
	return s.cat.ListAuthors(ctx)
}

func (s *CatalogService) AvailableCopies(ctx context.Context, isbn string) ([]domain.Copy, error) {
	return s.cat.AvailableCopies(ctx, isbn)
}

func (s *CatalogService) UnavailableCopies(ctx context.Context, isbn string) ([]domain.Copy, error) {
	return s.cat.UnavailableCopies(ctx, isbn)
}

func (s *CatalogService) AddCopy(ctx context.Context, isbn, codigo string) error {
	if err := s.cat.AddCopy(ctx, isbn, codigo); err != nil {
		return err
	}
	refreshAfterAction(s.loader, "livros", s.log)(ctx)
	return nil
}

func (s *CatalogService) RemoveCopy(ctx context.Context, codigo string) error {
	err := s.actions.Run(ctx, "exemplar/"+codigo,
		func(ctx context.Context) error { return s.cat.RemoveCopy(ctx, codigo) },
		refreshAfterAction(s.loader, "livros", s.log),
	)
	countAction("livros", "excluir_exemplar", err)
	return err
}
