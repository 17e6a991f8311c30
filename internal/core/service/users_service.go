package service

import (
	"context"
	"errors"
	"io"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/biblioteca-cpe/console-gateway/internal/api/metrics"
	"github.com/biblioteca-cpe/console-gateway/internal/core/domain"
	"github.com/biblioteca-cpe/console-gateway/internal/core/importer"
	"github.com/biblioteca-cpe/console-gateway/internal/core/ports"
	"github.com/biblioteca-cpe/console-gateway/internal/core/table"
)

// UserService drives the users screen: the loaded list with its field
// filter, the debounced reference search, the CSV batch import, and the
// delete confirmation flow.
type UserService struct {
	dir     ports.UserDirectory
	loader  *table.Loader[domain.User]
	search  *table.Debouncer[domain.User]
	fields  table.Fields[domain.User]
	actions *table.Dispatcher
	log     zerolog.Logger
}

func NewUserService(dir ports.UserDirectory, quiet time.Duration, log zerolog.Logger) *UserService {
	return &UserService{
		dir:    dir,
		loader: table.NewLoader(dir.ListUsers),
		search: table.NewDebouncer(quiet, dir.SearchUsers),
		fields: table.Fields[domain.User]{
			"nome": table.Text(func(u domain.User) string { return u.Nome }),
			"id":   table.Text(func(u domain.User) string { return strconv.Itoa(u.ID) }),
			"cpf":  table.Text(func(u domain.User) string { return u.CPF }),
		},
		actions: table.NewDispatcher(log),
		log:     log,
	}
}

func (s *UserService) List(ctx context.Context, q ports.ListQuery) ([]domain.User, error) {
	if err := reload(ctx, s.loader, "usuarios", q.Refresh); err != nil {
		return nil, err
	}
	return table.Filter(s.loader.Rows(), s.fields, q.Field, q.Query), nil
}

func (s *UserService) Search(ctx context.Context, query string) ([]domain.User, error) {
	rows, err := s.search.Search(ctx, query)
	switch {
	case errors.Is(err, domain.ErrSearchSuperseded):
		metrics.SearchesTotal.WithLabelValues("usuarios", "superseded").Inc()
		return nil, err
	case err != nil:
		metrics.SearchesTotal.WithLabelValues("usuarios", "error").Inc()
		return nil, err
	}
	metrics.SearchesTotal.WithLabelValues("usuarios", "issued").Inc()
	return rows, nil
}

func (s *UserService) Create(ctx context.Context, in ports.UserInput) error {
	if in.Status != "" && !domain.UserStatus(in.Status).Valid() {
		return domain.ErrInvalidStatus
	}
	if err := s.dir.CreateUser(ctx, in); err != nil {
		return err
	}
	s.log.Info().Str("nome", in.Nome).Msg("user created")
	return nil
}

// Import parses the CSV stream and forwards the rows as one batch payload.
// A file with no data rows is rejected before any upstream call.
func (s *UserService) Import(ctx context.Context, csvFile io.Reader) (int, error) {
	users, err := importer.ParseUsers(csvFile)
	if err != nil {
		return 0, err
	}
	if err := s.dir.CreateUsersBatch(ctx, users); err != nil {
		return 0, err
	}
	metrics.ImportedUsersTotal.Add(float64(len(users)))
	s.log.Info().Int("count", len(users)).Msg("users imported")
	return len(users), nil
}

// ImportBatch forwards already-parsed rows as one batch payload, for callers
// that send JSON instead of a CSV file.
func (s *UserService) ImportBatch(ctx context.Context, users []ports.UserInput) (int, error) {
	if len(users) == 0 {
		return 0, domain.ErrEmptyImport
	}
	if err := s.dir.CreateUsersBatch(ctx, users); err != nil {
		return 0, err
	}
	metrics.ImportedUsersTotal.Add(float64(len(users)))
	s.log.Info().Int("count", len(users)).Msg("users imported")
	return len(users), nil
}

func (s *UserService) Update(ctx context.Context, id int, in ports.UserInput) error {
	if in.Status != "" && !domain.UserStatus(in.Status).Valid() {
		return domain.ErrInvalidStatus
	}
	return s.dir.UpdateUser(ctx, id, in)
}

func (s *UserService) Delete(ctx context.Context, id int) error {
	key := "usuario/" + strconv.Itoa(id)
	err := s.actions.Run(ctx, key,
		func(ctx context.Context) error { return s.dir.DeleteUser(ctx, id) },
		s.refreshAfterAction("usuarios"),
	)
	countAction("usuarios", "excluir", err)
	return err
}

func (s *UserService) refreshAfterAction(resource string) func(context.Context) {
	return refreshAfterAction(s.loader, resource, s.log)
}
