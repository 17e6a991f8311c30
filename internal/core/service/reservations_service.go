package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/biblioteca-cpe/console-gateway/internal/core/domain"
	"github.com/biblioteca-cpe/console-gateway/internal/core/ports"
	"github.com/biblioteca-cpe/console-gateway/internal/core/table"
)

// ReservationService drives the reservations screen. The list is filtered by
// book title and always shown oldest first.
type ReservationService struct {
	book   ports.ReservationBook
	loader *table.Loader[domain.Reservation]
	fields table.Fields[domain.Reservation]
	keys   table.DateKeys[domain.Reservation]
	log    zerolog.Logger
}

func NewReservationService(book ports.ReservationBook, log zerolog.Logger) *ReservationService {
	return &ReservationService{
		book:   book,
		loader: table.NewLoader(book.ListReservations),
		fields: table.Fields[domain.Reservation]{
			"livro_titulo": table.Text(func(r domain.Reservation) string { return r.LivroTitulo }),
		},
		keys: table.DateKeys[domain.Reservation]{
			"efetuacao": func(r domain.Reservation) time.Time { return r.EfetuacaoTime() },
		},
		log: log,
	}
}

func (s *ReservationService) List(ctx context.Context, q ports.ListQuery) ([]domain.Reservation, error) {
	if err := reload(ctx, s.loader, "reservas", q.Refresh); err != nil {
		return nil, err
	}
	rows := table.Filter(s.loader.Rows(), s.fields, q.Field, q.Query)
	return table.NewSorter(s.keys, "efetuacao").Apply(rows), nil
}

// Create places a reservation; the backend enforces that the copy is
// currently unavailable.
func (s *ReservationService) Create(ctx context.Context, in ports.ReservationInput) error {
	if in.DataEfetuacao == "" {
		in.DataEfetuacao = time.Now().UTC().Format(time.RFC3339)
	}
	if err := s.book.CreateReservation(ctx, in); err != nil {
		return err
	}
	s.log.Info().Int("usuario_id", in.UsuarioID).Str("exemplar", in.ExemplarCodigo).Msg("reservation created")
	refreshAfterAction(s.loader, "reservas", s.log)(ctx)
	return nil
}
