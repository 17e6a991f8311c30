package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/biblioteca-cpe/console-gateway/internal/core/domain"
	"github.com/biblioteca-cpe/console-gateway/internal/core/ports"
	"github.com/biblioteca-cpe/console-gateway/internal/core/table"
)

// PenaltyService drives the penalties screen: the list with its pending-only
// view, the registration form with its cause/type lookups, and the
// mark-fulfilled / delete confirmation flows.
type PenaltyService struct {
	reg     ports.PenaltyRegistry
	loader  *table.Loader[domain.Penalty]
	fields  table.Fields[domain.Penalty]
	actions *table.Dispatcher
	log     zerolog.Logger
}

func NewPenaltyService(reg ports.PenaltyRegistry, log zerolog.Logger) *PenaltyService {
	return &PenaltyService{
		reg:    reg,
		loader: table.NewLoader(reg.ListPenalties),
		fields: table.Fields[domain.Penalty]{
			"usuarioNome": table.Text(func(p domain.Penalty) string { return p.UsuarioNome }),
		},
		actions: table.NewDispatcher(log),
		log:     log,
	}
}

func (s *PenaltyService) List(ctx context.Context, q ports.PenaltyListQuery) ([]domain.Penalty, error) {
	if err := reload(ctx, s.loader, "penalidades", q.Refresh); err != nil {
		return nil, err
	}

	rows := table.Filter(s.loader.Rows(), s.fields, q.Field, q.Query)
	if !q.PendingOnly {
		return rows, nil
	}

	pending := make([]domain.Penalty, 0, len(rows))
	for _, p := range rows {
		if !p.StatusCumprida {
			pending = append(pending, p)
		}
	}
	return pending, nil
}

// Create registers a penalty. For the "perda" cause the type is not a free
// choice: it is forced to the replacement-block type, mirroring the fixed
// selection the registration form applies.
func (s *PenaltyService) Create(ctx context.Context, in ports.PenaltyInput) error {
	if s.isPerda(ctx, in.CausaID) {
		if t := s.replacementType(ctx); t != nil {
			in.TipoID = &t.ID
		}
	}
	if err := s.reg.CreatePenalty(ctx, in); err != nil {
		return err
	}
	s.log.Info().Int("usuario_id", in.UsuarioID).Str("exemplar", in.ExemplarCodigo).Msg("penalty registered")
	refreshAfterAction(s.loader, "penalidades", s.log)(ctx)
	return nil
}

func (s *PenaltyService) Fulfill(ctx context.Context, key ports.PenaltyKey) error {
	err := s.actions.Run(ctx, key.String(),
		func(ctx context.Context) error { return s.reg.FulfillPenalty(ctx, key) },
		refreshAfterAction(s.loader, "penalidades", s.log),
	)
	countAction("penalidades", "cumprir", err)
	return err
}

func (s *PenaltyService) Delete(ctx context.Context, key ports.PenaltyKey) error {
	err := s.actions.Run(ctx, key.String(),
		func(ctx context.Context) error { return s.reg.DeletePenalty(ctx, key) },
		refreshAfterAction(s.loader, "penalidades", s.log),
	)
	countAction("penalidades", "excluir", err)
	return err
}

func (s *PenaltyService) Types(ctx context.Context) ([]domain.PenaltyType, error) {
	return s.reg.ListPenaltyTypes(ctx)
}

func (s *PenaltyService) Causes(ctx context.Context) ([]domain.PenaltyCause, error) {
	return s.reg.ListPenaltyCauses(ctx)
}

func (s *PenaltyService) isPerda(ctx context.Context, causaID int) bool {
	causes, err := s.reg.ListPenaltyCauses(ctx)
	if err != nil {
		return false
	}
	for _, c := range causes {
		if c.ID == causaID {
			return strings.EqualFold(strings.TrimSpace(c.Nome), "perda")
		}
	}
	return false
}

func (s *PenaltyService) replacementType(ctx context.Context) *domain.PenaltyType {
	types, err := s.reg.ListPenaltyTypes(ctx)
	if err != nil {
		return nil
	}
	for _, t := range types {
		if strings.Contains(strings.ToLower(t.Nome), "reposi") {
			return &t
		}
	}
	return nil
}
