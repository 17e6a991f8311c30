package service

import (
	"context"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/biblioteca-cpe/console-gateway/internal/core/domain"
	"github.com/biblioteca-cpe/console-gateway/internal/core/ports"
	"github.com/biblioteca-cpe/console-gateway/internal/core/table"
)

// loanTerm is the default loan length applied when the form omits the
// expected-return date.
const loanTerm = 10 * 24 * time.Hour

// LoanService drives the loans screen: the sortable list and the
// renew / mark-returned / delete confirmation flows.
type LoanService struct {
	ledger  ports.LoanLedger
	loader  *table.Loader[domain.Loan]
	fields  table.Fields[domain.Loan]
	keys    table.DateKeys[domain.Loan]
	actions *table.Dispatcher
	log     zerolog.Logger
}

func NewLoanService(ledger ports.LoanLedger, log zerolog.Logger) *LoanService {
	return &LoanService{
		ledger: ledger,
		loader: table.NewLoader(ledger.ListLoans),
		fields: table.Fields[domain.Loan]{
			"usuario_nome":    table.Text(func(l domain.Loan) string { return l.UsuarioNome }),
			"usuario_id":      table.Text(func(l domain.Loan) string { return strconv.Itoa(l.UsuarioID) }),
			"livro_titulo":    table.Text(func(l domain.Loan) string { return l.LivroTitulo }),
			"exemplar_codigo": table.Text(func(l domain.Loan) string { return l.ExemplarCodigo }),
		},
		keys: table.DateKeys[domain.Loan]{
			"inicio":    func(l domain.Loan) time.Time { return l.InicioTime() },
			"devolucao": func(l domain.Loan) time.Time { return l.DevolucaoTime() },
		},
		actions: table.NewDispatcher(log),
		log:     log,
	}
}

// List returns the loans view: free-text filter over user, book and exemplar,
// then a stable sort on the requested date column.
func (s *LoanService) List(ctx context.Context, q ports.LoanListQuery) ([]domain.Loan, error) {
	if err := reload(ctx, s.loader, "emprestimos", q.Refresh); err != nil {
		return nil, err
	}

	rows := table.Filter(s.loader.Rows(), s.fields, q.Field, q.Query)

	sorter := table.NewSorter(s.keys, "inicio")
	if q.SortField != "" {
		sorter.Set(q.SortField, q.Ascending)
	}
	return sorter.Apply(rows), nil
}

func (s *LoanService) Create(ctx context.Context, in ports.LoanInput) error {
	now := time.Now()
	if in.DataInicio == "" {
		in.DataInicio = now.Format("2006-01-02")
	}
	if in.DataFimPrevisto == "" {
		in.DataFimPrevisto = now.Add(loanTerm).Format("2006-01-02")
	}
	if err := s.ledger.CreateLoan(ctx, in); err != nil {
		return err
	}
	s.log.Info().Int("usuario_id", in.UsuarioID).Str("exemplar", in.ExemplarCodigo).Msg("loan created")
	return nil
}

func (s *LoanService) Renew(ctx context.Context, key ports.LoanKey) error {
	err := s.actions.Run(ctx, key.String(),
		func(ctx context.Context) error { return s.ledger.RenewLoan(ctx, key) },
		refreshAfterAction(s.loader, "emprestimos", s.log),
	)
	countAction("emprestimos", "renovar", err)
	return err
}

func (s *LoanService) Return(ctx context.Context, key ports.LoanKey) error {
	err := s.actions.Run(ctx, key.String(),
		func(ctx context.Context) error { return s.ledger.ReturnLoan(ctx, key) },
		refreshAfterAction(s.loader, "emprestimos", s.log),
	)
	countAction("emprestimos", "devolver", err)
	return err
}

func (s *LoanService) Delete(ctx context.Context, key ports.LoanKey) error {
	err := s.actions.Run(ctx, key.String(),
		func(ctx context.Context) error { return s.ledger.DeleteLoan(ctx, key) },
		refreshAfterAction(s.loader, "emprestimos", s.log),
	)
	countAction("emprestimos", "excluir", err)
	return err
}
