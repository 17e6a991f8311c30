package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/biblioteca-cpe/console-gateway/internal/core/domain"
	"github.com/biblioteca-cpe/console-gateway/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub ledger
// ---------------------------------------------------------------------------

type stubLoanLedger struct {
	loans     []domain.Loan
	listCalls int
	deleted   []ports.LoanKey
	renewed   []ports.LoanKey
	returned  []ports.LoanKey
	created   []ports.LoanInput
	mutateErr error // if set, every mutation returns this error
}

func (s *stubLoanLedger) ListLoans(context.Context) ([]domain.Loan, error) {
	s.listCalls++
	out := make([]domain.Loan, len(s.loans))
	copy(out, s.loans)
	return out, nil
}

func (s *stubLoanLedger) CreateLoan(_ context.Context, in ports.LoanInput) error {
	if s.mutateErr != nil {
		return s.mutateErr
	}
	s.created = append(s.created, in)
	return nil
}

func (s *stubLoanLedger) RenewLoan(_ context.Context, key ports.LoanKey) error {
	if s.mutateErr != nil {
		return s.mutateErr
	}
	s.renewed = append(s.renewed, key)
	return nil
}

func (s *stubLoanLedger) ReturnLoan(_ context.Context, key ports.LoanKey) error {
	if s.mutateErr != nil {
		return s.mutateErr
	}
	s.returned = append(s.returned, key)
	return nil
}

func (s *stubLoanLedger) DeleteLoan(_ context.Context, key ports.LoanKey) error {
	if s.mutateErr != nil {
		return s.mutateErr
	}
	s.deleted = append(s.deleted, key)
	return nil
}

func testLoans() []domain.Loan {
	devolucao := "2026-02-11T00:00:00Z"
	return []domain.Loan{
		{UsuarioID: 10016, UsuarioNome: "Bruno Oliveira", LivroTitulo: "Dom Casmurro", ExemplarCodigo: "EX-1", DataInicio: "2026-03-10T00:00:00Z"},
		{UsuarioID: 10025, UsuarioNome: "Helena Costa", LivroTitulo: "Vidas Secas", ExemplarCodigo: "EX-2", DataInicio: "2026-01-05T00:00:00Z", DataDevolucao: &devolucao},
	}
}

func TestLoanService_ListFiltersAndSorts(t *testing.T) {
	ledger := &stubLoanLedger{loans: testLoans()}
	svc := NewLoanService(ledger, zerolog.Nop())

	got, err := svc.List(context.Background(), ports.LoanListQuery{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 loans, got %d", len(got))
	}
	// Default order: ascending by data_inicio.
	if got[0].ExemplarCodigo != "EX-2" {
		t.Fatalf("expected EX-2 first, got %s", got[0].ExemplarCodigo)
	}

	got, err = svc.List(context.Background(), ports.LoanListQuery{
		ListQuery: ports.ListQuery{Query: "helena"},
	})
	if err != nil {
		t.Fatalf("filtered list: %v", err)
	}
	if len(got) != 1 || got[0].UsuarioNome != "Helena Costa" {
		t.Fatalf("expected only Helena's loan, got %+v", got)
	}
}

func TestLoanService_ListReloadsOnlyWhenAsked(t *testing.T) {
	ledger := &stubLoanLedger{loans: testLoans()}
	svc := NewLoanService(ledger, zerolog.Nop())

	_, _ = svc.List(context.Background(), ports.LoanListQuery{})
	_, _ = svc.List(context.Background(), ports.LoanListQuery{})
	if ledger.listCalls != 1 {
		t.Fatalf("expected 1 upstream fetch, got %d", ledger.listCalls)
	}

	_, _ = svc.List(context.Background(), ports.LoanListQuery{ListQuery: ports.ListQuery{Refresh: true}})
	if ledger.listCalls != 2 {
		t.Fatalf("expected refresh to fetch again, got %d calls", ledger.listCalls)
	}
}

func TestLoanService_DeleteTriggersExactlyOneRefresh(t *testing.T) {
	ledger := &stubLoanLedger{loans: testLoans()}
	svc := NewLoanService(ledger, zerolog.Nop())

	// Load once so the refresh after the action is observable.
	_, _ = svc.List(context.Background(), ports.LoanListQuery{})

	key := ports.LoanKey{UsuarioID: 10016, ExemplarCodigo: "EX-1", DataInicio: "2026-03-10"}
	if err := svc.Delete(context.Background(), key); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if len(ledger.deleted) != 1 || ledger.deleted[0] != key {
		t.Fatalf("expected one delete for %v, got %v", key, ledger.deleted)
	}
	if ledger.listCalls != 2 {
		t.Fatalf("expected exactly one refresh after delete, got %d fetches", ledger.listCalls)
	}
}

func TestLoanService_FailedActionSkipsRefresh(t *testing.T) {
	ledger := &stubLoanLedger{loans: testLoans(), mutateErr: errors.New("409")}
	svc := NewLoanService(ledger, zerolog.Nop())
	_, _ = svc.List(context.Background(), ports.LoanListQuery{})

	err := svc.Renew(context.Background(), ports.LoanKey{UsuarioID: 10016, ExemplarCodigo: "EX-1", DataInicio: "2026-03-10"})
	if err == nil {
		t.Fatal("expected error")
	}
	if ledger.listCalls != 1 {
		t.Fatalf("failed action must not refresh, got %d fetches", ledger.listCalls)
	}
}

func TestLoanService_CreateAppliesDefaultTerm(t *testing.T) {
	ledger := &stubLoanLedger{}
	svc := NewLoanService(ledger, zerolog.Nop())

	err := svc.Create(context.Background(), ports.LoanInput{UsuarioID: 10016, ExemplarCodigo: "EX-1"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if len(ledger.created) != 1 {
		t.Fatalf("expected 1 create, got %d", len(ledger.created))
	}
	in := ledger.created[0]
	if in.DataInicio == "" || in.DataFimPrevisto == "" {
		t.Fatalf("expected default dates to be filled, got %+v", in)
	}
}
