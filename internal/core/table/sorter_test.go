package table

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biblioteca-cpe/console-gateway/internal/core/domain"
)

func loanDateKeys() DateKeys[domain.Loan] {
	return DateKeys[domain.Loan]{
		"inicio":    func(l domain.Loan) time.Time { return l.InicioTime() },
		"devolucao": func(l domain.Loan) time.Time { return l.DevolucaoTime() },
	}
}

func strPtr(s string) *string { return &s }

func sampleLoans() []domain.Loan {
	return []domain.Loan{
		{ExemplarCodigo: "EX-2", DataInicio: "2026-03-10T00:00:00Z", DataDevolucao: strPtr("2026-03-20T00:00:00Z")},
		{ExemplarCodigo: "EX-1", DataInicio: "2026-01-05T00:00:00Z", DataDevolucao: nil},
		{ExemplarCodigo: "EX-3", DataInicio: "2026-02-01T00:00:00Z", DataDevolucao: strPtr("2026-02-11T00:00:00Z")},
	}
}

func TestSorter_ToggleNewFieldResetsAscending(t *testing.T) {
	s := NewSorter(loanDateKeys(), "inicio")
	s.Toggle("inicio") // already active: flips to descending
	require.False(t, s.Ascending())

	s.Toggle("devolucao")
	assert.Equal(t, "devolucao", s.Field())
	assert.True(t, s.Ascending())
}

func TestSorter_ToggleActiveFieldFlipsDirection(t *testing.T) {
	s := NewSorter(loanDateKeys(), "inicio")

	s.Toggle("inicio")
	assert.Equal(t, "inicio", s.Field())
	assert.False(t, s.Ascending())

	s.Toggle("inicio")
	assert.True(t, s.Ascending())
}

func TestSorter_ApplyAscendingByStart(t *testing.T) {
	s := NewSorter(loanDateKeys(), "inicio")
	got := s.Apply(sampleLoans())

	require.Len(t, got, 3)
	assert.Equal(t, "EX-1", got[0].ExemplarCodigo)
	assert.Equal(t, "EX-3", got[1].ExemplarCodigo)
	assert.Equal(t, "EX-2", got[2].ExemplarCodigo)
}

func TestSorter_MissingDateSortsMaximallyLate(t *testing.T) {
	s := NewSorter(loanDateKeys(), "devolucao")
	got := s.Apply(sampleLoans())

	require.Len(t, got, 3)
	// The unreturned loan (nil data_devolucao) sorts last ascending.
	assert.Equal(t, "EX-1", got[2].ExemplarCodigo)

	s.Set("devolucao", false)
	got = s.Apply(sampleLoans())
	assert.Equal(t, "EX-1", got[0].ExemplarCodigo)
}

func TestSorter_ApplyLeavesInputUntouched(t *testing.T) {
	rows := sampleLoans()
	s := NewSorter(loanDateKeys(), "inicio")
	_ = s.Apply(rows)

	assert.Equal(t, "EX-2", rows[0].ExemplarCodigo)
}

func TestSorter_SetIgnoresUnknownField(t *testing.T) {
	s := NewSorter(loanDateKeys(), "inicio")
	s.Set("titulo", false)

	assert.Equal(t, "inicio", s.Field())
	assert.True(t, s.Ascending())
}
