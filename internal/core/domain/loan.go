package domain

import "time"

// Loan mirrors an upstream loan record. Loans carry no surrogate key; the
// upstream identifies them by (usuario_id, exemplar_codigo, data_inicio).
type Loan struct {
	UsuarioID       int     `json:"usuario_id"`
	ExemplarCodigo  string  `json:"exemplar_codigo"`
	DataInicio      string  `json:"data_inicio"`
	DataFimPrevisto string  `json:"data_fim_previsto"`
	DataDevolucao   *string `json:"data_devolucao"`
	Renovado        bool    `json:"renovado"`
	UsuarioNome     string  `json:"usuario_nome"`
	LivroTitulo     string  `json:"livro_titulo"`
}

// Devolvido reports whether the loan has been returned.
func (l Loan) Devolvido() bool {
	return l.DataDevolucao != nil && *l.DataDevolucao != ""
}

// CanRenovar reports whether the renew action is offered for this loan. The
// check uses only the row's own fields; a concurrent change in another session
// surfaces as an upstream request failure, not a silent no-op.
func (l Loan) CanRenovar() bool {
	return !l.Renovado && !l.Devolvido()
}

// CanDevolver reports whether the mark-returned action is offered.
func (l Loan) CanDevolver() bool {
	return !l.Devolvido()
}

// StartDay is the date-only prefix of data_inicio, the form the upstream
// expects in loan and penalty resource paths.
func (l Loan) StartDay() string {
	return DateOnly(l.DataInicio)
}

// InicioTime parses data_inicio for sorting.
func (l Loan) InicioTime() time.Time {
	return parseUpstreamDate(l.DataInicio)
}

// DevolucaoTime parses data_devolucao for sorting; zero when unreturned
// (the sorter substitutes its far-future sentinel).
func (l Loan) DevolucaoTime() time.Time {
	if l.DataDevolucao == nil {
		return time.Time{}
	}
	return parseUpstreamDate(*l.DataDevolucao)
}

// DateOnly truncates an upstream timestamp to its yyyy-mm-dd prefix.
func DateOnly(s string) string {
	if len(s) > 10 {
		return s[:10]
	}
	return s
}

// parseUpstreamDate accepts the two shapes the upstream emits: full RFC 3339
// timestamps and bare dates. Unparseable input yields the zero time.
func parseUpstreamDate(s string) time.Time {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02", DateOnly(s)); err == nil {
		return t
	}
	return time.Time{}
}
