package ports

import (
	"fmt"

	"github.com/biblioteca-cpe/console-gateway/internal/core/domain"
)

// UserInput carries the fields submitted when creating or updating a user.
// JSON tags match the upstream wire format so batch imports can be forwarded
// as-is.
type UserInput struct {
	Nome        string `json:"nome"`
	CPF         string `json:"cpf"`
	Gmail       string `json:"gmail"`
	Telefone    string `json:"telefone"`
	CEP         string `json:"cep"`
	Logradouro  string `json:"logradouro"`
	Numero      string `json:"numero"`
	Complemento string `json:"complemento,omitempty"`
	Status      string `json:"status,omitempty"`
}

// BookInput carries the fields submitted when creating or updating a book.
type BookInput struct {
	ISBN      string `json:"isbn"`
	Titulo    string `json:"titulo"`
	Editora   string `json:"editora"`
	Edicao    string `json:"edicao"`
	Categoria string `json:"categoria"`
	AutorIDs  []int  `json:"-"`
}

// LoanInput carries the fields submitted when creating a loan.
type LoanInput struct {
	UsuarioID       int    `json:"usuario_id"`
	ExemplarCodigo  string `json:"exemplar_codigo"`
	DataInicio      string `json:"data_inicio"`
	DataFimPrevisto string `json:"data_fim_previsto"`
}

// ReservationInput carries the fields submitted when creating a reservation.
type ReservationInput struct {
	UsuarioID      int    `json:"usuario_id"`
	ExemplarCodigo string `json:"exemplar_codigo"`
	DataEfetuacao  string `json:"data_efetuacao"`
}

// PenaltyInput carries the fields submitted when registering a penalty.
// TipoID is nullable: for the "perda" cause the type is fixed server-side
// policy and the service fills it in.
type PenaltyInput struct {
	UsuarioID            int    `json:"usuario_id"`
	ExemplarCodigo       string `json:"exemplar_codigo"`
	EmprestimoDataInicio string `json:"emprestimo_data_inicio"`
	DataAplicacao        string `json:"data_aplicacao"`
	TipoID               *int   `json:"tipo_id"`
	CausaID              int    `json:"causa_id"`
}

// LoanKey is the composite identity of a loan. DataInicio is date-only
// (yyyy-mm-dd), the form the upstream expects in resource paths.
type LoanKey struct {
	UsuarioID      int
	ExemplarCodigo string
	DataInicio     string
}

// LoanKeyFor derives the key from a loan row.
func LoanKeyFor(l domain.Loan) LoanKey {
	return LoanKey{
		UsuarioID:      l.UsuarioID,
		ExemplarCodigo: l.ExemplarCodigo,
		DataInicio:     l.StartDay(),
	}
}

func (k LoanKey) String() string {
	return fmt.Sprintf("%d/%s/%s", k.UsuarioID, k.ExemplarCodigo, k.DataInicio)
}

// PenaltyKey is the composite identity of a penalty.
type PenaltyKey struct {
	UsuarioID            int
	ExemplarCodigo       string
	EmprestimoDataInicio string
	DataAplicacao        string
}

// PenaltyKeyFor derives the key from a penalty row.
func PenaltyKeyFor(p domain.Penalty) PenaltyKey {
	return PenaltyKey{
		UsuarioID:            p.UsuarioID,
		ExemplarCodigo:       p.ExemplarCodigo,
		EmprestimoDataInicio: p.EmprestimoDataInicio,
		DataAplicacao:        p.DataAplicacao,
	}
}

func (k PenaltyKey) String() string {
	return fmt.Sprintf("%d/%s/%s/%s", k.UsuarioID, k.ExemplarCodigo, k.EmprestimoDataInicio, k.DataAplicacao)
}
