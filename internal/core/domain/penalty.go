package domain

// Penalty mirrors an upstream penalty record. The upstream identifies it by
// the composite (usuarioId, exemplarCodigo, emprestimoDataInicio, dataAplicacao).
// Note the camelCase wire names; the penalties resource predates the snake_case
// convention used elsewhere upstream.
type Penalty struct {
	UsuarioID            int     `json:"usuarioId"`
	UsuarioNome          string  `json:"usuarioNome"`
	ExemplarCodigo       string  `json:"exemplarCodigo"`
	EmprestimoDataInicio string  `json:"emprestimoDataInicio"`
	DataAplicacao        string  `json:"dataAplicacao"`
	DataSuspensao        *string `json:"dataSuspensao"`
	Tipo                 string  `json:"tipo"`
	Causa                string  `json:"causa"`
	StatusCumprida       bool    `json:"statusCumprida"`
	TituloLivro          string  `json:"tituloLivro"`
}

// PenaltyType is a lookup entry from /penalidade/tipos.
type PenaltyType struct {
	ID   int    `json:"id"`
	Nome string `json:"nome"`
}

// PenaltyCause is a lookup entry from /penalidade/causas.
type PenaltyCause struct {
	ID   int    `json:"id"`
	Nome string `json:"nome"`
}
