package domain

import "time"

// Reservation mirrors an upstream reservation. Reservations are created only
// against copies that are currently unavailable; the backend enforces that.
type Reservation struct {
	UsuarioID      int    `json:"usuario_id"`
	ExemplarCodigo string `json:"exemplar_codigo"`
	DataEfetuacao  string `json:"data_efetuacao"`
	UsuarioNome    string `json:"usuario_nome"`
	LivroTitulo    string `json:"livro_titulo"`
}

// EfetuacaoTime parses data_efetuacao for sorting.
func (r Reservation) EfetuacaoTime() time.Time {
	return parseUpstreamDate(r.DataEfetuacao)
}
