package domain

// UserStatus is the standing of a library user.
type UserStatus string

const (
	StatusRegular   UserStatus = "Regular"
	StatusBloqueado UserStatus = "Bloqueado"
)

// Valid reports whether the status is one of the two states the backend accepts.
// This is the only enum checked on this side before submission.
func (s UserStatus) Valid() bool {
	return s == StatusRegular || s == StatusBloqueado
}

// User mirrors the upstream user record. Field names follow the upstream wire
// format, which is Portuguese throughout.
type User struct {
	ID          int        `json:"id"`
	Nome        string     `json:"nome"`
	CPF         string     `json:"cpf"`
	Gmail       string     `json:"gmail"`
	Telefone    string     `json:"telefone"`
	CEP         string     `json:"cep,omitempty"`
	Logradouro  string     `json:"logradouro,omitempty"`
	Numero      string     `json:"numero,omitempty"`
	Complemento string     `json:"complemento,omitempty"`
	Status      UserStatus `json:"status,omitempty"`
}
