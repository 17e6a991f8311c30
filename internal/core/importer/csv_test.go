package importer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biblioteca-cpe/console-gateway/internal/core/domain"
)

func TestParseUsers_HeaderAndRows(t *testing.T) {
	file := "nome,cpf,gmail,telefone,cep,logradouro,numero,complemento\n" +
		"Bruno Oliveira,98765432111,bruno@gmail.com,11999990001,01310100,Av. Paulista,100,\n" +
		"Helena Costa,22233344455,helena@gmail.com,11999990002,04538133,Rua Funchal,20,Sala 3\n"

	users, err := ParseUsers(strings.NewReader(file))
	require.NoError(t, err)
	require.Len(t, users, 2)

	assert.Equal(t, "Bruno Oliveira", users[0].Nome)
	assert.Equal(t, "98765432111", users[0].CPF)
	assert.Equal(t, "Sala 3", users[1].Complemento)
}

func TestParseUsers_HeaderOnlyIsRejected(t *testing.T) {
	file := "nome,cpf,gmail,telefone,cep,logradouro,numero,complemento\n"

	users, err := ParseUsers(strings.NewReader(file))
	assert.ErrorIs(t, err, domain.ErrEmptyImport)
	assert.Nil(t, users)
}

func TestParseUsers_EmptyFileIsRejected(t *testing.T) {
	_, err := ParseUsers(strings.NewReader(""))
	assert.ErrorIs(t, err, domain.ErrEmptyImport)
}

func TestParseUsers_SkipsBlankLines(t *testing.T) {
	file := "nome,cpf,gmail,telefone,cep,logradouro,numero,complemento\n" +
		"\n" +
		"Bruno Oliveira,98765432111,bruno@gmail.com,11999990001,01310100,Av. Paulista,100,\n" +
		"\n"

	users, err := ParseUsers(strings.NewReader(file))
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestParseUsers_ColumnsMayBeReordered(t *testing.T) {
	file := "cpf,nome,gmail,telefone,cep,logradouro,numero,complemento\n" +
		"98765432111,Bruno Oliveira,bruno@gmail.com,11999990001,01310100,Av. Paulista,100,\n"

	users, err := ParseUsers(strings.NewReader(file))
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "Bruno Oliveira", users[0].Nome)
	assert.Equal(t, "98765432111", users[0].CPF)
}

func TestParseUsers_MalformedRowAbortsWholeFile(t *testing.T) {
	file := "nome,cpf,gmail,telefone,cep,logradouro,numero,complemento\n" +
		"Bruno Oliveira,98765432111,bruno@gmail.com,11999990001,01310100,Av. Paulista,100,\n" +
		"\"unterminated,quote\n"

	_, err := ParseUsers(strings.NewReader(file))
	assert.ErrorIs(t, err, domain.ErrMalformedImport)
}

func TestParseUsers_MissingNameColumnIsMalformed(t *testing.T) {
	file := "cpf,gmail\n98765432111,bruno@gmail.com\n"

	_, err := ParseUsers(strings.NewReader(file))
	assert.ErrorIs(t, err, domain.ErrMalformedImport)
}
