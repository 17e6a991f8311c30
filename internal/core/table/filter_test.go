package table

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biblioteca-cpe/console-gateway/internal/core/domain"
)

var userFields = Fields[domain.User]{
	"nome": Text(func(u domain.User) string { return u.Nome }),
	"id":   Text(func(u domain.User) string { return strconv.Itoa(u.ID) }),
	"cpf":  Text(func(u domain.User) string { return u.CPF }),
}

func sampleUsers() []domain.User {
	return []domain.User{
		{ID: 10016, Nome: "Bruno Oliveira", CPF: "98765432111"},
		{ID: 10025, Nome: "Helena Costa", CPF: "22233344455"},
	}
}

func TestFilter_EmptyQueryIsIdentity(t *testing.T) {
	users := sampleUsers()

	got := Filter(users, userFields, "nome", "")
	assert.Equal(t, users, got)

	got = Filter(users, userFields, "nome", "   ")
	assert.Equal(t, users, got)
}

func TestFilter_ByNameCaseInsensitive(t *testing.T) {
	got := Filter(sampleUsers(), userFields, "nome", "hel")

	require.Len(t, got, 1)
	assert.Equal(t, "Helena Costa", got[0].Nome)
	assert.Equal(t, 10025, got[0].ID)
}

func TestFilter_Idempotent(t *testing.T) {
	once := Filter(sampleUsers(), userFields, "cpf", "2223")
	twice := Filter(once, userFields, "cpf", "2223")

	assert.Equal(t, once, twice)
}

func TestFilter_AnyFieldWhenKeyEmpty(t *testing.T) {
	got := Filter(sampleUsers(), userFields, "", "10016")

	require.Len(t, got, 1)
	assert.Equal(t, "Bruno Oliveira", got[0].Nome)
}

func TestFilter_UnknownFieldMatchesNothing(t *testing.T) {
	got := Filter(sampleUsers(), userFields, "telefone", "9")
	assert.Empty(t, got)
}

func TestFilter_MultiValuedField(t *testing.T) {
	books := []domain.Book{
		{ISBN: "978-85-333-0227-3", Titulo: "Dom Casmurro", Autores: []domain.Author{{ID: 1, Nome: "Machado de Assis"}}},
		{ISBN: "978-85-359-0277-5", Titulo: "Vidas Secas", Autores: []domain.Author{{ID: 2, Nome: "Graciliano Ramos"}, {ID: 3, Nome: "Outro Autor"}}},
	}
	bookFields := Fields[domain.Book]{
		"titulo":  Text(func(b domain.Book) string { return b.Titulo }),
		"autores": func(b domain.Book) []string { return b.AuthorNames() },
	}

	got := Filter(books, bookFields, "autores", "graciliano")
	require.Len(t, got, 1)
	assert.Equal(t, "Vidas Secas", got[0].Titulo)

	// Any element of the multi-valued field may match.
	got = Filter(books, bookFields, "autores", "outro")
	require.Len(t, got, 1)
	assert.Equal(t, "Vidas Secas", got[0].Titulo)
}
