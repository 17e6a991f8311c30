// Package importer parses the batch user-import file accepted by the users
// screen: delimited text whose first row names the target fields.
package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/biblioteca-cpe/console-gateway/internal/core/domain"
	"github.com/biblioteca-cpe/console-gateway/internal/core/ports"
)

// Header is the field order documented in the import dialog. Columns may
// appear in any order; matching is by header name, case-insensitive.
const Header = "nome,cpf,gmail,telefone,cep,logradouro,numero,complemento"

// ParseUsers reads a CSV stream and returns one UserInput per data row.
// Blank lines are skipped. A parse failure aborts the whole file so nothing
// is partially submitted; a file with no data rows is rejected with
// domain.ErrEmptyImport before any network call is made.
func ParseUsers(r io.Reader) ([]ports.UserInput, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, domain.ErrEmptyImport
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedImport, err)
	}

	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.ToLower(strings.TrimSpace(name))] = i
	}
	if _, ok := idx["nome"]; !ok {
		return nil, fmt.Errorf("%w: missing \"nome\" column", domain.ErrMalformedImport)
	}

	var users []ports.UserInput
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrMalformedImport, err)
		}
		if blank(record) {
			continue
		}

		users = append(users, ports.UserInput{
			Nome:        field(record, idx, "nome"),
			CPF:         field(record, idx, "cpf"),
			Gmail:       field(record, idx, "gmail"),
			Telefone:    field(record, idx, "telefone"),
			CEP:         field(record, idx, "cep"),
			Logradouro:  field(record, idx, "logradouro"),
			Numero:      field(record, idx, "numero"),
			Complemento: field(record, idx, "complemento"),
		})
	}

	if len(users) == 0 {
		return nil, domain.ErrEmptyImport
	}
	return users, nil
}

func field(record []string, idx map[string]int, name string) string {
	i, ok := idx[name]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

func blank(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
